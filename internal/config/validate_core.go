package config

import (
	"fmt"
	"net/url"
)

// Validate checks a normalized config and reports every problem at once.
func Validate(cfg *Config) error {
	collector := &issueCollector{}

	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != CurrentVersion {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	validateAPI(cfg.API, collector.add)
	validateGame(cfg.Game, collector.add)
	validateLog(cfg.Log, collector.add)

	return collector.result()
}

func validateAPI(api APIConfig, add issueAdder) {
	parsed, err := url.Parse(api.BaseURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		add("api.base_url", fmt.Sprintf("must be an http(s) URL, got %q", api.BaseURL))
	}
	if api.Amount < 1 || api.Amount > 50 {
		add("api.amount", "must be between 1 and 50")
	}
	if api.Type != DefaultQuestionType {
		add("api.type", fmt.Sprintf("unsupported question type %q (expected %s)", api.Type, DefaultQuestionType))
	}
	if api.Category < 0 {
		add("api.category", "must not be negative")
	}
	if api.Timeout < 0 {
		add("api.timeout", "must be positive")
	}
}

func validateGame(game GameConfig, add issueAdder) {
	if game.Tokens < 1 || game.Tokens > 9 {
		add("game.tokens", "must be between 1 and 9")
	}
	if game.HighlightPeriod < 0 {
		add("game.highlight_period", "must be positive")
	}
	if game.HighlightTicks < 0 || game.HighlightTicks%2 != 0 {
		add("game.highlight_ticks", "must be a positive even number")
	}
	if game.TickInterval < 0 {
		add("game.tick_interval", "must be positive")
	}
}

func validateLog(log LogConfig, add issueAdder) {
	switch log.Level {
	case "debug", "info", "warn", "error":
	default:
		add("log.level", fmt.Sprintf("unknown level %q (expected debug|info|warn|error)", log.Level))
	}
	switch log.Encoding {
	case "json", "console":
	default:
		add("log.encoding", fmt.Sprintf("unknown encoding %q (expected json|console)", log.Encoding))
	}
}
