package cli

import (
	"os"

	"go.uber.org/zap"

	"trivia/internal/config"
	"trivia/internal/logging"
	"trivia/internal/opentdb"
)

// newLogger builds the zap logger described by cfg.
func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logging.New(logging.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
		Path:     cfg.Log.Path,
	})
}

// newSource wires the question service client from cfg.
func newSource(cfg config.Config, logger *zap.Logger) *opentdb.Source {
	client := opentdb.NewWithTimeout(cfg.API.BaseURL, cfg.API.Timeout)
	return opentdb.NewSource(client, opentdb.Options{
		Amount:   cfg.API.Amount,
		Type:     cfg.API.Type,
		Category: cfg.API.Category,
		Logger:   logger,
	})
}

// noColor honors the config flag and the NO_COLOR convention: any non-empty
// value disables color, so it is not parsed as a bool.
func noColor(cfg config.Config) bool {
	if cfg.UI.NoColor {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}
