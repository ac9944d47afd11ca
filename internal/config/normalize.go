package config

import (
	"path/filepath"
	"strings"
	"time"
)

// CurrentVersion is the only supported config version.
const CurrentVersion = 1

// Defaults applied to zero-valued fields.
const (
	DefaultBaseURL         = "https://opentdb.com"
	DefaultAmount          = 10
	DefaultQuestionType    = "multiple"
	DefaultTimeout         = 10 * time.Second
	DefaultTokens          = 5
	DefaultHighlightPeriod = 500 * time.Millisecond
	DefaultHighlightTicks  = 6
	DefaultTickInterval    = 33 * time.Millisecond
	DefaultLogLevel        = "info"
	DefaultLogEncoding     = "json"
)

// Normalize fills defaults and resolves a relative log path against root.
func Normalize(cfg *Config, root string) {
	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.Amount == 0 {
		cfg.API.Amount = DefaultAmount
	}
	if cfg.API.Type == "" {
		cfg.API.Type = DefaultQuestionType
	}
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultTimeout
	}
	if cfg.Game.Tokens == 0 {
		cfg.Game.Tokens = DefaultTokens
	}
	if cfg.Game.HighlightPeriod == 0 {
		cfg.Game.HighlightPeriod = DefaultHighlightPeriod
	}
	if cfg.Game.HighlightTicks == 0 {
		cfg.Game.HighlightTicks = DefaultHighlightTicks
	}
	if cfg.Game.TickInterval == 0 {
		cfg.Game.TickInterval = DefaultTickInterval
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	cfg.Log.Encoding = strings.ToLower(strings.TrimSpace(cfg.Log.Encoding))
	if cfg.Log.Encoding == "" {
		cfg.Log.Encoding = DefaultLogEncoding
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	if cfg.Log.Path != "" && root != "" && !filepath.IsAbs(cfg.Log.Path) {
		cfg.Log.Path = filepath.Join(root, cfg.Log.Path)
	}
}
