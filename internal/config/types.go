package config

import "time"

// Config is the on-disk game configuration.
type Config struct {
	Version int        `yaml:"version"`
	API     APIConfig  `yaml:"api"`
	Game    GameConfig `yaml:"game"`
	UI      UIConfig   `yaml:"ui"`
	Log     LogConfig  `yaml:"log"`
}

// APIConfig points at the question service.
type APIConfig struct {
	BaseURL  string        `yaml:"base_url" env:"TRIVIA_API_BASE_URL"`
	Amount   int           `yaml:"amount" env:"TRIVIA_API_AMOUNT"`
	Type     string        `yaml:"type"`
	Category int           `yaml:"category" env:"TRIVIA_API_CATEGORY"`
	Timeout  time.Duration `yaml:"timeout" env:"TRIVIA_API_TIMEOUT"`
}

// GameConfig tunes the board and its timers.
type GameConfig struct {
	Tokens          int           `yaml:"tokens" env:"TRIVIA_TOKENS"`
	HighlightPeriod time.Duration `yaml:"highlight_period"`
	HighlightTicks  int           `yaml:"highlight_ticks"`
	TickInterval    time.Duration `yaml:"tick_interval"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	NoColor bool `yaml:"no_color"`
}

// LogConfig controls the zap logger. An empty path discards logs.
type LogConfig struct {
	Level    string `yaml:"level" env:"TRIVIA_LOG_LEVEL"`
	Encoding string `yaml:"encoding" env:"TRIVIA_LOG_ENCODING"`
	Path     string `yaml:"path" env:"TRIVIA_LOG_PATH"`
}
