package config

import (
	"fmt"
	"os"
)

// Load reads, parses, applies env overrides, normalizes, and validates a
// config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	return finish(cfg, RootFromConfigPath(path))
}

// LoadDefault returns the built-in configuration with env overrides applied.
func LoadDefault() (Config, error) {
	return finish(Config{Version: CurrentVersion}, "")
}

func finish(cfg Config, root string) (Config, error) {
	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	Normalize(&cfg, root)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
