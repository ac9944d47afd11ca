package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"trivia/internal/config"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the config at configPath. Without an explicit path a
// missing file falls back to defaults.
func loadConfig(configPath string) (config.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		if strings.TrimSpace(configPath) == "" && errors.Is(err, config.ErrConfigNotFound) {
			return config.LoadDefault()
		}
		return config.Config{}, err
	}
	return config.Load(resolved)
}
