package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
api:
  base_url: "https://opentdb.com"
  amount: 10
  type: multiple
  category: 0
  timeout: 10s

game:
  tokens: 5
  highlight_period: 500ms
  highlight_ticks: 6
  tick_interval: 33ms

ui:
  no_color: false

log:
  level: info
  encoding: json
  path: ".trivia/trivia.log"
`

// Scaffold writes the default config to path, refusing to overwrite.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
