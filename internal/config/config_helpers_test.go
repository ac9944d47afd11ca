package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes payload to <dir>/.trivia/config.yml and returns the path.
func writeConfig(t *testing.T, dir, payload string) string {
	t.Helper()
	path := ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// validConfig returns a normalized config that passes validation.
func validConfig() Config {
	cfg := Config{Version: CurrentVersion}
	Normalize(&cfg, "")
	return cfg
}
