package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"trivia/internal/testutil"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".trivia", "config.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestInitWritesConfig verifies init scaffolds a config that validates.
func TestInitWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".trivia", "config.yml")

	var out, errOut bytes.Buffer
	if code := Run([]string{"init", "--config", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if !strings.Contains(out.String(), path) {
		t.Fatalf("expected written path in output, got %q", out.String())
	}

	out.Reset()
	errOut.Reset()
	if code := Run([]string{"validate", "--config", path}, &out, &errOut); code != ExitOK {
		t.Fatalf("scaffolded config failed validation: %s", errOut.String())
	}

	errOut.Reset()
	if code := Run([]string{"init", "--config", path}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d when config exists, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %q", errOut.String())
	}
}

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	path := writeConfig(t, "version: 1\napi:\n  amount: 5\ngame:\n  tokens: 3\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if errOut.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", errOut.String())
	}
	if !strings.Contains(out.String(), "Config OK") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies validate command error handling.
func TestValidateCommandFailure(t *testing.T) {
	path := writeConfig(t, "version: 1\napi:\n  amount: 500\ngame:\n  highlight_ticks: 3\n")

	var out, errOut bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	for _, want := range []string{"Validation failed", "api.amount", "game.highlight_ticks"} {
		if !strings.Contains(errOut.String(), want) {
			t.Fatalf("expected %q in stderr, got %q", want, errOut.String())
		}
	}
}

func TestValidateRejectsExtraArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"validate", "extra"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestFetchPrintsQuestions verifies fetch decodes and marks the correct answer.
func TestFetchPrintsQuestions(t *testing.T) {
	server := testutil.StartTriviaServer(t, testutil.TriviaServerConfig{
		Token:   "tok-cli",
		Results: testutil.SampleResults(),
	})
	path := writeConfig(t, fmt.Sprintf("version: 1\napi:\n  base_url: %q\n  timeout: 5s\n", server.BaseURL))

	var out, errOut bytes.Buffer
	code := Run([]string{"fetch", "--config", path, "--amount", "2"}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, errOut.String())
	}
	if got := server.LastQuery().Get("amount"); got != "2" {
		t.Fatalf("expected amount=2, got %q", got)
	}
	output := out.String()
	for _, want := range []string{"Session: tok-cli", `What is the chemical symbol for "gold"?`, "Which band released 'Kid A'?", "Sigur Rós"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output:\n%s", want, output)
		}
	}
	for _, line := range strings.Split(output, "\n") {
		if strings.HasSuffix(line, ") Au") && !strings.Contains(line, "*") {
			t.Fatalf("correct answer not marked: %q", line)
		}
		if strings.HasSuffix(line, ") Ag") && strings.Contains(line, "*") {
			t.Fatalf("wrong answer marked: %q", line)
		}
	}
}

func TestFetchReportsNetworkError(t *testing.T) {
	path := writeConfig(t, fmt.Sprintf("version: 1\napi:\n  base_url: %q\n  timeout: 2s\n", testutil.ClosedServerURL(t)))

	var out, errOut bytes.Buffer
	if code := Run([]string{"fetch", "--config", path}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Fetch failed") {
		t.Fatalf("expected fetch failure, got %q", errOut.String())
	}
}

func TestFetchRejectsBadAmount(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := Run([]string{"fetch", "--amount", "99"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}

// TestPlayNeedsTerminal verifies play refuses to run without a TTY.
func TestPlayNeedsTerminal(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(_ io.Writer) bool { return false }

	var out, errOut bytes.Buffer
	if code := Run([]string{"play", "--ui", "plain"}, &out, &errOut); code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "interactive terminal") {
		t.Fatalf("expected terminal hint, got %q", errOut.String())
	}

	errOut.Reset()
	if code := Run([]string{"play", "--ui", "bogus"}, &out, &errOut); code != ExitUsage {
		t.Fatalf("expected exit %d for bad ui mode, got %d", ExitUsage, code)
	}
}
