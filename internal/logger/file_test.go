package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewFileLogger verifies the log directory, run file and header are created
func TestNewFileLogger(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(logDir); err != nil {
		t.Fatalf("expected log directory to exist: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(logger.Path()), "run-") {
		t.Errorf("unexpected run file name %s", logger.Path())
	}
	if len(logger.RunID()) != 36 {
		t.Errorf("expected a UUID run ID, got %q", logger.RunID())
	}

	data, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	if !strings.Contains(string(data), "Run ID: "+logger.RunID()) {
		t.Errorf("header missing run ID: %q", string(data))
	}
}

func TestLatestSymlink(t *testing.T) {
	logDir := t.TempDir()

	first, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	first.Close()

	second, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("second NewFileLogger() error = %v", err)
	}
	defer second.Close()

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("failed to read latest.log: %v", err)
	}
	if target != filepath.Base(second.Path()) {
		t.Errorf("latest.log -> %s, want %s", target, filepath.Base(second.Path()))
	}
}

func TestFileLoggerLevels(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "warn")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	logger.LogDebug("debug-line")
	logger.LogInfo("info-line")
	logger.LogWarn("warn-line")
	logger.LogError("error-line")
	logger.Close()

	data, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	content := string(data)

	for _, hidden := range []string{"debug-line", "info-line"} {
		if strings.Contains(content, hidden) {
			t.Errorf("did not expect %q in log", hidden)
		}
	}
	for _, visible := range []string{"[WARN] warn-line", "[ERROR] error-line"} {
		if !strings.Contains(content, visible) {
			t.Errorf("expected %q in log: %q", visible, content)
		}
	}
}

func TestCloseTwice(t *testing.T) {
	logger, err := NewFileLogger(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	// Writes after close are dropped
	logger.LogError("late")
}

func TestNewFileLoggerInvalidPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLogger(filepath.Join(blocker, "logs"), "info"); err == nil {
		t.Error("expected error when log directory cannot be created")
	}
}
