package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileLogger writes a timestamped per-run log file into a log directory and
// keeps a latest.log symlink pointing at the most recent run.
// It supports log level filtering to control message verbosity.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger in logDir at the given level.
// The directory is created if it doesn't exist. Each run gets its own
// run-YYYYMMDD-HHMMSS.log file headed by a unique run ID.
func NewFileLogger(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.NewString()
	stamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", stamp, runID[:8]))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := updateLatestLink(logDir, runFile); err != nil {
		file.Close()
		return nil, err
	}

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.writeRunLog("=== fatfilefinder run log ===\n")
	fl.writeRunLog(fmt.Sprintf("Run ID: %s\n", runID))
	fl.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return fl, nil
}

// updateLatestLink points logDir/latest.log at runFile, replacing any old link.
func updateLatestLink(logDir, runFile string) error {
	symlinkPath := filepath.Join(logDir, "latest.log")

	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			return fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}

	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// RunID returns the unique identifier written in the log header.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (fl *FileLogger) LogTrace(message string) {
	fl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.logWithLevel("ERROR", message)
}

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}

	formatted := fmt.Sprintf("[%s] [%s] %s\n", time.Now().Format("15:04:05"), level, message)
	fl.writeRunLog(formatted)
}

// Close flushes and closes the run log. Further writes are dropped.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		fl.runLog.Sync()
	}
}
