package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/harrison/fatfilefinder/internal/logger"
)

// runLogger sends result lines to stdout and diagnostics to stderr. Both are
// mirrored to the run log file when one is open.
type runLogger struct {
	out     io.Writer
	console *logger.ConsoleLogger
	file    *logger.FileLogger
	diag    logger.Logger
}

func newRunLogger(out io.Writer, console, diagnostics *logger.ConsoleLogger, file *logger.FileLogger) *runLogger {
	rl := &runLogger{out: out, console: console, file: file, diag: diagnostics}
	if file != nil {
		rl.diag = logger.NewMultiLogger(diagnostics, file)
	}
	return rl
}

func (rl *runLogger) LogDebug(message string) { rl.diag.LogDebug(message) }
func (rl *runLogger) LogError(message string) { rl.diag.LogError(message) }

// status prints a result line to stdout regardless of log level and records
// it in the run log. c may be nil for an uncoloured line.
func (rl *runLogger) status(c *color.Color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	line := msg
	if c != nil && rl.console.ColorEnabled() {
		c.EnableColor()
		line = c.Sprint(msg)
	}
	fmt.Fprintln(rl.out, line)

	if rl.file != nil {
		rl.file.LogInfo(msg)
	}
}

// progress draws a progress bar on the status stream
func (rl *runLogger) progress(label string, done, total int) {
	rl.console.LogProgress(label, done, total)
}
