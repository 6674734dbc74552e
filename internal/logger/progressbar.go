package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// ProgressBar represents an ASCII progress bar with color support
type ProgressBar struct {
	current     int
	total       int
	width       int
	enableColor bool
	prefix      string
	mu          sync.RWMutex
}

// NewProgressBar creates a new progress bar
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Update sets the current progress value
func (pb *ProgressBar) Update(current int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = current
}

// SetPrefix sets a label printed before the bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.prefix = prefix
}

func (pb *ProgressBar) percentage() int {
	if pb.total <= 0 {
		return 0
	}

	perc := (pb.current * 100) / pb.total
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}

// Render generates the ASCII progress bar string, e.g. "[=====     ] 1/2 (50%)"
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := pb.percentage()
	filled := (perc * pb.width) / 100

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled) + "]"
	result := fmt.Sprintf("%s%s %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)

	if !pb.enableColor {
		return result
	}

	// Cyan while running, green once complete
	c := color.New(color.FgCyan)
	if perc == 100 {
		c = color.New(color.FgGreen)
	}
	c.EnableColor()
	return c.Sprint(result)
}
