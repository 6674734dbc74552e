package logger

import (
	"strings"
	"testing"
)

// TestProgressBarRender verifies correct ASCII bar rendering
func TestProgressBarRender(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		width    int
		expected string
	}{
		{
			name:     "empty progress",
			current:  0,
			total:    10,
			width:    10,
			expected: "[          ] 0/10 (0%)",
		},
		{
			name:     "half progress",
			current:  5,
			total:    10,
			width:    10,
			expected: "[=====     ] 5/10 (50%)",
		},
		{
			name:     "full progress",
			current:  10,
			total:    10,
			width:    10,
			expected: "[==========] 10/10 (100%)",
		},
		{
			name:     "quarter progress",
			current:  2,
			total:    8,
			width:    8,
			expected: "[==      ] 2/8 (25%)",
		},
		{
			name:     "overflow is clamped",
			current:  12,
			total:    10,
			width:    10,
			expected: "[==========] 12/10 (100%)",
		},
		{
			name:     "zero total",
			current:  0,
			total:    0,
			width:    4,
			expected: "[    ] 0/0 (0%)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(tt.total, tt.width, false)
			pb.Update(tt.current)
			result := pb.Render()

			if result != tt.expected {
				t.Errorf("Render() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestProgressBarPrefix(t *testing.T) {
	pb := NewProgressBar(4, 4, false)
	pb.SetPrefix("Archiving ")
	pb.Update(2)

	want := "Archiving [==  ] 2/4 (50%)"
	if got := pb.Render(); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestProgressBarDefaultWidth(t *testing.T) {
	pb := NewProgressBar(10, 0, false)
	pb.Update(10)

	if !strings.HasPrefix(pb.Render(), "[==========]") {
		t.Errorf("expected default width of 10, got %q", pb.Render())
	}
}

func TestProgressBarColors(t *testing.T) {
	running := NewProgressBar(10, 10, true)
	running.Update(5)
	if !strings.Contains(running.Render(), "\x1b[36m") {
		t.Errorf("expected cyan escape for in-progress bar, got %q", running.Render())
	}

	done := NewProgressBar(10, 10, true)
	done.Update(10)
	if !strings.Contains(done.Render(), "\x1b[32m") {
		t.Errorf("expected green escape for completed bar, got %q", done.Render())
	}

	plain := NewProgressBar(10, 10, false)
	plain.Update(5)
	if strings.Contains(plain.Render(), "\x1b[") {
		t.Errorf("expected no escapes without color, got %q", plain.Render())
	}
}

func TestProgressBarPartialPercentage(t *testing.T) {
	pb := NewProgressBar(3, 10, false)
	pb.Update(2)

	if got := pb.Render(); !strings.HasSuffix(got, "2/3 (66%)") {
		t.Errorf("Render() = %q, want suffix %q", got, "2/3 (66%)")
	}
}
