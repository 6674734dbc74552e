package main

import (
	"testing"
)

func TestRunRequiresFlags(t *testing.T) {
	if err := run([]string{}); err == nil {
		t.Error("expected error when --directory and --size are missing")
	}
}

func TestRunRejectsPositionalArgs(t *testing.T) {
	if err := run([]string{"-d", t.TempDir(), "-s", "1KB", "extra"}); err == nil {
		t.Error("expected error for unexpected positional argument")
	}
}
