package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewRejectsUnknownLevel verifies an invalid level is reported.
func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("local", "loud", "stderr"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

// TestNewWritesToFile verifies logs reach the configured output path.
func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")

	log, err := New("prod", "info", path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	log.Info("question added")
	log.Debug("hidden")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "question added") {
		t.Fatalf("expected info entry, got %q", data)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("debug entry should be filtered at info level")
	}
}
