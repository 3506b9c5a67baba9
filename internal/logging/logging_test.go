package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "INFO")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("buffer normalized", "items", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
	if !strings.Contains(out, "buffer normalized") || !strings.Contains(out, "items=2") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "chatty"); err == nil {
		t.Fatal("expected level error")
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lazylist.log")
	for i := 0; i < 2; i++ {
		logger, closeFn, err := OpenFile(path, "debug")
		if err != nil {
			t.Fatalf("open log file: %v", err)
		}
		logger.Info("started")
		if err := closeFn(); err != nil {
			t.Fatalf("close log file: %v", err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(raw), "started"); got != 2 {
		t.Fatalf("expected two appended lines, got %d:\n%s", got, raw)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	logger, closeFn, err := OpenFile("  ", "info")
	if err != nil {
		t.Fatalf("open discard logger: %v", err)
	}
	logger.Info("nowhere")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}
