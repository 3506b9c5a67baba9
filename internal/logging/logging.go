// Package logging sets up the file logger. The terminal belongs to the UI, so
// nothing is ever written to stdout or stderr from here.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// New returns a logger writing logfmt lines to w at the given level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       log.LogfmtFormatter,
		ReportTimestamp: true,
		Prefix:          "lazylist",
	}), nil
}

// OpenFile appends to the log file at path, creating parent directories. An
// empty path discards all output. The returned close func is never nil.
func OpenFile(path, level string) (*log.Logger, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		logger, err := New(io.Discard, level)
		return logger, func() error { return nil }, err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, func() error { return nil }, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, level)
	if err != nil {
		_ = f.Close()
		return nil, func() error { return nil }, err
	}
	return logger, f.Close, nil
}
