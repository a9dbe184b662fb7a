// Package logging builds the kiosk's structured logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

// Options configures New.
type Options struct {
	// File, when set, receives the log instead of Stderr. The TUI uses a
	// file because it owns the terminal.
	File   string
	Level  string
	Prefix string

	// Stderr is used when File is empty. Defaults to os.Stderr.
	Stderr io.Writer
}

// New returns a logger and a function that closes its file, if any.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	var (
		w       io.Writer = opts.Stderr
		closeFn           = func() error { return nil }
	)
	if w == nil {
		w = os.Stderr
	}

	if opts.File != "" {
		path, err := homedir.Expand(opts.File)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
