package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToStderrWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(Options{Level: "warn", Prefix: "kiosk", Stderr: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown", "path", "/dev/input/js0")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "kiosk") || !strings.Contains(out, "/dev/input/js0") {
		t.Errorf("log output = %q", out)
	}
}

func TestNewWritesToFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logger, closeFn, err := New(Options{File: "~/cache/kiosk/kiosk.log", Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Debug("Process exited", "pid", 42)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, "cache", "kiosk", "kiosk.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "pid=42") {
		t.Errorf("log file = %q, expected pid=42", data)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}
