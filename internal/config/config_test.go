package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultsMatchDefaultSettings(t *testing.T) {
	var cfg Settings
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	want := DefaultSettings()
	if cfg.Grid != want.Grid {
		t.Errorf("Grid = %+v, expected %+v", cfg.Grid, want.Grid)
	}
	if cfg.FPS != want.FPS {
		t.Errorf("FPS = %d, expected %d", cfg.FPS, want.FPS)
	}
	if cfg.Gamepad.Rescan != 2*time.Second {
		t.Errorf("Gamepad.Rescan = %v, expected 2s", cfg.Gamepad.Rescan)
	}
	if cfg.Gamepad.AxisX != 6 || cfg.Gamepad.AxisY != 7 || cfg.Gamepad.DpadUp != -1 {
		t.Errorf("Gamepad mapping = %+v", cfg.Gamepad)
	}
	if cfg.Launcher.Runner != "shell" || cfg.Launcher.OnError != OnErrorStay {
		t.Errorf("Launcher = %+v", cfg.Launcher)
	}
	if err := cfg.Validate(nil); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestLoadCustomYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "kiosk.yaml", "grid:\n  rows: 3\n  cols: 4\nfps: 30\n")

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Grid.Rows != 3 || cfg.Grid.Cols != 4 || cfg.FPS != 30 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Launcher.Shell != "bash" {
		t.Errorf("Launcher.Shell = %q, expected default bash", cfg.Launcher.Shell)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "kiosk.toml", `
fps = 24

[launcher]
runner = "exec"
on_error = "exit"

[gamepad]
rescan = "500ms"
`)

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.FPS != 24 {
		t.Errorf("FPS = %d, expected 24", cfg.FPS)
	}
	if cfg.Launcher.Runner != "exec" || cfg.Launcher.OnError != OnErrorExit {
		t.Errorf("Launcher = %+v", cfg.Launcher)
	}
	if cfg.Gamepad.Rescan != 500*time.Millisecond {
		t.Errorf("Gamepad.Rescan = %v, expected 500ms", cfg.Gamepad.Rescan)
	}
	if cfg.Grid.Rows != 2 {
		t.Errorf("Grid.Rows = %d, expected default 2", cfg.Grid.Rows)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "grid: [unterminated\n")

	tests := []struct {
		name string
		path string
		op   string
	}{
		{"missing", filepath.Join(dir, "nope.yaml"), "read"},
		{"malformed", bad, "parse"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Load(tc.path)
			var ce *Error
			if !errors.As(err, &ce) {
				t.Fatalf("Load(%q) error = %v, expected *Error", tc.path, err)
			}
			if ce.Op != tc.op {
				t.Errorf("Op = %q, expected %q", ce.Op, tc.op)
			}
			if !IsConfigError(err) {
				t.Error("IsConfigError should be true")
			}
		})
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "kiosk.yaml", "apps_file: /from/file.json\n")
	t.Setenv(EnvAppsFile, "/from/env.json")
	t.Setenv(EnvLogLevel, "debug")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppsFile != "/from/env.json" {
		t.Errorf("AppsFile = %q, expected env override", cfg.AppsFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	known := func(name string) bool { return name == "shell" }

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"defaults", func(*Settings) {}, ""},
		{"zero rows", func(s *Settings) { s.Grid.Rows = 0 }, "grid"},
		{"negative cols", func(s *Settings) { s.Grid.Cols = -1 }, "grid"},
		{"fps zero", func(s *Settings) { s.FPS = 0 }, "fps"},
		{"fps too high", func(s *Settings) { s.FPS = 500 }, "fps"},
		{"bad on_error", func(s *Settings) { s.Launcher.OnError = "retry" }, "on_error"},
		{"unknown runner", func(s *Settings) { s.Launcher.Runner = "docker" }, "unknown runner"},
		{"bad threshold", func(s *Settings) { s.Gamepad.AxisThreshold = 0 }, "axis_threshold"},
		{"threshold ignored when disabled", func(s *Settings) {
			s.Gamepad.Enabled = false
			s.Gamepad.AxisThreshold = 0
		}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSettings()
			tc.mutate(&cfg)
			err := cfg.Validate(known)

			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}
