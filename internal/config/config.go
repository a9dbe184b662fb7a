// Package config loads kiosk settings and the application list from YAML,
// JSON or TOML files.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Error policies for a failed launch.
const (
	OnErrorStay = "stay"
	OnErrorExit = "exit"
)

// Settings is the complete kiosk configuration.
type Settings struct {
	AppsFile   string         `yaml:"apps_file" toml:"apps_file"`
	Background string         `yaml:"background" toml:"background"`
	Grid       GridSettings   `yaml:"grid" toml:"grid"`
	FPS        int            `yaml:"fps" toml:"fps"`
	Clock      ClockSettings  `yaml:"clock" toml:"clock"`
	Launcher   LauncherConfig `yaml:"launcher" toml:"launcher"`
	Gamepad    GamepadConfig  `yaml:"gamepad" toml:"gamepad"`
	Logging    LoggingConfig  `yaml:"logging" toml:"logging"`
}

// GridSettings defines the visible tile grid.
type GridSettings struct {
	Rows int `yaml:"rows" toml:"rows"`
	Cols int `yaml:"cols" toml:"cols"`
}

// ClockSettings controls the top-right clock.
type ClockSettings struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Format  string `yaml:"format" toml:"format"` // Go time layout
}

// LauncherConfig selects how entries are started.
type LauncherConfig struct {
	Runner    string   `yaml:"runner" toml:"runner"`
	Shell     string   `yaml:"shell" toml:"shell"`
	ShellArgs []string `yaml:"shell_args" toml:"shell_args"`
	OnError   string   `yaml:"on_error" toml:"on_error"` // "stay" or "exit"
}

// GamepadConfig maps joystick buttons and axes onto kiosk buttons.
// Button numbers of -1 are unmapped.
type GamepadConfig struct {
	Enabled       bool          `yaml:"enabled" toml:"enabled"`
	Devices       string        `yaml:"devices" toml:"devices"` // glob
	South         int           `yaml:"south" toml:"south"`
	DpadUp        int           `yaml:"dpad_up" toml:"dpad_up"`
	DpadDown      int           `yaml:"dpad_down" toml:"dpad_down"`
	DpadLeft      int           `yaml:"dpad_left" toml:"dpad_left"`
	DpadRight     int           `yaml:"dpad_right" toml:"dpad_right"`
	AxisX         int           `yaml:"axis_x" toml:"axis_x"`
	AxisY         int           `yaml:"axis_y" toml:"axis_y"`
	AxisThreshold int           `yaml:"axis_threshold" toml:"axis_threshold"`
	Rescan        time.Duration `yaml:"rescan" toml:"rescan"`
}

// LoggingConfig sets the log destination used while the TUI owns the terminal.
type LoggingConfig struct {
	File  string `yaml:"file" toml:"file"`
	Level string `yaml:"level" toml:"level"`
}

// Validate checks the settings for values the kiosk cannot run with.
// knownRunner reports whether a runner name is registered; nil skips that check.
func (s Settings) Validate(knownRunner func(string) bool) error {
	var problems []string

	if s.Grid.Rows <= 0 || s.Grid.Cols <= 0 {
		problems = append(problems, fmt.Sprintf("grid must be at least 1x1, got %dx%d", s.Grid.Rows, s.Grid.Cols))
	}
	if s.FPS < 1 || s.FPS > 240 {
		problems = append(problems, fmt.Sprintf("fps must be in 1..240, got %d", s.FPS))
	}
	if !slices.Contains([]string{OnErrorStay, OnErrorExit}, s.Launcher.OnError) {
		problems = append(problems, fmt.Sprintf("launcher.on_error must be %q or %q, got %q", OnErrorStay, OnErrorExit, s.Launcher.OnError))
	}
	if s.Launcher.Runner == "" {
		problems = append(problems, "launcher.runner is empty")
	} else if knownRunner != nil && !knownRunner(s.Launcher.Runner) {
		problems = append(problems, fmt.Sprintf("unknown runner %q", s.Launcher.Runner))
	}
	if s.Gamepad.Enabled {
		if s.Gamepad.AxisThreshold <= 0 || s.Gamepad.AxisThreshold > 32767 {
			problems = append(problems, fmt.Sprintf("gamepad.axis_threshold must be in 1..32767, got %d", s.Gamepad.AxisThreshold))
		}
		if s.Gamepad.Rescan < 0 {
			problems = append(problems, "gamepad.rescan must not be negative")
		}
	}

	if len(problems) > 0 {
		return &Error{Op: "validate", Err: errors.New(strings.Join(problems, "; "))}
	}
	return nil
}
