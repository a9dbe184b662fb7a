package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/kiosk.yaml
var defaultKioskYAML []byte

// DefaultSettings returns the built-in kiosk settings.
func DefaultSettings() Settings {
	return Settings{
		AppsFile: "~/.config/tui-kiosk/apps.json",
		Grid: GridSettings{
			Rows: 2,
			Cols: 3,
		},
		FPS: 60,
		Clock: ClockSettings{
			Enabled: true,
			Format:  "03:04 PM",
		},
		Launcher: LauncherConfig{
			Runner:  "shell",
			Shell:   "bash",
			OnError: OnErrorStay,
		},
		Gamepad: GamepadConfig{
			Enabled:       true,
			Devices:       "/dev/input/js*",
			South:         0,
			DpadUp:        -1,
			DpadDown:      -1,
			DpadLeft:      -1,
			DpadRight:     -1,
			AxisX:         6,
			AxisY:         7,
			AxisThreshold: 16384,
			Rescan:        2 * time.Second,
		},
		Logging: LoggingConfig{
			File:  "~/.cache/tui-kiosk/kiosk.log",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultKioskYAML
}
