package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/config"
	"github.com/vovakirdan/tui-kiosk/internal/gamepad"
	"github.com/vovakirdan/tui-kiosk/internal/logging"
	"github.com/vovakirdan/tui-kiosk/internal/runner"
)

// loadSettings reads the settings file and applies command-line overrides.
func loadSettings(cmd *cobra.Command) (config.Settings, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	flags := cmd.Flags()
	if flags.Changed("apps") {
		cfg.AppsFile = flagApps
	}
	if flags.Changed("fps") {
		cfg.FPS = flagFPS
	}
	if flags.Changed("runner") {
		cfg.Launcher.Runner = flagRunner
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}

	if err := cfg.Validate(runner.Exists); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// newLogger logs to the configured file when toFile is set, otherwise to
// stderr.
func newLogger(cfg config.Settings, toFile bool) (*log.Logger, func() error, error) {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Prefix: "kiosk",
	}
	if toFile {
		opts.File = cfg.Logging.File
	}
	return logging.New(opts)
}

func newRunner(cfg config.Settings, logger *log.Logger) (runner.Runner, error) {
	return runner.Create(cfg.Launcher.Runner, runner.Options{
		Shell:     cfg.Launcher.Shell,
		ShellArgs: cfg.Launcher.ShellArgs,
		Logger:    logger,
	})
}

func gamepadOptions(cfg config.Settings, logger *log.Logger) gamepad.Options {
	pad := cfg.Gamepad
	return gamepad.Options{
		Glob: pad.Devices,
		Mapping: gamepad.Mapping{
			South:     pad.South,
			DpadUp:    pad.DpadUp,
			DpadDown:  pad.DpadDown,
			DpadLeft:  pad.DpadLeft,
			DpadRight: pad.DpadRight,
			AxisX:     pad.AxisX,
			AxisY:     pad.AxisY,
			Threshold: pad.AxisThreshold,
		},
		Rescan: pad.Rescan,
		Logger: logger,
	}
}
