package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kiosk/internal/config"
	"github.com/vovakirdan/tui-kiosk/internal/core"
	"github.com/vovakirdan/tui-kiosk/internal/gamepad"
	"github.com/vovakirdan/tui-kiosk/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the launcher grid",
	Long: `Show the application grid full screen.

Controls:
  Arrows/hjkl    - Move the selection
  Enter/Space    - Launch the selected application
  C              - Close the kiosk
  Ctrl+C         - Quit immediately

Gamepad:
  D-pad          - Move the selection
  South button   - Launch

Input is ignored while the terminal does not have focus. Launched
applications run in their own session and keep running after the kiosk
exits.

Examples:
  kiosk run
  kiosk run --config ./configs/kiosk.toml
  kiosk run --runner dry-run --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("kiosk run needs a terminal on stdout")
	}

	cfg, source, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	entries, err := config.LoadApps(cfg.AppsFile)
	if err != nil {
		return err
	}

	launcher, err := newRunner(cfg, logger)
	if err != nil {
		return err
	}

	ctrl, err := core.NewController(entries, cfg.Grid.Rows, cfg.Grid.Cols, launcher)
	if err != nil {
		return fmt.Errorf("kiosk: %w", err)
	}

	logger.Info("Starting kiosk",
		"settings", source,
		"apps", cfg.AppsFile,
		"entries", len(entries),
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Rows, cfg.Grid.Cols),
		"runner", launcher.Name(),
	)
	if hidden := len(entries) - ctrl.Grid().Count; hidden > 0 {
		logger.Warn("Entries beyond grid capacity are not shown", "hidden", hidden)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.FPS,
		},
		Renderer: &tui.Renderer{
			Theme:      tui.DefaultTheme(),
			Assets:     tui.NewAssets(logger),
			Background: cfg.Background,
		},
		OnError: cfg.Launcher.OnError,
		Logger:  logger,
	}
	if cfg.Clock.Enabled {
		opts.Renderer.ClockFormat = cfg.Clock.Format
	}

	if cfg.Gamepad.Enabled {
		hub, err := gamepad.Open(context.Background(), gamepadOptions(cfg, logger))
		if err != nil {
			return err
		}
		defer hub.Close()
		opts.Pad = hub
	}

	if err := tui.Run(ctrl, opts); err != nil {
		return err
	}
	logger.Info("Kiosk closed")
	return nil
}
