package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/gamepad"
)

var gamepadsCmd = &cobra.Command{
	Use:   "gamepads",
	Short: "List detected joystick devices",
	Long: `Scans the configured device glob (default /dev/input/js*) and shows
each joystick the kiosk would read.`,
	Args: cobra.NoArgs,
	RunE: runGamepads,
}

func runGamepads(cmd *cobra.Command, args []string) error {
	if !gamepad.Supported {
		fmt.Println("Gamepads are only supported on Linux.")
		return nil
	}

	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := gamepadOptions(cfg, logger)
	opts.Rescan = 0
	hub, err := gamepad.Open(context.Background(), opts)
	if err != nil {
		return err
	}
	defer hub.Close()

	devices := hub.Devices()
	if len(devices) == 0 {
		fmt.Printf("No gamepads found matching %s.\n", opts.Glob)
		return nil
	}

	fmt.Println("Gamepads:")
	fmt.Println()
	for _, d := range devices {
		name := d.Name
		if name == "" {
			name = "(unknown)"
		}
		fmt.Printf("  %-20s  %s\n", d.Path, name)
	}
	return nil
}
