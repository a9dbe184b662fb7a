// kiosk is a full-screen terminal launcher for a fixed grid of applications,
// driven by keyboard or gamepad.
//
// Usage:
//
//	kiosk run               - Show the launcher grid
//	kiosk list              - List configured applications and their tiles
//	kiosk launch <name>     - Start an application by (fuzzy) name
//	kiosk gamepads          - List detected joystick devices
//	kiosk runners           - List available process runners
//	kiosk defaults          - Print the default settings file
//
// Global flags:
//
//	--config <path>     - Settings file (default: ~/.config/tui-kiosk/kiosk.yaml)
//	--apps <path>       - Applications file, overrides apps_file
//	--fps <rate>        - Frame rate, overrides fps
//	--runner <name>     - Process runner, overrides launcher.runner
//	--log-file <path>   - Log file used while the grid is shown
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagApps     string
	flagFPS      int
	flagRunner   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if config.IsConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "TUI Kiosk - A gamepad-friendly application launcher",
	Long: `TUI Kiosk shows a grid of application tiles full screen and starts
the selected one when you press Enter or the gamepad's south button.

Available commands:
  run       - Show the launcher grid
  list      - List configured applications
  launch    - Start an application without the grid
  gamepads  - List detected joystick devices
  runners   - List available process runners
  defaults  - Print the default settings file

Examples:
  kiosk run
  kiosk run --apps ~/.config/tui-kiosk/apps.toml --fps 30
  kiosk list
  kiosk launch steam
  kiosk defaults > ~/.config/tui-kiosk/kiosk.yaml
  kiosk run --runner dry-run --log-level debug`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagApps, "apps", "", "Path to applications file (JSON, YAML or TOML)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagRunner, "runner", "", "Process runner: shell, exec, dry-run")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while the grid is shown")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(gamepadsCmd)
	rootCmd.AddCommand(runnersCmd)
	rootCmd.AddCommand(defaultsCmd)
}
