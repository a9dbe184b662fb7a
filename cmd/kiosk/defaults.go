package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default settings file",
	Long: `Prints the built-in settings as YAML. Redirect it to
~/.config/tui-kiosk/kiosk.yaml or ./configs/kiosk.yaml to customise.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
