package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/config"
	"github.com/vovakirdan/tui-kiosk/internal/core"
	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured applications",
	Long: `Shows every entry of the applications file with its tile position.
Entries beyond the grid capacity are listed but cannot be selected.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	entries, err := config.LoadApps(cfg.AppsFile)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No applications configured.")
		return nil
	}

	grid, err := core.NewGrid(cfg.Grid.Rows, cfg.Grid.Cols, len(entries))
	if err != nil {
		return err
	}

	fmt.Printf("Applications (%s, %dx%d grid):\n", homedir.MustExpand(cfg.AppsFile), grid.Rows, grid.Cols)
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entries {
		if len(e.ID) > maxNameLen {
			maxNameLen = len(e.ID)
		}
	}

	// Print header
	fmt.Printf("  %-5s  %-*s  %s\n", "Tile", maxNameLen, "Name", "Command")
	fmt.Printf("  %-5s  %-*s  %s\n", "----", maxNameLen, "----", "-------")

	for i, e := range entries {
		tile := "-"
		if grid.Occupied(i) {
			row, col := grid.Position(i)
			tile = fmt.Sprintf("%d,%d", row, col)
		}
		fmt.Printf("  %-5s  %-*s  %s\n", tile, maxNameLen, e.ID, e.Command)
	}

	if hidden := len(entries) - grid.Count; hidden > 0 {
		fmt.Println()
		fmt.Printf("%d entries do not fit the grid and are hidden.\n", hidden)
	}
	return nil
}
