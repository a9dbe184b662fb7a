package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kiosk/internal/runner"
)

var runnersCmd = &cobra.Command{
	Use:   "runners",
	Short: "List available process runners",
	Long:  `Shows the runners that can be selected with launcher.runner or --runner.`,
	Args:  cobra.NoArgs,
	Run:   runRunners,
}

func runRunners(cmd *cobra.Command, args []string) {
	runners := runner.List()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, r := range runners {
		if len(r.Name) > maxNameLen {
			maxNameLen = len(r.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, r := range runners {
		fmt.Printf("  %-*s  %s\n", maxNameLen, r.Name, r.Description)
	}
}
