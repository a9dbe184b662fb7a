package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

// Run starts the Bubble Tea program and blocks until the kiosk closes.
// The returned error is the launch failure that ended it under the exit
// policy, or a program error.
func Run(ctrl *core.Controller, opts Options) error {
	model := NewModel(ctrl, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Focus and blur gate input
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
