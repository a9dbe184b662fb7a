package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

// Overlay strengths, out of 255.
const (
	TintAlpha  = 140 // black over the background image
	FlashAlpha = 200 // white over a launched tile at the start of the fade
)

// Theme contains the kiosk colours.
type Theme struct {
	Backdrop      core.RGB // screen colour when there is no background image
	SelectionFill core.RGB // selected tile
	FaintFill     core.RGB // other occupied tiles
	Label         core.RGB // entry name when the icon is missing
	Clock         core.RGB

	Help lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Backdrop:      core.RGB{R: 18, G: 18, B: 24},
		SelectionFill: core.RGB{R: 0, G: 92, B: 128},
		FaintFill:     core.RGB{R: 40, G: 40, B: 44},
		Label:         core.White,
		Clock:         core.White,

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	}
}
