package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-kiosk/internal/core"
)

// IconPadding is the share of a tile's width kept clear around its icon.
const IconPadding = 0.10

// Renderer draws the launcher into a screen buffer. It only reads the
// controller.
type Renderer struct {
	Theme       Theme
	Assets      *Assets
	Background  string // image path, empty for a plain backdrop
	ClockFormat string // Go time layout, empty disables the clock
}

// Compose draws the complete frame for now into dst.
func (r *Renderer) Compose(dst *core.Screen, c *core.Controller, now time.Time) {
	dst.FillRect(dst.Bounds(), r.Theme.Backdrop)
	if bg, ok := r.Assets.Cover(r.Background, dst.Width(), dst.Height()*2); ok {
		drawHalfBlocks(dst, bg, 0, 0)
	}
	dst.BlendRect(dst.Bounds(), core.Black, TintAlpha/255.0)

	grid := c.Grid()
	tiles := core.LayoutTiles(dst.Width(), dst.Height(), grid.Rows, grid.Cols)
	entries := c.Entries()
	target, alpha, flashing := c.AnimationProgress(now)

	for idx, tile := range tiles {
		if !grid.Occupied(idx) || tile.Empty() {
			continue
		}

		fill := r.Theme.FaintFill
		if idx == c.Selected() {
			fill = r.Theme.SelectionFill
		}
		dst.FillRect(tile, fill)

		if flashing && idx == target {
			dst.BlendRect(tile, core.White, FlashAlpha*alpha/255)
		}

		r.drawEntry(dst, tile, entries[idx])
	}

	r.drawClock(dst, now)
}

// drawEntry draws the icon inside the padded tile, or the entry name when
// the icon cannot be loaded.
func (r *Renderer) drawEntry(dst *core.Screen, tile core.Rect, entry core.AppEntry) {
	inner := tile.Inset(IconPadding)
	if inner.Empty() {
		return
	}

	if icon, ok := r.Assets.Fit(entry.Icon, inner.W, inner.H*2); ok {
		b := icon.Bounds()
		x := inner.X + (inner.W-b.Dx())/2
		y := inner.Y + (inner.H*2-b.Dy())/4
		drawHalfBlocks(dst, icon, x, y)
		return
	}

	label := runewidth.Truncate(entry.ID, inner.W, "…")
	x := tile.X + (tile.W-runewidth.StringWidth(label))/2
	y := tile.Y + tile.H/2
	dst.DrawText(x, y, label, r.Theme.Label)
}

func (r *Renderer) drawClock(dst *core.Screen, now time.Time) {
	if r.ClockFormat == "" {
		return
	}
	text := now.Format(r.ClockFormat)
	y := 0
	if dst.Height() > 2 {
		y = 1
	}
	dst.DrawText(dst.Width()-runewidth.StringWidth(text)-2, y, text, r.Theme.Clock)
}

type cellColors struct {
	fg, bg core.RGB
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[cellColors]lipgloss.Style)
	styleFor := func(k cellColors) lipgloss.Style {
		if st, ok := styles[k]; ok {
			return st
		}
		st := lipgloss.NewStyle().
			Foreground(lipgloss.Color(k.fg.Hex())).
			Background(lipgloss.Color(k.bg.Hex()))
		styles[k] = st
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with same colours
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
