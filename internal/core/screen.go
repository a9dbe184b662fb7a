package core

import (
	"strings"
)

// Cell is one character cell with true-colour foreground and background.
type Cell struct {
	Rune rune
	FG   RGB
	BG   RGB
}

// Screen is a 2D cell buffer. The renderer composes background, tiles and
// text into it before it is converted to terminal output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  max(width, 0),
		height: max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions. Content is cleared.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with black spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: White, BG: Black}
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a black space for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: White, BG: Black}
	}
	return s.cells[y][x]
}

// FillRect paints the background of every cell in r and clears its rune.
func (s *Screen) FillRect(r Rect, bg RGB) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, Cell{Rune: ' ', FG: White, BG: bg})
		}
	}
}

// BlendRect blends colour over every cell in r, foreground and background,
// keeping the runes.
func (s *Screen) BlendRect(r Rect, over RGB, alpha float64) {
	for y := max(r.Y, 0); y < min(r.Bottom(), s.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), s.width); x++ {
			c := s.cells[y][x]
			c.FG = c.FG.Blend(over, alpha)
			c.BG = c.BG.Blend(over, alpha)
			s.cells[y][x] = c
		}
	}
}

// DrawText writes text horizontally starting at (x, y) keeping each cell's
// background. Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg RGB) {
	i := 0
	for _, r := range text {
		c := s.GetCell(x+i, y)
		c.Rune = r
		c.FG = fg
		s.SetCell(x+i, y, c)
		i++
	}
}

// String returns the runes of the buffer without colour, rows joined with
// newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
