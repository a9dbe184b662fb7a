package core

// Grid maps a variable-length entry list onto a fixed rows x cols layout.
// Indices are row-major. Only indices below Count hold an entry; the
// trailing cells of a partially filled grid exist as geometry but are never
// selectable.
type Grid struct {
	Rows  int
	Cols  int
	Count int // Occupied cells, min(entries, Rows*Cols)
}

// NewGrid creates a grid for count entries. Entries beyond the grid's
// capacity are not addressable.
func NewGrid(rows, cols, count int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, ErrEmptyGrid
	}
	if count <= 0 {
		return Grid{}, ErrNoEntries
	}
	if capacity := rows * cols; count > capacity {
		count = capacity
	}
	return Grid{Rows: rows, Cols: cols, Count: count}, nil
}

// Capacity returns the number of cells in the grid.
func (g Grid) Capacity() int {
	return g.Rows * g.Cols
}

// Occupied reports whether idx holds an entry.
func (g Grid) Occupied(idx int) bool {
	return idx >= 0 && idx < g.Count
}

// Position returns the row and column of idx.
func (g Grid) Position(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// MoveRight returns the index to the right of selected.
// It never crosses the right edge of a row and never lands past the last
// entry.
func (g Grid) MoveRight(selected int) (int, bool) {
	next := selected + 1
	if next < g.Count && next%g.Cols != 0 {
		return next, true
	}
	return selected, false
}

// MoveLeft returns the index to the left of selected.
// Only the left edge is checked: every cell left of an occupied cell is
// occupied too.
func (g Grid) MoveLeft(selected int) (int, bool) {
	if selected%g.Cols != 0 {
		return selected - 1, true
	}
	return selected, false
}

// MoveDown returns the index below selected if that cell holds an entry.
func (g Grid) MoveDown(selected int) (int, bool) {
	next := selected + g.Cols
	if next < g.Count {
		return next, true
	}
	return selected, false
}

// MoveUp returns the index above selected unless it is on the first row.
func (g Grid) MoveUp(selected int) (int, bool) {
	if selected >= g.Cols {
		return selected - g.Cols, true
	}
	return selected, false
}

// Move applies a directional intent. Non-directional intents are no-ops.
func (g Grid) Move(selected int, intent Intent) (int, bool) {
	switch intent {
	case IntentMoveRight:
		return g.MoveRight(selected)
	case IntentMoveLeft:
		return g.MoveLeft(selected)
	case IntentMoveDown:
		return g.MoveDown(selected)
	case IntentMoveUp:
		return g.MoveUp(selected)
	default:
		return selected, false
	}
}
