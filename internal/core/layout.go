package core

// Tile layout constants.
const (
	TileFill = 0.75 // Share of each grid cell a tile occupies
	TileGapX = 4    // Columns between tiles
	TileGapY = 1    // Rows between tiles
)

// LayoutTiles returns the row-major tile rectangles for a rows x cols grid
// centred in a width x height area. Gaps shrink when the area is too small
// to hold them.
func LayoutTiles(width, height, rows, cols int) []Rect {
	if rows <= 0 || cols <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	tileW := int(float64(width) / float64(cols) * TileFill)
	tileH := int(float64(height) / float64(rows) * TileFill)

	gapX := Clamp((width-tileW*cols)/max(cols-1, 1), 0, TileGapX)
	gapY := Clamp((height-tileH*rows)/max(rows-1, 1), 0, TileGapY)

	totalW := tileW*cols + gapX*(cols-1)
	totalH := tileH*rows + gapY*(rows-1)
	offsetX := (width - totalW) / 2
	offsetY := (height - totalH) / 2

	rects := make([]Rect, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rects = append(rects, Rect{
				X: offsetX + col*(tileW+gapX),
				Y: offsetY + row*(tileH+gapY),
				W: tileW,
				H: tileH,
			})
		}
	}
	return rects
}
