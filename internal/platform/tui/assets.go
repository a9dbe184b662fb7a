package tui

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/vovakirdan/tui-kiosk/internal/core"
	"github.com/vovakirdan/tui-kiosk/internal/homedir"
)

// maxScaled bounds the scaled-image cache. Resizes invalidate old entries,
// so the cache is dropped when it fills up.
const maxScaled = 64

type scaleMode int

const (
	scaleCover scaleMode = iota
	scaleFit
)

type scaledKey struct {
	path string
	w, h int
	mode scaleMode
}

// Assets loads and scales images for the renderer. Failures are logged once
// per path and the path is not retried.
type Assets struct {
	logger *log.Logger
	images map[string]image.Image
	failed map[string]bool
	scaled map[scaledKey]image.Image
}

// NewAssets creates an empty image cache.
func NewAssets(logger *log.Logger) *Assets {
	if logger == nil {
		logger = log.Default()
	}
	return &Assets{
		logger: logger,
		images: make(map[string]image.Image),
		failed: make(map[string]bool),
		scaled: make(map[scaledKey]image.Image),
	}
}

func (a *Assets) load(path string) (image.Image, bool) {
	if path == "" || a.failed[path] {
		return nil, false
	}
	if img, ok := a.images[path]; ok {
		return img, true
	}

	expanded, err := homedir.Expand(path)
	if err == nil {
		var img image.Image
		img, err = imaging.Open(expanded, imaging.AutoOrientation(true))
		if err == nil {
			a.images[path] = img
			return img, true
		}
	}

	a.failed[path] = true
	a.logger.Warn("Cannot load image", "path", path, "error", err)
	return nil, false
}

// Cover returns the image at path scaled and centre-cropped to exactly w x h
// pixels.
func (a *Assets) Cover(path string, w, h int) (image.Image, bool) {
	return a.scale(path, w, h, scaleCover)
}

// Fit returns the image at path scaled down to fit within w x h pixels,
// keeping its aspect ratio.
func (a *Assets) Fit(path string, w, h int) (image.Image, bool) {
	return a.scale(path, w, h, scaleFit)
}

func (a *Assets) scale(path string, w, h int, mode scaleMode) (image.Image, bool) {
	if w <= 0 || h <= 0 {
		return nil, false
	}
	k := scaledKey{path: path, w: w, h: h, mode: mode}
	if img, ok := a.scaled[k]; ok {
		return img, true
	}

	src, ok := a.load(path)
	if !ok {
		return nil, false
	}

	var img image.Image
	switch mode {
	case scaleCover:
		img = imaging.Fill(src, w, h, imaging.Center, imaging.Lanczos)
	default:
		img = imaging.Fit(src, w, h, imaging.Lanczos)
	}

	if len(a.scaled) >= maxScaled {
		clear(a.scaled)
	}
	a.scaled[k] = img
	return img, true
}

// drawHalfBlocks paints img into the screen with two vertical pixels per
// cell: the upper half block takes the top pixel as its foreground and the
// bottom pixel as its background. Translucent pixels blend over the cell's
// current colours.
func drawHalfBlocks(s *core.Screen, img image.Image, x, y int) {
	b := img.Bounds()
	rows := (b.Dy() + 1) / 2

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < b.Dx(); cx++ {
			cell := s.GetCell(x+cx, y+cy)
			top := over(img.At(b.Min.X+cx, b.Min.Y+2*cy), cell.BG)
			bottom := cell.BG
			if 2*cy+1 < b.Dy() {
				bottom = over(img.At(b.Min.X+cx, b.Min.Y+2*cy+1), cell.BG)
			}
			s.SetCell(x+cx, y+cy, core.Cell{Rune: '▀', FG: top, BG: bottom})
		}
	}
}

// over composites c onto base.
func over(c color.Color, base core.RGB) core.RGB {
	r, g, b, a := c.RGBA() // alpha-premultiplied, 16 bit
	inv := 0xffff - a
	mix := func(premul uint32, under uint8) uint8 {
		return uint8((premul + uint32(under)*0x101*inv/0xffff) >> 8)
	}
	return core.RGB{R: mix(r, base.R), G: mix(g, base.G), B: mix(b, base.B)}
}
