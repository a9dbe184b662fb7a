package core

import "fmt"

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// Common colours.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Blend paints over on top of c with the given opacity in [0, 1].
func (c RGB) Blend(over RGB, alpha float64) RGB {
	alpha = ClampF(alpha, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-alpha) + float64(b)*alpha + 0.5)
	}
	return RGB{R: mix(c.R, over.R), G: mix(c.G, over.G), B: mix(c.B, over.B)}
}

// Hex returns the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
