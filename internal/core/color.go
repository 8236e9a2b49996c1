package core

import "fmt"

// Color is an RGBA tint with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA builds a Color from its components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Predefined colors.
var (
	ColorWhite = RGBA(1, 1, 1, 1)
	ColorBlack = RGBA(0, 0, 0, 1)
	ColorRed   = RGBA(1, 0, 0, 1)
	ColorGreen = RGBA(0, 1, 0, 1)
	ColorGray  = RGBA(0.5, 0.5, 0.5, 1)
)

// Hex returns the color as #rrggbb, premultiplied by alpha.
// Terminals have no alpha channel, so translucent tints come out darker.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R*c.A), channel(c.G*c.A), channel(c.B*c.A))
}

// Scale returns the color with its RGB components multiplied by f.
func (c Color) Scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Over composites c on top of dst using c's alpha. The result keeps
// dst's alpha.
func (c Color) Over(dst Color) Color {
	a := c.A
	return Color{
		R: c.R*a + dst.R*(1-a),
		G: c.G*a + dst.G*(1-a),
		B: c.B*a + dst.B*(1-a),
		A: dst.A,
	}
}
