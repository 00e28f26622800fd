package quarkgl

import "image/color"

// Color is an 8-bit RGBA color.
type Color = color.RGBA

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

// Shade scales the RGB channels of c by s clamped to [0, 1]. Alpha is kept.
func Shade(c Color, s float32) Color {
	k := uint32(clamp01(s) * 255)
	scale := func(ch uint8) uint8 { return uint8(uint32(ch) * k / 255) }
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
