package rhythmui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black.
var ColorTransparent = Color{}

// Gray returns an opaque gray with all channels set to v.
func Gray(v float64) Color {
	return Color{v, v, v, 1}
}

// Opacity returns c with its alpha replaced by a.
func (c Color) Opacity(a float64) Color {
	c.A = a
	return c
}

// Lighten scales the RGB channels by 1+amount, clamping to 1. Alpha is kept.
func (c Color) Lighten(amount float64) Color {
	s := 1 + amount
	return Color{clamp01(c.R * s), clamp01(c.G * s), clamp01(c.B * s), c.A}
}

// Darken divides the RGB channels by 1+amount. Alpha is kept.
func (c Color) Darken(amount float64) Color {
	s := 1 + amount
	return Color{c.R / s, c.G / s, c.B / s, c.A}
}

// Blend mixes c toward o by t in RGB space; alpha is interpolated linearly.
func (c Color) Blend(o Color, t float64) Color {
	m := colorful.Color{R: c.R, G: c.G, B: c.B}.BlendRgb(colorful.Color{R: o.R, G: o.G, B: o.B}, t)
	return Color{m.R, m.G, m.B, c.A + (o.A-c.A)*t}
}

// ColorFromHSL builds an opaque color from hue in degrees and saturation and
// lightness in [0, 1].
func ColorFromHSL(h, s, l float64) Color {
	c := colorful.Hsl(math.Mod(h, 360), s, l).Clamped()
	return Color{c.R, c.G, c.B, 1}
}

// ParseHexColor parses "#rrggbb" into an opaque color.
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("rhythmui: parse colour %q: %w", s, err)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

// Hex formats the RGB channels as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// multiply returns the component-wise product of c and o.
func (c Color) multiply(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
