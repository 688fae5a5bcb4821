package geom

import (
	"fmt"
	"math"
)

// Color is an RGB color with channels in [0, 1]. Opacity is carried
// separately on material specs, not here.
type Color struct {
	R, G, B float64
}

// Lerp interpolates from c toward to. t is clamped to [0, 1]; the
// endpoints return c and to exactly, with no rounding drift.
func (c Color) Lerp(to Color, t float64) Color {
	t = Clamp01(t)
	if t == 0 {
		return c
	}
	if t == 1 {
		return to
	}
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
	}
}

// Hex renders the color as "#rrggbb" for logs and canvas backends.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

// RGB builds a Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}
