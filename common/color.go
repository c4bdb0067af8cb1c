package common

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Sky gradient stops used by SkyColor.
var (
	ZenithColor  = Color{R: 0.16, G: 0.32, B: 0.62, A: 1}
	HorizonColor = Color{R: 0.62, G: 0.74, B: 0.86, A: 1}
	GroundColor  = Color{R: 0.22, G: 0.20, B: 0.17, A: 1}
)

// BlendColor mixes a toward b by t in CIE L*a*b* space, which keeps the
// midpoints of a gradient from turning muddy. Alpha is blended linearly.
//
// Parameters:
//   - a: start color
//   - b: end color
//   - t: blend fraction, clamped to [0, 1]
//
// Returns:
//   - Color: the blended color, clamped to the RGB gamut
func BlendColor(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	mixed := a.colorful().BlendLab(b.colorful(), t).Clamped()
	return Color{R: mixed.R, G: mixed.G, B: mixed.B, A: a.A + (b.A-a.A)*t}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// SkyColor returns the backdrop seen at a view pitch. Level views see the horizon color,
// looking up (negative pitch) fades toward the zenith and looking down fades toward the ground.
// Pitch is unbounded; the blend follows sin(pitch), so views past vertical fade back toward the horizon.
//
// Parameters:
//   - pitch: view pitch in degrees, positive looks down
//
// Returns:
//   - Color: the backdrop color
func SkyColor(pitch float32) Color {
	s := math.Sin(float64(pitch) * math.Pi / 180)
	if s >= 0 {
		return BlendColor(HorizonColor, GroundColor, s)
	}
	return BlendColor(HorizonColor, ZenithColor, -s)
}

// RGBA8 converts the color to an 8-bit image/color value.
func (c Color) RGBA8() color.RGBA {
	to8 := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}
