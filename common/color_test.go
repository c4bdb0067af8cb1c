package common

import (
	"image/color"
	"math"
	"testing"
)

func colorsClose(a, b Color) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestSkyColor(t *testing.T) {
	tests := []struct {
		Pitch    float32
		Expected Color
	}{
		{0, HorizonColor},
		{90, GroundColor},
		{-90, ZenithColor},
		{180, HorizonColor},
		{450, GroundColor},
		{30, BlendColor(HorizonColor, GroundColor, 0.5)},
		{-30, BlendColor(HorizonColor, ZenithColor, 0.5)},
	}

	for _, c := range tests {
		if r := SkyColor(c.Pitch); !colorsClose(r, c.Expected) {
			t.Errorf("SkyColor(%v) != %+v (got %+v)", c.Pitch, c.Expected, r)
		}
	}
}

func TestBlendColor(t *testing.T) {
	black := Color{A: 0}
	white := Color{R: 1, G: 1, B: 1, A: 1}

	tests := []struct {
		Name     string
		T        float64
		Expected Color
	}{
		{"start", 0, black},
		{"end", 1, white},
		{"clamped above", 2, white},
		{"clamped below", -1, black},
	}
	for _, c := range tests {
		if r := BlendColor(black, white, c.T); !colorsClose(r, c.Expected) {
			t.Errorf("%s: BlendColor != %+v (got %+v)", c.Name, c.Expected, r)
		}
	}

	// Lab midpoint of black and white is a neutral grey lighter than the sRGB average
	mid := BlendColor(black, white, 0.5)
	if math.Abs(mid.R-mid.G) > 1e-4 || math.Abs(mid.G-mid.B) > 1e-4 {
		t.Errorf("midpoint should be neutral (got %+v)", mid)
	}
	if mid.A != 0.5 {
		t.Errorf("alpha should blend linearly (got %v)", mid.A)
	}
}

func TestColor_RGBA8(t *testing.T) {
	tests := []struct {
		In       Color
		Expected color.RGBA
	}{
		{Color{R: 1, G: 0, B: 0.5, A: 1}, color.RGBA{R: 255, G: 0, B: 128, A: 255}},
		{Color{R: 2, G: -1, B: 0, A: 0}, color.RGBA{R: 255, G: 0, B: 0, A: 0}},
	}
	for _, c := range tests {
		if r := c.In.RGBA8(); r != c.Expected {
			t.Errorf("%+v.RGBA8() != %v (got %v)", c.In, c.Expected, r)
		}
	}
}
