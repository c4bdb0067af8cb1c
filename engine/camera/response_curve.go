package camera

import (
	"sort"

	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
)

// Keyframe is one key of a ResponseCurve. Tangents are slopes (dValue/dTime).
type Keyframe struct {
	Time       float32
	Value      float32
	InTangent  float32
	OutTangent float32
}

// ResponseCurve maps a pointer movement magnitude to a sensitivity factor using
// cubic Hermite segments between keyframes. Inputs outside the key range are clamped
// to the first or last key's value.
type ResponseCurve struct {
	keys []Keyframe
}

// NewResponseCurve builds a curve from keys in any order.
//
// Parameters:
//   - keys: the keyframes; sorted by Time on construction
//
// Returns:
//   - ResponseCurve: the curve
func NewResponseCurve(keys ...Keyframe) ResponseCurve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return ResponseCurve{keys: sorted}
}

// ConstantCurve returns a curve that evaluates to v everywhere.
func ConstantCurve(v float32) ResponseCurve {
	return NewResponseCurve(Keyframe{Value: v})
}

// curveFromConfig converts config keyframes to a ResponseCurve.
func curveFromConfig(keys []config.Keyframe) ResponseCurve {
	out := make([]Keyframe, len(keys))
	for i, k := range keys {
		out[i] = Keyframe{Time: k.Time, Value: k.Value, InTangent: k.InTangent, OutTangent: k.OutTangent}
	}
	return NewResponseCurve(out...)
}

// Keys returns a copy of the curve's keyframes in time order.
func (c ResponseCurve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Evaluate returns the curve's value at t. An empty curve evaluates to 1.
//
// Parameters:
//   - t: the input, typically the pointer movement magnitude
//
// Returns:
//   - float32: the factor at t
func (c ResponseCurve) Evaluate(t float32) float32 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 1
	case t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}

	// first key strictly after t; t lies in [keys[i-1].Time, keys[i].Time)
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	k0, k1 := c.keys[i-1], c.keys[i]

	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}
	s := (t - k0.Time) / span
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*span*k0.OutTangent + h01*k1.Value + h11*span*k1.InTangent
}
