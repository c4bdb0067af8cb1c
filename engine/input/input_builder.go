package input

import "github.com/Carmen-Shannon/oxy-freefly/common"

// DefaultPointerScale converts raw pixel motion into axis units.
// One unit of axis motion is ten pixels, which keeps typical per-frame deltas
// inside the [0, 1] domain of the default sensitivity curve.
const DefaultPointerScale = 0.1

// Settings holds the configuration shared by every Source backend.
type Settings struct {
	// Bindings maps logical keys to virtual key codes.
	Bindings KeyBindings
	// PointerScale multiplies raw pointer motion before it is reported.
	PointerScale float32
}

// SourceOption is a functional option for configuring a Source backend.
type SourceOption func(*Settings)

// NewSettings applies options over the defaults.
//
// Parameters:
//   - options: functional options to apply
//
// Returns:
//   - Settings: the resolved settings
func NewSettings(options ...SourceOption) Settings {
	s := Settings{}
	for _, opt := range options {
		opt(&s)
	}
	if s.Bindings == nil {
		s.Bindings = DefaultBindings()
	}
	s.PointerScale = common.Coalesce(s.PointerScale, DefaultPointerScale)
	return s
}

// WithBindings replaces the key bindings. Logical keys missing from b are unbound.
//
// Parameters:
//   - b: the key bindings to use
//
// Returns:
//   - SourceOption: option function to apply
func WithBindings(b KeyBindings) SourceOption {
	return func(s *Settings) {
		s.Bindings = make(KeyBindings, len(b))
		for k, v := range b {
			s.Bindings[k] = v
		}
	}
}

// WithPointerScale sets the multiplier applied to raw pointer motion.
// Zero selects DefaultPointerScale.
//
// Parameters:
//   - scale: multiplier for pixel motion
//
// Returns:
//   - SourceOption: option function to apply
func WithPointerScale(scale float32) SourceOption {
	return func(s *Settings) {
		s.PointerScale = scale
	}
}
