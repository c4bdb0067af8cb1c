// Package config loads and validates the free-fly controller's tunables from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

// Accepted range for the damping settle times, in seconds.
const (
	MinLerpTime = 0.001
	MaxLerpTime = 1.0
)

var (
	ErrInvalidLerpTime    = errors.New("lerp time must be within [0.001, 1] seconds")
	ErrInvalidSensitivity = errors.New("mouse sensitivity must be finite")
	ErrInvalidSprint      = errors.New("sprint multiplier must be positive and finite")
	ErrInvalidCurve       = errors.New("sensitivity curve keys must be finite")
	ErrInvalidTunable     = errors.New("value must be finite")
	ErrUnknownKey         = errors.New("unknown key")
)

// Keyframe is one key of the pointer sensitivity curve.
// Time is pointer movement magnitude, Value the multiplicative factor at that magnitude.
type Keyframe struct {
	Time       float32 `yaml:"time"`
	Value      float32 `yaml:"value"`
	InTangent  float32 `yaml:"in_tangent"`
	OutTangent float32 `yaml:"out_tangent"`
}

// Controller holds every tunable of the free-fly camera controller.
type Controller struct {
	// Boost is the initial exponent of the 2^boost translation speed multiplier.
	Boost float32 `yaml:"boost"`
	// PositionLerpTime is the time for the damped position to close 99% of the gap to its target.
	PositionLerpTime float32 `yaml:"position_lerp_time"`
	// RotationLerpTime is the time for the damped rotation to close 99% of the gap to its target.
	RotationLerpTime float32 `yaml:"rotation_lerp_time"`
	InvertY          bool    `yaml:"invert_y"`
	// MouseSense is the linear multiplier applied after the sensitivity curve.
	MouseSense       float32 `yaml:"mouse_sense"`
	SprintMultiplier float32 `yaml:"sprint_multiplier"`
	// ScrollBoostStep is added to Boost per unit of vertical scroll.
	ScrollBoostStep float32 `yaml:"scroll_boost_step"`
	// Floor is the lowest height the target pose may reach.
	Floor            float32           `yaml:"floor"`
	SensitivityCurve []Keyframe        `yaml:"sensitivity_curve"`
	Bindings         map[string]string `yaml:"bindings"`
}

// Default returns the stock controller configuration.
//
// Returns:
//   - Controller: defaults for every field
func Default() Controller {
	return Controller{
		Boost:            3.5,
		PositionLerpTime: 0.2,
		RotationLerpTime: 0.01,
		InvertY:          false,
		MouseSense:       1,
		SprintMultiplier: 10,
		ScrollBoostStep:  0.2,
		Floor:            0,
		SensitivityCurve: []Keyframe{
			{Time: 0, Value: 0.5, InTangent: 0, OutTangent: 5},
			{Time: 1, Value: 2.5, InTangent: 0, OutTangent: 0},
		},
	}
}

// Load reads a YAML file and decodes it over Default. Fields absent from the file keep their defaults.
// The result is validated before it is returned.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Controller: the loaded configuration
//   - error: if the file cannot be read, decoded or fails validation
func Load(path string) (Controller, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Controller{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Controller{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes over Default and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Controller: the decoded configuration
//   - error: if decoding or validation fails
func Parse(data []byte) (Controller, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Controller{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Controller{}, err
	}
	return cfg, nil
}

// ValidateLerpTime checks a damping settle time against [MinLerpTime, MaxLerpTime].
// A zero or negative time would make the decay rate divide by zero or grow without bound.
//
// Parameters:
//   - name: field name used in the error message
//   - v: the settle time in seconds
//
// Returns:
//   - error: wraps ErrInvalidLerpTime when out of range
func ValidateLerpTime(name string, v float32) error {
	if !common.IsFinite(v) || v < MinLerpTime || v > MaxLerpTime {
		return fmt.Errorf("%s = %v: %w", name, v, ErrInvalidLerpTime)
	}
	return nil
}

// ValidateTunable rejects NaN and infinite values for tunables with no other range.
//
// Parameters:
//   - name: field name used in the error message
//   - v: the value to check
//
// Returns:
//   - error: wraps ErrInvalidTunable when v is not finite
func ValidateTunable(name string, v float32) error {
	if !common.IsFinite(v) {
		return fmt.Errorf("%s = %v: %w", name, v, ErrInvalidTunable)
	}
	return nil
}

// ValidateKeyframe rejects a sensitivity curve key with a non-finite field.
func ValidateKeyframe(index int, k Keyframe) error {
	if !common.IsFinite(k.Time) || !common.IsFinite(k.Value) ||
		!common.IsFinite(k.InTangent) || !common.IsFinite(k.OutTangent) {
		return fmt.Errorf("sensitivity_curve[%d]: %w", index, ErrInvalidCurve)
	}
	return nil
}

// Validate reports the first invalid field.
//
// Returns:
//   - error: nil if the configuration is usable
func (c Controller) Validate() error {
	if err := ValidateLerpTime("position_lerp_time", c.PositionLerpTime); err != nil {
		return err
	}
	if err := ValidateLerpTime("rotation_lerp_time", c.RotationLerpTime); err != nil {
		return err
	}
	if !common.IsFinite(c.MouseSense) {
		return fmt.Errorf("mouse_sense = %v: %w", c.MouseSense, ErrInvalidSensitivity)
	}
	if !common.IsFinite(c.SprintMultiplier) || c.SprintMultiplier <= 0 {
		return fmt.Errorf("sprint_multiplier = %v: %w", c.SprintMultiplier, ErrInvalidSprint)
	}
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"boost", c.Boost},
		{"scroll_boost_step", c.ScrollBoostStep},
		{"floor", c.Floor},
	} {
		if err := ValidateTunable(f.name, f.v); err != nil {
			return err
		}
	}
	for i, k := range c.SensitivityCurve {
		if err := ValidateKeyframe(i, k); err != nil {
			return err
		}
	}
	if _, err := c.KeyBindings(); err != nil {
		return err
	}
	return nil
}

// KeyBindings resolves the configured bindings over input.DefaultBindings.
// Keys are logical key names ("forward", "sprint", ...) and values are key names ("W", "LEFT_SHIFT", ...).
//
// Returns:
//   - input.KeyBindings: the resolved bindings
//   - error: wraps ErrUnknownKey for an unknown logical or physical key name
func (c Controller) KeyBindings() (input.KeyBindings, error) {
	b := input.DefaultBindings()

	// Sorted so the reported error is deterministic.
	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lk, ok := input.ParseLogicalKey(name)
		if !ok {
			return nil, fmt.Errorf("bindings: action %q: %w", name, ErrUnknownKey)
		}
		code, ok := common.KeyCodeByName(c.Bindings[name])
		if !ok {
			return nil, fmt.Errorf("bindings: %s = %q: %w", name, c.Bindings[name], ErrUnknownKey)
		}
		b[lk] = code
	}
	return b, nil
}
