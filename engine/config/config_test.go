package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() failed: %v", err)
	}
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
boost: 1.5
position_lerp_time: 0.5
invert_y: true
sensitivity_curve:
  - {time: 0, value: 1}
bindings:
  forward: UP
  sprint: right_shift
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Boost != 1.5 {
		t.Errorf("Boost != 1.5 (got %v)", cfg.Boost)
	}
	if cfg.PositionLerpTime != 0.5 {
		t.Errorf("PositionLerpTime != 0.5 (got %v)", cfg.PositionLerpTime)
	}
	if cfg.RotationLerpTime != 0.01 {
		t.Errorf("RotationLerpTime should keep its default (got %v)", cfg.RotationLerpTime)
	}
	if !cfg.InvertY {
		t.Error("InvertY should be true")
	}
	if cfg.SprintMultiplier != 10 {
		t.Errorf("SprintMultiplier should keep its default (got %v)", cfg.SprintMultiplier)
	}
	if len(cfg.SensitivityCurve) != 1 || cfg.SensitivityCurve[0].Value != 1 {
		t.Errorf("SensitivityCurve should be replaced (got %+v)", cfg.SensitivityCurve)
	}

	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatalf("KeyBindings failed: %v", err)
	}
	if b[input.KeyForward] != common.KeyUp {
		t.Errorf("forward != UP (got %d)", b[input.KeyForward])
	}
	if b[input.KeySprint] != common.KeyRightShift {
		t.Errorf("sprint != RIGHT_SHIFT (got %d)", b[input.KeySprint])
	}
	if b[input.KeyBack] != common.KeyS {
		t.Errorf("unlisted bindings should keep defaults (back = %d)", b[input.KeyBack])
	}
}

func TestValidate_Rejects(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		Name     string
		Mutate   func(*Controller)
		Expected error
	}{
		{"zero position lerp", func(c *Controller) { c.PositionLerpTime = 0 }, ErrInvalidLerpTime},
		{"negative position lerp", func(c *Controller) { c.PositionLerpTime = -0.2 }, ErrInvalidLerpTime},
		{"tiny rotation lerp", func(c *Controller) { c.RotationLerpTime = 0.0001 }, ErrInvalidLerpTime},
		{"long rotation lerp", func(c *Controller) { c.RotationLerpTime = 2 }, ErrInvalidLerpTime},
		{"nan lerp", func(c *Controller) { c.PositionLerpTime = nan }, ErrInvalidLerpTime},
		{"inf sensitivity", func(c *Controller) { c.MouseSense = inf }, ErrInvalidSensitivity},
		{"zero sprint", func(c *Controller) { c.SprintMultiplier = 0 }, ErrInvalidSprint},
		{"nan curve", func(c *Controller) { c.SensitivityCurve = []Keyframe{{Value: nan}} }, ErrInvalidCurve},
		{"nan boost", func(c *Controller) { c.Boost = nan }, ErrInvalidTunable},
		{"inf scroll step", func(c *Controller) { c.ScrollBoostStep = -inf }, ErrInvalidTunable},
		{"nan floor", func(c *Controller) { c.Floor = nan }, ErrInvalidTunable},
		{"unknown action", func(c *Controller) { c.Bindings = map[string]string{"jump": "SPACE"} }, ErrUnknownKey},
		{"unknown key", func(c *Controller) { c.Bindings = map[string]string{"forward": "HYPER"} }, ErrUnknownKey},
	}

	for _, c := range tests {
		cfg := Default()
		c.Mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, c.Expected) {
			t.Errorf("%s: Validate() = %v, expected %v", c.Name, err, c.Expected)
		}
	}
}

func TestValidateLerpTime_Bounds(t *testing.T) {
	if err := ValidateLerpTime("t", MinLerpTime); err != nil {
		t.Errorf("MinLerpTime should be accepted: %v", err)
	}
	if err := ValidateLerpTime("t", MaxLerpTime); err != nil {
		t.Errorf("MaxLerpTime should be accepted: %v", err)
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("boost: [1, 2")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
	if _, err := Parse([]byte("position_lerp_time: 0")); !errors.Is(err, ErrInvalidLerpTime) {
		t.Errorf("expected ErrInvalidLerpTime, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "freefly.yaml")
	if err := os.WriteFile(path, []byte("mouse_sense: 2\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MouseSense != 2 {
		t.Errorf("MouseSense != 2 (got %v)", cfg.MouseSense)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
