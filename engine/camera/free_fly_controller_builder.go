package camera

import (
	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

// FreeFlyControllerOption is a functional option for configuring a FreeFlyController.
type FreeFlyControllerOption func(*freeFlyControllerImpl)

// WithInput sets the input source the controller samples each frame. Required.
//
// Parameters:
//   - src: the input source
//
// Returns:
//   - FreeFlyControllerOption: a function that sets the input source
func WithInput(src input.Source) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.input = src
	}
}

// WithHost sets the application notified when the escape key is held.
// Without a host the escape key is ignored.
//
// Parameters:
//   - host: the owning application
//
// Returns:
//   - FreeFlyControllerOption: a function that sets the host
func WithHost(host Host) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.host = host
	}
}

// WithConfig applies every tunable in cfg, including its initial boost.
// Validation happens when the controller is built.
//
// Parameters:
//   - cfg: the configuration to apply
//
// Returns:
//   - FreeFlyControllerOption: a function that applies the configuration
func WithConfig(cfg config.Controller) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.applyConfig(cfg)
		fc.boost = cfg.Boost
	}
}

// WithBoost sets the initial speed exponent.
//
// Parameters:
//   - boost: translation is scaled by 2^boost
//
// Returns:
//   - FreeFlyControllerOption: a function that sets the boost
func WithBoost(boost float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.boost = boost
	}
}

// WithPositionLerpTime sets the seconds for the damped position to close 99% of the gap.
//
// Parameters:
//   - seconds: settle time within [0.001, 1]
//
// Returns:
//   - FreeFlyControllerOption: a function that sets the position settle time
func WithPositionLerpTime(seconds float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.positionLerpTime = seconds
	}
}

// WithRotationLerpTime sets the seconds for the damped rotation to close 99% of the gap.
//
// Parameters:
//   - seconds: settle time within [0.001, 1]
//
// Returns:
//   - FreeFlyControllerOption: a function that sets the rotation settle time
func WithRotationLerpTime(seconds float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.rotationLerpTime = seconds
	}
}

// WithSensitivityCurve sets the curve mapping pointer movement magnitude to a sensitivity factor.
func WithSensitivityCurve(curve ResponseCurve) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.curve = curve
	}
}

// WithInvertY flips the vertical pointer axis.
func WithInvertY(invert bool) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.invertY = invert
	}
}

// WithMouseSense sets the linear multiplier applied after the sensitivity curve.
func WithMouseSense(sense float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.mouseSense = sense
	}
}

// WithSprintMultiplier sets the translation factor while the sprint key is held.
func WithSprintMultiplier(multiplier float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.sprintMultiplier = multiplier
	}
}

// WithScrollBoostStep sets how much one unit of vertical scroll changes the boost.
func WithScrollBoostStep(step float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.scrollBoostStep = step
	}
}

// WithFloor sets the lowest height the target pose may reach.
func WithFloor(floor float32) FreeFlyControllerOption {
	return func(fc *freeFlyControllerImpl) {
		fc.floor = floor
	}
}
