package camera

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
)

var (
	ErrInactive     = errors.New("free-fly controller is not active")
	ErrNilTransform = errors.New("viewpoint transform is nil")
	ErrNilInput     = errors.New("input source is nil")
)

// Host is the application that owns the controller's session.
type Host interface {
	// RequestQuit asks the application to exit.
	RequestQuit()
}

// SessionHost is a Host that runs interactive development sessions which can be
// stopped without exiting the hosting tool.
type SessionHost interface {
	Host

	// StopSession ends the interactive session.
	StopSession()
}

// FreeFlyController drives a viewpoint from pointer and keyboard input.
// Input moves a target pose immediately; a second, interpolating pose chases the target
// with frame-rate independent exponential damping and is what gets applied to the viewpoint.
//
// A controller is owned by the frame thread. It does no locking.
type FreeFlyController interface {
	// Activate seeds both poses from the viewpoint's current placement, so control begins
	// without a visible jump, and captures the pointer. Activating an active controller
	// re-seeds it from the new viewpoint.
	//
	// Parameters:
	//   - viewpoint: the transform to drive
	//
	// Returns:
	//   - error: ErrNilTransform if viewpoint is nil
	Activate(viewpoint Transform) error

	// Deactivate stops control and releases the pointer. Safe to call when inactive.
	Deactivate()

	// Active reports whether the controller is driving a viewpoint.
	//
	// Returns:
	//   - bool: true between Activate and Deactivate
	Active() bool

	// Update runs one frame: escape handling, rotation and translation input,
	// floor clamp, damping, and writing the damped pose to the viewpoint.
	//
	// Parameters:
	//   - dt: seconds since the previous frame; non-positive values are a zero-length frame
	//
	// Returns:
	//   - error: ErrInactive if called before Activate
	Update(dt float32) error

	// Target returns the pose input is steering toward.
	//
	// Returns:
	//   - Pose: copy of the target pose
	Target() Pose

	// Interpolating returns the damped pose last applied to the viewpoint.
	//
	// Returns:
	//   - Pose: copy of the interpolating pose
	Interpolating() Pose

	// Viewpoint returns the transform being driven, or nil when inactive.
	//
	// Returns:
	//   - Transform: the driven transform
	Viewpoint() Transform

	// Boost returns the current speed exponent. Translation is scaled by 2^Boost.
	//
	// Returns:
	//   - float32: the boost exponent
	Boost() float32

	// SetBoost overrides the speed exponent.
	//
	// Parameters:
	//   - boost: the new exponent
	SetBoost(boost float32)

	// Configure replaces the controller's tunables at runtime. Poses and the live
	// boost are kept. Key bindings are pushed to the input source when it is an input.Rebinder.
	//
	// Parameters:
	//   - cfg: the new configuration
	//
	// Returns:
	//   - error: if cfg fails validation; the controller is left unchanged
	Configure(cfg config.Controller) error
}
