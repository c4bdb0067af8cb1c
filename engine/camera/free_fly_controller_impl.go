package camera

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-freefly/common"
	"github.com/Carmen-Shannon/oxy-freefly/engine/config"
	"github.com/Carmen-Shannon/oxy-freefly/engine/input"
)

// Local-space unit directions for each movement key.
var (
	dirForward = mgl32.Vec3{0, 0, 1}
	dirBack    = mgl32.Vec3{0, 0, -1}
	dirLeft    = mgl32.Vec3{-1, 0, 0}
	dirRight   = mgl32.Vec3{1, 0, 0}
	dirDown    = mgl32.Vec3{0, -1, 0}
	dirUp      = mgl32.Vec3{0, 1, 0}
)

// freeFlyControllerImpl is the single implementation of FreeFlyController.
type freeFlyControllerImpl struct {
	input input.Source
	host  Host

	viewpoint Transform
	active    bool

	target        Pose
	interpolating Pose

	// boost persists across frames and is nudged by scroll input; it is never reset.
	boost float32

	positionLerpTime float32
	rotationLerpTime float32
	curve            ResponseCurve
	invertY          bool
	mouseSense       float32
	sprintMultiplier float32
	scrollBoostStep  float32
	floor            float32
}

var _ FreeFlyController = &freeFlyControllerImpl{}

// NewFreeFlyController creates an inactive controller. Tunables start from config.Default
// and are overridden by options in order. An input source is required.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FreeFlyController: the new controller
//   - error: ErrNilInput without an input source, or a validation error for bad tunables
func NewFreeFlyController(options ...FreeFlyControllerOption) (FreeFlyController, error) {
	fc := &freeFlyControllerImpl{}
	fc.applyConfig(config.Default())
	fc.boost = config.Default().Boost

	for _, option := range options {
		option(fc)
	}

	if fc.input == nil {
		return nil, ErrNilInput
	}
	if err := fc.validate(); err != nil {
		return nil, err
	}
	return fc, nil
}

// applyConfig copies every tunable except boost from cfg.
func (fc *freeFlyControllerImpl) applyConfig(cfg config.Controller) {
	fc.positionLerpTime = cfg.PositionLerpTime
	fc.rotationLerpTime = cfg.RotationLerpTime
	fc.curve = curveFromConfig(cfg.SensitivityCurve)
	fc.invertY = cfg.InvertY
	fc.mouseSense = cfg.MouseSense
	fc.sprintMultiplier = cfg.SprintMultiplier
	fc.scrollBoostStep = cfg.ScrollBoostStep
	fc.floor = cfg.Floor
}

func (fc *freeFlyControllerImpl) validate() error {
	if err := config.ValidateLerpTime("position lerp time", fc.positionLerpTime); err != nil {
		return err
	}
	if err := config.ValidateLerpTime("rotation lerp time", fc.rotationLerpTime); err != nil {
		return err
	}
	if !common.IsFinite(fc.mouseSense) {
		return fmt.Errorf("mouse sense = %v: %w", fc.mouseSense, config.ErrInvalidSensitivity)
	}
	if !common.IsFinite(fc.sprintMultiplier) || fc.sprintMultiplier <= 0 {
		return fmt.Errorf("sprint multiplier = %v: %w", fc.sprintMultiplier, config.ErrInvalidSprint)
	}
	if err := config.ValidateTunable("boost", fc.boost); err != nil {
		return err
	}
	if err := config.ValidateTunable("scroll boost step", fc.scrollBoostStep); err != nil {
		return err
	}
	if err := config.ValidateTunable("floor", fc.floor); err != nil {
		return err
	}
	for i, k := range fc.curve.keys {
		if err := config.ValidateKeyframe(i, config.Keyframe(k)); err != nil {
			return err
		}
	}
	return nil
}

func (fc *freeFlyControllerImpl) Activate(viewpoint Transform) error {
	if viewpoint == nil {
		return ErrNilTransform
	}
	fc.viewpoint = viewpoint
	fc.target.SetFromTransform(viewpoint)
	fc.interpolating.SetFromTransform(viewpoint)
	fc.input.CapturePointer()
	fc.active = true
	return nil
}

func (fc *freeFlyControllerImpl) Deactivate() {
	if !fc.active {
		return
	}
	fc.input.ReleasePointer()
	fc.active = false
	fc.viewpoint = nil
}

func (fc *freeFlyControllerImpl) Active() bool {
	return fc.active
}

func (fc *freeFlyControllerImpl) Update(dt float32) error {
	if !fc.active {
		return ErrInactive
	}
	// NaN counts as a zero-length frame too.
	if !(dt > 0) {
		dt = 0
	}

	fc.input.BeginFrame()

	if fc.input.IsHeld(input.KeyEscape) && fc.host != nil {
		fc.host.RequestQuit()
		if sh, ok := fc.host.(SessionHost); ok {
			sh.StopSession()
		}
		return nil
	}

	fc.applyRotationInput()
	fc.applyTranslationInput(dt)

	if fc.target.Y < fc.floor {
		fc.target.Y = fc.floor
	}

	positionPct := common.DecayFraction(fc.positionLerpTime, dt)
	rotationPct := common.DecayFraction(fc.rotationLerpTime, dt)
	fc.interpolating.LerpTowards(fc.target, positionPct, rotationPct)

	fc.interpolating.ApplyTo(fc.viewpoint)
	return nil
}

// applyRotationInput turns this frame's pointer motion into yaw and pitch on the target.
// Pointer Y grows downward, so moving the pointer down pitches the view down unless invertY is set.
// Roll is never changed by the pointer.
func (fc *freeFlyControllerImpl) applyRotationInput() {
	mx, my := fc.input.PointerDelta()
	if fc.invertY {
		my = -my
	}

	magnitude := mgl32.Vec2{mx, my}.Len()
	factor := fc.curve.Evaluate(magnitude) * fc.mouseSense

	fc.target.Yaw += mx * factor
	fc.target.Pitch += my * factor
}

// applyTranslationInput moves the target by the held direction keys, scaled by dt,
// the sprint multiplier and 2^boost. Scroll input adjusts boost before it is applied.
func (fc *freeFlyControllerImpl) applyTranslationInput(dt float32) {
	translation := translationDirection(fc.input).Mul(dt)

	if fc.input.IsHeld(input.KeySprint) {
		translation = translation.Mul(fc.sprintMultiplier)
	}

	_, scrollY := fc.input.ScrollDelta()
	fc.boost += scrollY * fc.scrollBoostStep
	translation = translation.Mul(float32(math.Pow(2, float64(fc.boost))))

	fc.target.Translate(translation)
}

// translationDirection sums the unit vectors of every held movement key.
// The result is not normalized: diagonals are longer than a single axis and
// opposite keys cancel.
func translationDirection(src input.Source) mgl32.Vec3 {
	var direction mgl32.Vec3
	if src.IsHeld(input.KeyForward) {
		direction = direction.Add(dirForward)
	}
	if src.IsHeld(input.KeyBack) {
		direction = direction.Add(dirBack)
	}
	if src.IsHeld(input.KeyLeft) {
		direction = direction.Add(dirLeft)
	}
	if src.IsHeld(input.KeyRight) {
		direction = direction.Add(dirRight)
	}
	if src.IsHeld(input.KeyDown) {
		direction = direction.Add(dirDown)
	}
	if src.IsHeld(input.KeyUp) {
		direction = direction.Add(dirUp)
	}
	return direction
}

func (fc *freeFlyControllerImpl) Target() Pose {
	return fc.target
}

func (fc *freeFlyControllerImpl) Interpolating() Pose {
	return fc.interpolating
}

func (fc *freeFlyControllerImpl) Viewpoint() Transform {
	return fc.viewpoint
}

func (fc *freeFlyControllerImpl) Boost() float32 {
	return fc.boost
}

func (fc *freeFlyControllerImpl) SetBoost(boost float32) {
	fc.boost = boost
}

func (fc *freeFlyControllerImpl) Configure(cfg config.Controller) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return err
	}

	fc.applyConfig(cfg)
	if rb, ok := fc.input.(input.Rebinder); ok {
		rb.SetBindings(bindings)
	}
	return nil
}
