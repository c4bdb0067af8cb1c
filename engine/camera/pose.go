package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// Pose is a camera placement: Euler angles in degrees and a world-space position.
// Angles are unbounded and are never wrapped or clamped.
type Pose struct {
	Yaw, Pitch, Roll float32
	X, Y, Z          float32
}

// SetFromTransform copies the transform's rotation and position into the pose.
//
// Parameters:
//   - t: the transform to read
func (p *Pose) SetFromTransform(t Transform) {
	p.Pitch, p.Yaw, p.Roll = t.Rotation()
	p.X, p.Y, p.Z = t.Position()
}

// Translate moves the pose by delta expressed in the pose's local frame,
// so +Z is forward, +X right and +Y up relative to the current facing.
//
// Parameters:
//   - delta: local-space offset
func (p *Pose) Translate(delta mgl32.Vec3) {
	rotated := common.EulerRotation(p.Pitch, p.Yaw, p.Roll).Mul3x1(delta)
	p.X += rotated[0]
	p.Y += rotated[1]
	p.Z += rotated[2]
}

// LerpTowards moves each field toward target independently. Angles use rotationPct
// and position uses positionPct. Fractions are expected in [0, 1] and are not clamped.
//
// Parameters:
//   - target: the pose to approach
//   - positionPct: fraction applied to X, Y, Z
//   - rotationPct: fraction applied to Yaw, Pitch, Roll
func (p *Pose) LerpTowards(target Pose, positionPct, rotationPct float32) {
	p.Yaw = common.Lerp(p.Yaw, target.Yaw, rotationPct)
	p.Pitch = common.Lerp(p.Pitch, target.Pitch, rotationPct)
	p.Roll = common.Lerp(p.Roll, target.Roll, rotationPct)

	p.X = common.Lerp(p.X, target.X, positionPct)
	p.Y = common.Lerp(p.Y, target.Y, positionPct)
	p.Z = common.Lerp(p.Z, target.Z, positionPct)
}

// ApplyTo writes the pose onto the transform.
//
// Parameters:
//   - t: the transform to update
func (p Pose) ApplyTo(t Transform) {
	t.SetRotation(p.Pitch, p.Yaw, p.Roll)
	t.SetPosition(p.X, p.Y, p.Z)
}

// Position returns the pose's position as a vector.
func (p Pose) Position() mgl32.Vec3 {
	return mgl32.Vec3{p.X, p.Y, p.Z}
}

// Forward returns the unit vector the pose is facing.
func (p Pose) Forward() mgl32.Vec3 {
	return common.EulerRotation(p.Pitch, p.Yaw, p.Roll).Mul3x1(mgl32.Vec3{0, 0, 1})
}
