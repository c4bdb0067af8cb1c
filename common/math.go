package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// SettleRemainder is the fraction of a gap left after one settle time has elapsed.
// A damped value closes 99% of the distance to its target over its settle time.
const SettleRemainder = 0.01

// Lerp linearly interpolates between a and b by t.
// t is not clamped; t = 0 returns a and t = 1 returns b exactly.
//
// Parameters:
//   - a: start value
//   - b: end value
//   - t: interpolation fraction
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}

// DecayFraction returns the lerp fraction that, applied once per frame of length dt,
// closes 99% of the gap to a fixed target after settleTime seconds regardless of how
// the elapsed time is split into frames.
//
// The fraction is 1 - exp(ln(0.01) / settleTime * dt). Non-positive dt yields 0.
// settleTime must be positive; callers validate it at the configuration boundary.
//
// Parameters:
//   - settleTime: seconds to close 99% of the gap
//   - dt: elapsed frame time in seconds
//
// Returns:
//   - float32: fraction in [0, 1)
func DecayFraction(settleTime, dt float32) float32 {
	if dt <= 0 {
		return 0
	}
	rate := math.Log(SettleRemainder) / float64(settleTime)
	return float32(1 - math.Exp(rate*float64(dt)))
}

// EulerRotation builds the rotation matrix for Euler angles given in degrees.
// The rotation order is Y * X * Z (yaw-pitch-roll), the same convention as BuildModelMatrix:
// roll is applied first, then pitch, then yaw. Positive pitch tilts +Z downward and
// positive yaw turns +Z toward +X.
//
// Parameters:
//   - pitch, yaw, roll: rotation about X, Y and Z in degrees
//
// Returns:
//   - mgl32.Mat3: the combined rotation
func EulerRotation(pitch, yaw, roll float32) mgl32.Mat3 {
	ry := mgl32.Rotate3DY(mgl32.DegToRad(yaw))
	rx := mgl32.Rotate3DX(mgl32.DegToRad(pitch))
	rz := mgl32.Rotate3DZ(mgl32.DegToRad(roll))
	return ry.Mul3(rx).Mul3(rz)
}

// BuildModelMatrix constructs a 4x4 model matrix from position, Euler rotation, and scale.
// The rotation order is Y * X * Z (yaw-pitch-roll). All matrices are column-major.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - posX, posY, posZ: translation in world space
//   - rotX, rotY, rotZ: rotation angles in radians around each axis
//   - scaleX, scaleY, scaleZ: scale factors along each axis
func BuildModelMatrix(out []float32, posX, posY, posZ, rotX, rotY, rotZ, scaleX, scaleY, scaleZ float32) {
	cx := float32(math.Cos(float64(rotX)))
	sx := float32(math.Sin(float64(rotX)))
	cy := float32(math.Cos(float64(rotY)))
	sy := float32(math.Sin(float64(rotY)))
	cz := float32(math.Cos(float64(rotZ)))
	sz := float32(math.Sin(float64(rotZ)))

	// R = Ry * Rx * Rz, column-major
	out[0] = (cy*cz + sy*sx*sz) * scaleX
	out[1] = (cx * sz) * scaleX
	out[2] = (-sy*cz + cy*sx*sz) * scaleX
	out[3] = 0

	out[4] = (cy*-sz + sy*sx*cz) * scaleY
	out[5] = (cx * cz) * scaleY
	out[6] = (sy*sz + cy*sx*cz) * scaleY
	out[7] = 0

	out[8] = (sy * cx) * scaleZ
	out[9] = (-sx) * scaleZ
	out[10] = (cy * cx) * scaleZ
	out[11] = 0

	out[12] = posX
	out[13] = posY
	out[14] = posZ
	out[15] = 1
}
