package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-freefly/common"
)

// Transform is the placement a controller drives: a world position and Euler
// rotation in degrees. Pitch rotates about X, yaw about Y and roll about Z.
type Transform interface {
	// Position returns the world-space position.
	//
	// Returns:
	//   - x, y, z: world-space position
	Position() (x, y, z float32)

	// SetPosition sets the world-space position.
	//
	// Parameters:
	//   - x, y, z: world-space coordinates
	SetPosition(x, y, z float32)

	// Rotation returns the Euler rotation in degrees.
	//
	// Returns:
	//   - pitch, yaw, roll: rotation about X, Y and Z in degrees
	Rotation() (pitch, yaw, roll float32)

	// SetRotation sets the Euler rotation in degrees.
	//
	// Parameters:
	//   - pitch, yaw, roll: rotation about X, Y and Z in degrees
	SetRotation(pitch, yaw, roll float32)
}

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	rotation [3]float32 // pitch, yaw, roll in degrees

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera is a viewpoint placed by a Transform. It keeps perspective settings and
// recomputes view/projection matrices whenever its placement or lens changes.
// The camera looks down its local +Z axis.
type Camera interface {
	Transform

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// Forward returns the unit vector the camera is facing in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the facing direction
	Forward() mgl32.Vec3

	// ViewMatrix returns the world-to-view matrix (column-major, OpenGL view space).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl32.Mat4: the combined matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Frustum returns the world-space view frustum.
	//
	// Returns:
	//   - common.Frustum: normalized frustum planes
	Frustum() common.Frustum
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera at the origin facing +Z with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:     &sync.Mutex{},
		fov:    45.0 * (math.Pi / 180.0), // radians
		aspect: 1.0,
		near:   0.1,
		far:    1000.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
	c.updateMatrices()
}

func (c *cameraImpl) Rotation() (pitch, yaw, roll float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation[0], c.rotation[1], c.rotation[2]
}

func (c *cameraImpl) SetRotation(pitch, yaw, roll float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = [3]float32{pitch, yaw, roll}
	c.updateMatrices()
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateMatrices()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateMatrices()
}

func (c *cameraImpl) Forward() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.EulerRotation(c.rotation[0], c.rotation[1], c.rotation[2]).Mul3x1(mgl32.Vec3{0, 0, 1})
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustumFromMatrix(c.viewProjectionMatrix[:])
}

// updateMatrices recalculates the view, projection and view-projection matrices.
// The view matrix inverts the camera's model matrix and flips Z, mapping the
// camera's +Z facing onto OpenGL's -Z view direction.
// Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	var world mgl32.Mat4
	common.BuildModelMatrix(world[:],
		c.position[0], c.position[1], c.position[2],
		mgl32.DegToRad(c.rotation[0]), mgl32.DegToRad(c.rotation[1]), mgl32.DegToRad(c.rotation[2]),
		1, 1, 1,
	)

	c.viewMatrix = mgl32.Scale3D(1, 1, -1).Mul4(world.Inv())
	c.projectionMatrix = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
