package common

import (
	"math"
)

// Plane is the set of points p with Normal·p + Distance = 0.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Frustum holds the six clip planes of a camera, normals pointing inward.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// Plane indices into Frustum.Planes.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// frustumRows lists, per plane, which matrix row is combined with row 3 and its sign.
var frustumRows = [6]struct {
	row  int
	sign float32
}{
	FrustumLeft:   {0, 1},
	FrustumRight:  {0, -1},
	FrustumBottom: {1, 1},
	FrustumTop:    {1, -1},
	FrustumNear:   {2, 1},
	FrustumFar:    {2, -1},
}

// ExtractFrustumFromMatrix derives the clip planes of a combined projection * view matrix
// (Gribb/Hartmann). Each plane is row 3 plus or minus one of rows 0..2, then normalized.
//
// Parameters:
//   - viewProj: 16 column-major floats
//
// Returns:
//   - Frustum: planes with unit-length normals
func ExtractFrustumFromMatrix(viewProj []float32) Frustum {
	// Column-major: element (row r, column c) sits at c*4 + r.
	at := func(r, c int) float32 { return viewProj[c*4+r] }

	var f Frustum
	for i, fr := range frustumRows {
		p := &f.Planes[i]
		for c := 0; c < 3; c++ {
			p.Normal[c] = at(3, c) + fr.sign*at(fr.row, c)
		}
		p.Distance = at(3, 3) + fr.sign*at(fr.row, 3)
		p.normalize()
	}
	return f
}

// ContainsSphere reports whether a sphere lies at least partially inside the frustum.
// A radius of 0 tests a single point.
//
// Parameters:
//   - x, y, z: sphere center in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only if the sphere is fully outside one of the planes
func (f *Frustum) ContainsSphere(x, y, z, radius float32) bool {
	for i := range f.Planes {
		p := &f.Planes[i]
		if p.Normal[0]*x+p.Normal[1]*y+p.Normal[2]*z+p.Distance < -radius {
			return false
		}
	}
	return true
}

func (p *Plane) normalize() {
	n := p.Normal
	length := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	if length == 0 {
		return
	}
	inv := 1 / length
	p.Normal[0] *= inv
	p.Normal[1] *= inv
	p.Normal[2] *= inv
	p.Distance *= inv
}
