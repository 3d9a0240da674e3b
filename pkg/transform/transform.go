// Package transform moves points, rays and normals between world space and
// the local space of a shape, and (u, v) coordinates through a texture's own
// 2D transform.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrSingular is returned when a transform cannot be inverted, typically
// because one of the scale factors is zero.
var ErrSingular = errors.New("transform: matrix is singular")

// singularEpsilon is the smallest |det| accepted for a forward matrix
const singularEpsilon = 1e-12

// Direction selects which matrix of a Transform is applied
type Direction int

const (
	// Forward maps local coordinates to world coordinates
	Forward Direction = iota
	// Backward maps world coordinates to local coordinates
	Backward
)

// Transform holds an affine forward matrix and its inverse
type Transform struct {
	forward  mgl64.Mat4
	backward mgl64.Mat4
}

// Identity returns the transform that leaves everything in place
func Identity() *Transform {
	return &Transform{forward: mgl64.Ident4(), backward: mgl64.Ident4()}
}

// New builds a transform from a translation, per-axis rotation in radians and
// per-axis scale.
func New(translation, rotation, scale core.Vec3) (*Transform, error) {
	t := Identity()
	if err := t.Set(translation, rotation, scale); err != nil {
		return nil, err
	}
	return t, nil
}

// Must is like New but panics on error. It is meant for scenes whose
// geometry is fixed in code.
func Must(translation, rotation, scale core.Vec3) *Transform {
	t, err := New(translation, rotation, scale)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMatrices wraps an existing forward/backward pair without checking that
// they are inverses of each other.
func FromMatrices(forward, backward mgl64.Mat4) *Transform {
	return &Transform{forward: forward, backward: backward}
}

// Set rebuilds the transform as translate * scale * rotX * rotY * rotZ.
// The transform is left unchanged when the result is singular.
func (t *Transform) Set(translation, rotation, scale core.Vec3) error {
	forward := mgl64.Translate3D(translation.X, translation.Y, translation.Z).
		Mul4(mgl64.Scale3D(scale.X, scale.Y, scale.Z)).
		Mul4(mgl64.HomogRotate3DX(rotation.X)).
		Mul4(mgl64.HomogRotate3DY(rotation.Y)).
		Mul4(mgl64.HomogRotate3DZ(rotation.Z))

	if math.Abs(forward.Det()) < singularEpsilon {
		return fmt.Errorf("%w: scale %v", ErrSingular, scale)
	}
	t.forward = forward
	t.backward = forward.Inv()
	return nil
}

// Compose returns lhs followed by rhs in matrix order (lhs.forward * rhs.forward).
// The backward matrix is recomputed from the product.
func Compose(lhs, rhs *Transform) (*Transform, error) {
	forward := lhs.forward.Mul4(rhs.forward)
	if det := forward.Det(); math.Abs(det) < singularEpsilon {
		return nil, fmt.Errorf("%w: composed determinant %g", ErrSingular, det)
	}
	return &Transform{forward: forward, backward: forward.Inv()}, nil
}

// Forward returns the local-to-world matrix
func (t *Transform) Forward() mgl64.Mat4 {
	return t.forward
}

// Backward returns the world-to-local matrix
func (t *Transform) Backward() mgl64.Mat4 {
	return t.backward
}

func (t *Transform) matrix(dir Direction) mgl64.Mat4 {
	if dir == Forward {
		return t.forward
	}
	return t.backward
}

// ApplyPoint transforms p as a homogeneous point (w = 1)
func (t *Transform) ApplyPoint(p core.Vec3, dir Direction) core.Vec3 {
	return fromVec4(t.matrix(dir).Mul4x1(toVec4(p, 1)))
}

// ApplyRay transforms both points defining the ray and recomputes its
// direction from them, so the result is always self-consistent.
func (t *Transform) ApplyRay(r core.Ray, dir Direction) core.Ray {
	return core.NewRay(t.ApplyPoint(r.Origin, dir), t.ApplyPoint(r.Target, dir))
}

// ApplyNormal maps a local-space surface normal to a unit world-space normal
// using the inverse transpose of the forward matrix.
func (t *Transform) ApplyNormal(n core.Vec3) core.Vec3 {
	m := mgl64.Mat4Normal(t.forward)
	w := m.Mul3x1(mgl64.Vec3{n.X, n.Y, n.Z})
	return core.NewVec3(w[0], w[1], w[2]).Normalize()
}

// String prints the forward matrix row by row
func (t *Transform) String() string {
	return t.forward.String()
}

func toVec4(v core.Vec3, w float64) mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, w}
}

func fromVec4(v mgl64.Vec4) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
