package transform

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/go-gl/mathgl/mgl64"
)

// Transform2D is the affine (u, v) transform owned by a texture
type Transform2D struct {
	m mgl64.Mat3
}

// Identity2D returns a texture transform that leaves (u, v) unchanged
func Identity2D() Transform2D {
	return Transform2D{m: mgl64.Ident3()}
}

// New2D builds translate * rotate * scale, with rotation in radians
func New2D(translation core.Vec2, rotation float64, scale core.Vec2) Transform2D {
	return Transform2D{
		m: mgl64.Translate2D(translation.X, translation.Y).
			Mul3(mgl64.HomogRotate2D(rotation)).
			Mul3(mgl64.Scale2D(scale.X, scale.Y)),
	}
}

// Apply maps uv as a homogeneous point, so translation takes effect
func (t Transform2D) Apply(uv core.Vec2) core.Vec2 {
	r := t.m.Mul3x1(mgl64.Vec3{uv.X, uv.Y, 1})
	return core.NewVec2(r[0], r[1])
}
