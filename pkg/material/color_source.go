package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// uvTransform is embedded by every texture and maps incoming (u, v)
// through the texture's own translate * rotate * scale transform
type uvTransform struct {
	tf transform.Transform2D
}

func newUVTransform() uvTransform {
	return uvTransform{tf: transform.Identity2D()}
}

// SetTransform sets the texture's (u, v) transform. rotation is in radians.
func (t *uvTransform) SetTransform(translation core.Vec2, rotation float64, scale core.Vec2) {
	t.tf = transform.New2D(translation, rotation, scale)
}

func (t *uvTransform) apply(uv core.Vec2) core.Vec2 {
	return t.tf.Apply(uv)
}

// FlatTexture returns the same color everywhere
type FlatTexture struct {
	uvTransform
	Color core.Vec4
}

// NewFlatTexture creates a flat texture, red by default
func NewFlatTexture() *FlatTexture {
	return &FlatTexture{uvTransform: newUVTransform(), Color: core.NewVec4(1, 0, 0, 1)}
}

// NewSolidColor creates a flat texture with an opaque color
func NewSolidColor(color core.Vec3) *FlatTexture {
	t := NewFlatTexture()
	t.Color = core.NewVec4(color.X, color.Y, color.Z, 1)
	return t
}

// ColorAt returns the flat color regardless of UV
func (t *FlatTexture) ColorAt(uv core.Vec2) core.Vec4 {
	return t.Color
}
