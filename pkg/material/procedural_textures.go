package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CheckerTexture alternates between two colors on a unit grid in
// transformed UV space
type CheckerTexture struct {
	uvTransform
	Color1 core.Vec4
	Color2 core.Vec4
}

// NewCheckerTexture creates a white / dark grey checkerboard
func NewCheckerTexture() *CheckerTexture {
	return &CheckerTexture{
		uvTransform: newUVTransform(),
		Color1:      core.NewVec4(1, 1, 1, 1),
		Color2:      core.NewVec4(0.2, 0.2, 0.2, 1),
	}
}

// SetColors sets both checker colors
func (t *CheckerTexture) SetColors(color1, color2 core.Vec4) {
	t.Color1 = color1
	t.Color2 = color2
}

// ColorAt returns Color1 where floor(u)+floor(v) is even, otherwise Color2
func (t *CheckerTexture) ColorAt(uv core.Vec2) core.Vec4 {
	p := t.apply(uv)
	check := int(math.Floor(p.X)) + int(math.Floor(p.Y))
	if check%2 == 0 {
		return t.Color1
	}
	return t.Color2
}
