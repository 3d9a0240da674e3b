package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Plane is the square [-1,1]x[-1,1] in the local z=0 plane
type Plane struct {
	object
}

// NewPlane creates a new finite plane
func NewPlane(tf *transform.Transform, mat core.Material) *Plane {
	return &Plane{object: newObject(tf, mat)}
}

// TestIntersection tests if a ray intersects with the plane
func (pl *Plane) TestIntersection(ray core.Ray) (*core.HitRecord, bool) {
	local := pl.transform.ApplyRay(ray, transform.Backward)
	p := local.Origin
	d := local.Direction

	// A ray parallel to the plane never reaches it
	if closeEnough(d.Z, 0) {
		return nil, false
	}

	t := -p.Z / d.Z
	if t <= 0 {
		return nil, false
	}

	u := p.X + d.X*t
	v := p.Y + d.Y*t
	if math.Abs(u) >= 1 || math.Abs(v) >= 1 {
		return nil, false
	}

	point := core.NewVec3(u, v, 0)
	return pl.hitRecord(pl, ray, point, core.NewVec3(0, 0, -1), core.NewVec2(u, v)), true
}
