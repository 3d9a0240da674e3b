package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Surfaces of a cylinder
const (
	cylinderBody = iota
	cylinderTop
	cylinderBottom
)

// Cylinder is the capped unit-radius cylinder around the local z axis,
// spanning z in [-1, 1]
type Cylinder struct {
	object
}

// NewCylinder creates a new capped cylinder
func NewCylinder(tf *transform.Transform, mat core.Material) *Cylinder {
	return &Cylinder{object: newObject(tf, mat)}
}

// TestIntersection tests if a ray intersects with the cylinder
func (c *Cylinder) TestIntersection(ray core.Ray) (*core.HitRecord, bool) {
	local := c.transform.ApplyRay(ray, transform.Backward)
	p := local.Origin
	d := local.Direction

	candidates := make([]candidate, 0, 4)
	candidates = append(candidates, c.hitBody(p, d)...)
	candidates = append(candidates, c.hitCaps(p, d)...)

	best, ok := nearest(candidates)
	if !ok {
		return nil, false
	}

	point := p.Add(d.Multiply(best.t))
	switch best.surface {
	case cylinderBody:
		normal := core.NewVec3(point.X, point.Y, 0)
		uv := core.NewVec2(math.Atan2(point.Y, point.X)/math.Pi, point.Z)
		return c.hitRecord(c, ray, point, normal, uv), true
	case cylinderTop:
		return c.hitRecord(c, ray, point, core.NewVec3(0, 0, 1), core.NewVec2(point.X, point.Y)), true
	default:
		return c.hitRecord(c, ray, point, core.NewVec3(0, 0, -1), core.NewVec2(point.X, point.Y)), true
	}
}

// hitBody solves x² + y² = 1 and keeps roots with |z| < 1
func (c *Cylinder) hitBody(p, d core.Vec3) []candidate {
	a := d.X*d.X + d.Y*d.Y
	if closeEnough(a, 0) {
		// Ray runs along the axis and can only hit the caps
		return nil
	}
	b := 2.0 * (p.X*d.X + p.Y*d.Y)
	cc := p.X*p.X + p.Y*p.Y - 1.0

	discriminant := b*b - 4.0*a*cc
	if discriminant <= 0 {
		return nil
	}
	sqrtD := math.Sqrt(discriminant)

	var out []candidate
	for _, t := range []float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)} {
		z := p.Z + d.Z*t
		if t > 0 && math.Abs(z) < 1.0 {
			out = append(out, candidate{t: t, surface: cylinderBody})
		}
	}
	return out
}

// hitCaps intersects the unit disks at z = 1 and z = -1
func (c *Cylinder) hitCaps(p, d core.Vec3) []candidate {
	if closeEnough(d.Z, 0) {
		return nil
	}

	var out []candidate
	for _, disk := range []struct {
		z       float64
		surface int
	}{{1, cylinderTop}, {-1, cylinderBottom}} {
		t := (disk.z - p.Z) / d.Z
		x := p.X + d.X*t
		y := p.Y + d.Y*t
		if t > 0 && x*x+y*y < 1.0 {
			out = append(out, candidate{t: t, surface: disk.surface})
		}
	}
	return out
}
