package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Surfaces of a cone
const (
	coneBody = iota
	coneBase
)

// Cone is the capped cone x² + y² = (1 - z)² with its apex at local z = 1 and
// a unit-radius base disk at z = 0
type Cone struct {
	object
}

// NewCone creates a new capped cone
func NewCone(tf *transform.Transform, mat core.Material) *Cone {
	return &Cone{object: newObject(tf, mat)}
}

// TestIntersection tests if a ray intersects with the cone
func (c *Cone) TestIntersection(ray core.Ray) (*core.HitRecord, bool) {
	local := c.transform.ApplyRay(ray, transform.Backward)
	p := local.Origin
	d := local.Direction

	candidates := make([]candidate, 0, 3)
	candidates = append(candidates, c.hitBody(p, d)...)
	if base, ok := c.hitBase(p, d); ok {
		candidates = append(candidates, base)
	}

	best, ok := nearest(candidates)
	if !ok {
		return nil, false
	}

	point := p.Add(d.Multiply(best.t))
	if best.surface == coneBase {
		return c.hitRecord(c, ray, point, core.NewVec3(0, 0, -1), core.NewVec2(point.X, point.Y)), true
	}

	// Gradient of x² + y² - (1-z)², using 1 - z = r on the surface
	normal := core.NewVec3(point.X, point.Y, math.Hypot(point.X, point.Y))
	uv := core.NewVec2(math.Atan2(point.Y, point.X)/math.Pi, 2*point.Z-1)
	return c.hitRecord(c, ray, point, normal, uv), true
}

// hitBody solves the cone quadratic in terms of the apex-relative height
// z - 1 and keeps roots with 0 < z < 1
func (c *Cone) hitBody(p, d core.Vec3) []candidate {
	pz := p.Z - 1.0

	a := d.X*d.X + d.Y*d.Y - d.Z*d.Z
	b := 2.0 * (p.X*d.X + p.Y*d.Y - pz*d.Z)
	cc := p.X*p.X + p.Y*p.Y - pz*pz

	var roots []float64
	if closeEnough(a, 0) {
		// Ray parallel to a generator line crosses the surface once
		if closeEnough(b, 0) {
			return nil
		}
		roots = []float64{-cc / b}
	} else {
		discriminant := b*b - 4.0*a*cc
		if discriminant <= 0 {
			return nil
		}
		sqrtD := math.Sqrt(discriminant)
		roots = []float64{(-b + sqrtD) / (2 * a), (-b - sqrtD) / (2 * a)}
	}

	var out []candidate
	for _, t := range roots {
		z := p.Z + d.Z*t
		if t > 0 && z > 0 && z < 1 {
			out = append(out, candidate{t: t, surface: coneBody})
		}
	}
	return out
}

// hitBase intersects the unit disk at z = 0
func (c *Cone) hitBase(p, d core.Vec3) (candidate, bool) {
	if closeEnough(d.Z, 0) {
		return candidate{}, false
	}
	t := -p.Z / d.Z
	x := p.X + d.X*t
	y := p.Y + d.Y*t
	if t <= 0 || x*x+y*y >= 1.0 {
		return candidate{}, false
	}
	return candidate{t: t, surface: coneBase}, true
}
