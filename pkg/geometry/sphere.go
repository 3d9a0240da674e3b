package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// Sphere is the unit sphere at the local origin, placed in the world by its
// transform
type Sphere struct {
	object
}

// NewSphere creates a new sphere. A nil transform means identity and a nil
// material means the sphere is shaded with its base color.
func NewSphere(tf *transform.Transform, mat core.Material) *Sphere {
	return &Sphere{object: newObject(tf, mat)}
}

// TestIntersection tests if a ray intersects with the sphere
func (s *Sphere) TestIntersection(ray core.Ray) (*core.HitRecord, bool) {
	local := s.transform.ApplyRay(ray, transform.Backward)
	p := local.Origin
	d := local.Direction

	// Quadratic with a = 1 since d is unit length
	b := 2.0 * p.Dot(d)
	c := p.Dot(p) - 1.0
	discriminant := b*b - 4.0*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	t := (-b - sqrtD) / 2.0
	if t <= 0 {
		// Origin is inside the sphere, try the far root
		t = (-b + sqrtD) / 2.0
		if t <= 0 {
			return nil, false
		}
	}

	point := p.Add(d.Multiply(t))
	uv := core.NewVec2(
		math.Atan2(math.Hypot(point.X, point.Y), point.Z)/math.Pi,
		math.Atan2(point.Y, point.X)/math.Pi,
	)

	// On a unit sphere the outward normal is the point itself
	return s.hitRecord(s, ray, point, point, uv), true
}
