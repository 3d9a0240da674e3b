package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// parallelEpsilon is the tolerance used to decide that a ray runs parallel to
// a plane or cap
const parallelEpsilon = 1e-21

// closeEnough reports whether a and b differ by less than parallelEpsilon
func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < parallelEpsilon
}

// object holds the state every primitive shares: its local<->world transform,
// an optional material and a fallback color.
type object struct {
	transform *transform.Transform
	material  core.Material
	baseColor core.Vec3
}

func newObject(tf *transform.Transform, mat core.Material) object {
	if tf == nil {
		tf = transform.Identity()
	}
	return object{transform: tf, material: mat, baseColor: core.NewVec3(1, 1, 1)}
}

// Material returns the attached material, or nil
func (o *object) Material() core.Material {
	return o.material
}

// SetMaterial attaches a material
func (o *object) SetMaterial(mat core.Material) {
	o.material = mat
}

// BaseColor returns the color used when no material is attached
func (o *object) BaseColor() core.Vec3 {
	return o.baseColor
}

// SetBaseColor sets the color used when no material is attached
func (o *object) SetBaseColor(c core.Vec3) {
	o.baseColor = c
}

// Transform returns the local<->world transform
func (o *object) Transform() *transform.Transform {
	return o.transform
}

// SetTransform replaces the local<->world transform
func (o *object) SetTransform(tf *transform.Transform) {
	o.transform = tf
}

// hitRecord maps a local-space hit back to world space and fills in color
func (o *object) hitRecord(shape core.Shape, ray core.Ray, localPoint, localNormal core.Vec3, uv core.Vec2) *core.HitRecord {
	point := o.transform.ApplyPoint(localPoint, transform.Forward)

	color := o.baseColor
	if textured, ok := o.material.(core.Textured); ok {
		if tex := textured.Texture(); tex != nil {
			color = tex.ColorAt(uv).RGB()
		}
	}

	return &core.HitRecord{
		Point:    point,
		Normal:   o.transform.ApplyNormal(localNormal),
		Color:    color,
		UV:       uv,
		Distance: point.Subtract(ray.Origin).Length(),
		Shape:    shape,
	}
}

// candidate is one root of an intersection equation together with the
// surface it belongs to
type candidate struct {
	t       float64
	surface int
}

// nearest returns the valid candidate with the smallest t; earlier
// candidates win ties
func nearest(candidates []candidate) (candidate, bool) {
	best := candidate{t: math.Inf(1)}
	found := false
	for _, c := range candidates {
		if c.t < best.t {
			best = c
			found = true
		}
	}
	return best, found
}
