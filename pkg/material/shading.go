package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// refractionOffset moves a refracted ray's origin off the surface it starts on
const refractionOffset = 0.01

// Shade returns the color seen along incident at hit. Shapes without a
// material get the plain diffuse term with their base color.
func Shade(scene core.Scene, hit *core.HitRecord, incident core.Ray, depth int) core.Vec3 {
	if mat := hit.Shape.Material(); mat != nil {
		return mat.ComputeColor(scene, hit, incident, depth)
	}
	return diffuseColor(scene, hit, visibleLights(scene, hit), hit.Color)
}

// litLight pairs a light with the result of its shadow test at one point
type litLight struct {
	light   core.Light
	visible bool
}

// visibleLights runs the shadow test once per light; diffuse and specular
// both read the result
func visibleLights(scene core.Scene, hit *core.HitRecord) []litLight {
	lights := scene.GetLights()
	out := make([]litLight, len(lights))
	for i, light := range lights {
		out[i] = litLight{
			light:   light,
			visible: light.Visible(hit.Point, scene.GetShapes(), hit.Shape),
		}
	}
	return out
}

func diffuseColor(scene core.Scene, hit *core.HitRecord, lights []litLight, surfaceColor core.Vec3) core.Vec3 {
	total := scene.Ambient()
	for _, l := range lights {
		if !l.visible {
			continue
		}
		color, intensity, ok := l.light.Illuminate(hit.Point, hit.Normal)
		if ok {
			total = total.Add(color.Multiply(intensity))
		}
	}
	return total.MultiplyVec(surfaceColor)
}

// specularColor is a Phong highlight scaled by reflectivity, from every
// light that reaches the point
func specularColor(hit *core.HitRecord, lights []litLight, incident core.Ray, props *Properties) core.Vec3 {
	view := incident.Direction.Normalize()
	total := core.Vec3{}
	for _, l := range lights {
		if !l.visible {
			continue
		}
		lightDir := l.light.Position().Subtract(hit.Point).Normalize()
		r := lightDir.Reflect(hit.Normal).Normalize()
		if d := r.Dot(view); d > 0 {
			color, _, _ := l.light.Illuminate(hit.Point, hit.Normal)
			total = total.Add(color.Multiply(props.Reflectivity * math.Pow(d, props.Shininess)))
		}
	}
	return total
}

// reflectionColor follows the mirror ray off hit. It is black once the depth
// budget is spent or when the ray escapes the scene.
func reflectionColor(scene core.Scene, hit *core.HitRecord, incident core.Ray, depth int) core.Vec3 {
	if depth >= scene.MaxDepth() {
		return core.Vec3{}
	}

	dir := incident.Direction.Reflect(hit.Normal)
	ray := core.NewRay(hit.Point, hit.Point.Add(dir))

	next, ok := scene.CastRay(ray, hit.Shape)
	if !ok {
		return core.Vec3{}
	}
	return Shade(scene, next, ray, depth+1)
}

// translucentColor follows a ray refracted into the shape at hit, out
// through its far side and on into the rest of the scene. eta is the ratio
// of the outside to inside refractive index.
func translucentColor(scene core.Scene, hit *core.HitRecord, incident core.Ray, eta float64, depth int) core.Vec3 {
	if depth >= scene.MaxDepth() {
		return core.Vec3{}
	}

	inDir := refractVector(incident.Direction.Normalize(), hit.Normal, eta)
	inside := offsetRay(hit.Point, inDir)

	// Find where the ray leaves the same shape
	final := inside
	if exit, ok := hit.Shape.TestIntersection(inside); ok {
		outDir := refractVector(inside.Direction, exit.Normal, eta)
		final = offsetRay(exit.Point, outDir)
	}

	next, ok := scene.CastRay(final, hit.Shape)
	if !ok {
		return core.Vec3{}
	}
	return Shade(scene, next, final, depth+1)
}

// offsetRay starts a ray slightly along dir from point
func offsetRay(point, dir core.Vec3) core.Ray {
	return core.NewRay(point.Add(dir.Multiply(refractionOffset)), point.Add(dir))
}

// refractVector bends the unit direction d through a surface with outward
// normal n using Snell's law. eta is outside/inside; when d arrives from the
// inside the normal is flipped and the ratio inverted. Total internal
// reflection returns the mirror direction.
func refractVector(d, n core.Vec3, eta float64) core.Vec3 {
	c := -n.Dot(d)
	if c < 0 {
		n = n.Negate()
		c = -c
		eta = 1.0 / eta
	}

	k := 1.0 - eta*eta*(1.0-c*c)
	if k < 0 {
		return d.Reflect(n)
	}
	return d.Multiply(eta).Add(n.Multiply(eta*c - math.Sqrt(k)))
}
