package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Simple is an opaque material with diffuse, mirror and specular terms
type Simple struct {
	Properties
}

// NewSimple creates a simple material
func NewSimple(baseColor core.Vec3, reflectivity, shininess float64) *Simple {
	return &Simple{Properties: Properties{
		BaseColor:    baseColor,
		Reflectivity: reflectivity,
		Shininess:    shininess,
	}}
}

// ComputeColor blends reflection over diffuse by reflectivity and adds the
// specular highlight
func (m *Simple) ComputeColor(scene core.Scene, hit *core.HitRecord, incident core.Ray, depth int) core.Vec3 {
	lights := visibleLights(scene, hit)
	color := diffuseColor(scene, hit, lights, m.surfaceColor(hit))

	if m.Reflectivity > 0 {
		refl := reflectionColor(scene, hit, incident, depth)
		color = refl.Lerp(color, 1.0-m.Reflectivity)
	}

	if m.Shininess > 0 {
		color = color.Add(specularColor(hit, lights, incident, &m.Properties))
	}
	return color
}
