package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Refractive is a Simple material that also transmits light through the
// shape it is attached to
type Refractive struct {
	Properties
	Translucency    float64 // in [0, 1]
	RefractiveIndex float64 // > 1, e.g. 1.333 for water
}

// NewRefractive creates a refractive material
func NewRefractive(baseColor core.Vec3, reflectivity, shininess, translucency, ior float64) *Refractive {
	return &Refractive{
		Properties: Properties{
			BaseColor:    baseColor,
			Reflectivity: reflectivity,
			Shininess:    shininess,
		},
		Translucency:    translucency,
		RefractiveIndex: ior,
	}
}

// ComputeColor blends reflection over diffuse, then transmitted light over
// that, and adds the specular highlight
func (m *Refractive) ComputeColor(scene core.Scene, hit *core.HitRecord, incident core.Ray, depth int) core.Vec3 {
	lights := visibleLights(scene, hit)
	color := diffuseColor(scene, hit, lights, m.surfaceColor(hit))

	if m.Reflectivity > 0 {
		refl := reflectionColor(scene, hit, incident, depth)
		color = refl.Lerp(color, 1.0-m.Reflectivity)
	}

	if m.Translucency > 0 {
		trans := translucentColor(scene, hit, incident, 1.0/m.RefractiveIndex, depth)
		color = trans.Lerp(color, 1.0-m.Translucency)
	}

	if m.Shininess > 0 {
		color = color.Add(specularColor(hit, lights, incident, &m.Properties))
	}
	return color
}
