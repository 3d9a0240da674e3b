package lights

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PointLight emits from a single point. Its contribution falls off linearly
// with the angle between the surface normal and the light direction and is
// independent of distance.
type PointLight struct {
	Location  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a point light
func NewPointLight(location, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{Location: location, Color: color, Intensity: intensity}
}

// Position returns the light location
func (pl *PointLight) Position() core.Vec3 {
	return pl.Location
}

// Visible runs the shadow test from point towards the light
func (pl *PointLight) Visible(point core.Vec3, shapes []core.Shape, exclude core.Shape) bool {
	return Visible(point, pl.Location, shapes, exclude)
}

// Illuminate returns the unshadowed contribution at point. Points facing away
// from the light get nothing.
func (pl *PointLight) Illuminate(point, normal core.Vec3) (core.Vec3, float64, bool) {
	lightDir := pl.Location.Subtract(point).Normalize()
	angle := math.Acos(core.Clamp(normal.Dot(lightDir), -1.0, 1.0))

	if angle > math.Pi/2 {
		return pl.Color, 0, false
	}
	return pl.Color, pl.Intensity * (1.0 - angle/(math.Pi/2)), true
}

// ComputeIllumination is Illuminate gated by the shadow test
func (pl *PointLight) ComputeIllumination(point, normal core.Vec3, shapes []core.Shape, exclude core.Shape) (core.Vec3, float64, bool) {
	if !pl.Visible(point, shapes, exclude) {
		return pl.Color, 0, false
	}
	return pl.Illuminate(point, normal)
}
