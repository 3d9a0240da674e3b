package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
)

// NewSphereScene is a single unmaterialed unit sphere at the origin seen by
// the default camera
func NewSphereScene(opts Options) *Scene {
	s := New(nil)

	sphere := geometry.NewSphere(nil, nil)
	sphere.SetBaseColor(core.NewVec3(0.25, 0.5, 0.8))
	s.AddShape(sphere)

	s.AddLight(lights.NewPointLight(core.NewVec3(5, -10, -5), core.NewVec3(1, 1, 1), 1.0))
	return s
}
