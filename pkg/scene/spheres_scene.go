package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

// NewSpheresScene creates three mirrored spheres and a glass sphere on a
// checkered floor, with an image hung on a backdrop behind them. The world
// uses +z as down.
func NewSpheresScene(opts Options) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Position:       core.NewVec3(2, -5, 0.25),
		LookAt:         core.NewVec3(0, 0, 0),
		Up:             core.NewVec3(0, 0, 1),
		Length:         1.0,
		HorizontalSize: 1.0,
		AspectRatio:    16.0 / 9.0,
	})

	s := New(camera)
	s.AmbientColor = core.NewVec3(1, 1, 1)
	s.AmbientIntensity = 0.2

	// Textures
	floorTexture := material.NewCheckerTexture()
	floorTexture.SetTransform(core.Vec2{}, 0, core.NewVec2(16, 16))

	imageTexture := material.NewImageTexture()
	imageTexture.SetTransform(core.Vec2{}, 0, core.NewVec2(1, 1))
	if opts.ImagePath != "" {
		if err := imageTexture.LoadImage(opts.ImagePath); err != nil {
			opts.logf("spheres: backdrop image unavailable, using placeholder color: %v", err)
		}
	}

	// Materials
	floorMaterial := material.NewSimple(core.NewVec3(1, 1, 1), 0.25, 0)
	floorMaterial.AssignTexture(floorTexture)

	imageMaterial := material.NewSimple(core.NewVec3(1, 0.125, 0.125), 0, 0)
	imageMaterial.AssignTexture(imageTexture)

	red := material.NewSimple(core.NewVec3(1, 0.2, 0.2), 0.8, 32)
	green := material.NewSimple(core.NewVec3(0.2, 1, 0.2), 0.8, 32)
	blue := material.NewSimple(core.NewVec3(0.2, 0.2, 1), 0.8, 32)
	glass := material.NewRefractive(core.NewVec3(0.7, 0.7, 0.2), 0.25, 32, 0.75, 1.333)

	// Objects
	noRotation := core.Vec3{}
	sphereScale := core.NewVec3(0.75, 0.75, 0.75)

	floor := geometry.NewPlane(transform.Must(core.NewVec3(0, 0, 1), noRotation, core.NewVec3(16, 16, 1)), floorMaterial)
	imagePlane := geometry.NewPlane(
		transform.Must(core.NewVec3(0, 5, -0.75), core.NewVec3(-math.Pi/2, 0, 0), core.NewVec3(1.75, 1.75, 1)),
		imageMaterial,
	)

	s.AddShape(
		floor,
		imagePlane,
		geometry.NewSphere(transform.Must(core.NewVec3(-2, -2, 0.25), noRotation, sphereScale), red),
		geometry.NewSphere(transform.Must(core.NewVec3(-2, -0.5, 0.25), noRotation, sphereScale), green),
		geometry.NewSphere(transform.Must(core.NewVec3(-2, -1.25, -1), noRotation, sphereScale), blue),
		geometry.NewSphere(transform.Must(core.NewVec3(2, -1.25, 0.25), noRotation, sphereScale), glass),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(3, -10, -5), core.NewVec3(1, 1, 1), 4.0),
		lights.NewPointLight(core.NewVec3(0, -10, -5), core.NewVec3(1, 1, 1), 2.0),
	)

	return s
}
