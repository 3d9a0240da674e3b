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

// NewShapesScene shows every primitive kind: a checkered cone standing on a
// checkered cylinder, two spheres, a floor and two mirrored walls
func NewShapesScene(opts Options) *Scene {
	camera := renderer.NewCamera(renderer.CameraConfig{
		Position:       core.NewVec3(2, -5, -2),
		LookAt:         core.NewVec3(0, 0, 0),
		Up:             core.NewVec3(0, 0, 1),
		Length:         1.0,
		HorizontalSize: 1.0,
		AspectRatio:    16.0 / 9.0,
	})

	s := New(camera)

	checker := func(c1, c2 core.Vec3, scale core.Vec2) *material.CheckerTexture {
		t := material.NewCheckerTexture()
		t.SetColors(core.NewVec4(c1.X, c1.Y, c1.Z, 1), core.NewVec4(c2.X, c2.Y, c2.Z, 1))
		t.SetTransform(core.Vec2{}, 0, scale)
		return t
	}

	floorTexture := material.NewCheckerTexture()
	floorTexture.SetTransform(core.Vec2{}, 0, core.NewVec2(16, 16))
	sphereTexture := checker(core.NewVec3(0.2, 0.2, 0.8), core.NewVec3(0.8, 0.8, 0.2), core.NewVec2(16, 16))
	cylinderTexture := checker(core.NewVec3(1, 0.5, 0), core.NewVec3(0.8, 0.8, 0.2), core.NewVec2(4*math.Pi, 4))
	coneTexture := checker(core.NewVec3(0.2, 0.2, 0.8), core.NewVec3(1, 0.5, 0), core.NewVec2(8*(math.Pi/2), 8))

	silverMetal := material.NewSimple(core.NewVec3(0.5, 0.5, 0.8), 0.5, 20)
	yellowDiffuse := material.NewSimple(core.NewVec3(0.8, 0.8, 0.2), 0.05, 20)
	yellowDiffuse.AssignTexture(sphereTexture)
	blueDiffuse := material.NewSimple(core.NewVec3(0.2, 0.2, 0.8), 0.05, 5)
	blueDiffuse.AssignTexture(coneTexture)
	orangeDiffuse := material.NewSimple(core.NewVec3(1, 0.5, 0), 0.05, 5)
	orangeDiffuse.AssignTexture(cylinderTexture)
	floorMaterial := material.NewSimple(core.NewVec3(1, 1, 1), 0.5, 0)
	floorMaterial.AssignTexture(floorTexture)
	wallMaterial := material.NewSimple(core.NewVec3(1, 0.125, 0.125), 0.75, 0)

	noRotation := core.Vec3{}
	wallScale := core.NewVec3(16, 16, 1)

	// Flipped about x so the apex points up (-z) from a base at z = -1
	cone := geometry.NewCone(
		transform.Must(core.NewVec3(-1, -2, -1), core.NewVec3(math.Pi, 0, 0), core.NewVec3(0.5, 0.5, 1)),
		blueDiffuse,
	)

	s.AddShape(
		cone,
		geometry.NewSphere(transform.Must(core.NewVec3(1, -1, 0.5), noRotation, core.NewVec3(0.5, 0.5, 0.5)), silverMetal),
		geometry.NewSphere(transform.Must(core.NewVec3(2, 0, 0), noRotation, core.NewVec3(1, 1, 1)), yellowDiffuse),
		geometry.NewPlane(transform.Must(core.NewVec3(0, 0, 1), noRotation, wallScale), floorMaterial),
		geometry.NewPlane(transform.Must(core.NewVec3(-4, 0, 0), core.NewVec3(0, -math.Pi/2, -math.Pi/2), wallScale), wallMaterial),
		geometry.NewPlane(transform.Must(core.NewVec3(0, 4, 0), core.NewVec3(-math.Pi/2, 0, 0), wallScale), wallMaterial),
		geometry.NewCylinder(transform.Must(core.NewVec3(-1, -2, 0), noRotation, core.NewVec3(1, 1, 1)), orangeDiffuse),
	)

	s.AddLight(
		lights.NewPointLight(core.NewVec3(3, -10, -5), core.NewVec3(1, 1, 1), 1.0),
		lights.NewPointLight(core.NewVec3(0, -10, -5), core.NewVec3(1, 1, 1), 1.0),
		lights.NewPointLight(core.NewVec3(-2, 2, 0), core.NewVec3(1, 0.8, 0.8), 1.0),
	)

	return s
}
