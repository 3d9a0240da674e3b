package scene

import (
	"context"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// DefaultMaxReflectionDepth is the secondary-ray budget of a new scene
const DefaultMaxReflectionDepth = 3

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera             *renderer.Camera
	Shapes             []core.Shape // Objects in the scene, in registration order
	Lights             []core.Light // Lights in the scene
	AmbientColor       core.Vec3    // Ambient light color
	AmbientIntensity   float64      // Scales AmbientColor; 0 disables ambient light
	MaxReflectionDepth int          // Secondary rays allowed per camera ray
}

// New creates an empty scene. A nil camera gets the default camera.
func New(camera *renderer.Camera) *Scene {
	if camera == nil {
		camera = renderer.NewCamera(renderer.DefaultCameraConfig())
	}
	return &Scene{
		Camera:             camera,
		Shapes:             make([]core.Shape, 0),
		Lights:             make([]core.Light, 0),
		AmbientColor:       core.NewVec3(1, 1, 1),
		MaxReflectionDepth: DefaultMaxReflectionDepth,
	}
}

// AddShape registers shapes. Earlier shapes win distance ties.
func (s *Scene) AddShape(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// AddLight registers lights
func (s *Scene) AddLight(lights ...core.Light) {
	s.Lights = append(s.Lights, lights...)
}

// GetShapes returns the shapes in registration order
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// GetLights returns the lights
func (s *Scene) GetLights() []core.Light {
	return s.Lights
}

// MaxDepth returns the secondary-ray budget
func (s *Scene) MaxDepth() int {
	return s.MaxReflectionDepth
}

// Ambient returns the ambient color scaled by its intensity
func (s *Scene) Ambient() core.Vec3 {
	return s.AmbientColor.Multiply(s.AmbientIntensity)
}

// CastRay returns the hit nearest to the ray origin among all shapes except
// exclude
func (s *Scene) CastRay(ray core.Ray, exclude core.Shape) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for _, shape := range s.Shapes {
		if shape == exclude {
			continue
		}
		hit, ok := shape.TestIntersection(ray)
		if !ok {
			continue
		}
		if closest == nil || hit.Distance < closest.Distance {
			closest = hit
		}
	}
	return closest, closest != nil
}

// TracePixel shades the camera ray through normalized screen coordinates.
// Misses report false.
func (s *Scene) TracePixel(nx, ny float64) (core.Vec3, bool) {
	ray := s.Camera.GenerateRay(nx, ny)
	hit, ok := s.CastRay(ray, nil)
	if !ok {
		return core.Vec3{}, false
	}
	return material.Shade(s, hit, ray, 0), true
}

// Render traces every pixel of sink on the calling goroutine and returns
// the number of primary rays that hit a shape. Pixels with no hit are not
// written. ctx is checked between rows.
func (s *Scene) Render(ctx context.Context, sink renderer.PixelSink) (int, error) {
	width, height := sink.Size()
	hits := 0
	for y := 0; y < height; y++ {
		if err := ctx.Err(); err != nil {
			return hits, renderer.ErrInterrupted
		}
		ny := renderer.NormalizedCoord(y, height)
		for x := 0; x < width; x++ {
			c, ok := s.TracePixel(renderer.NormalizedCoord(x, width), ny)
			if !ok {
				continue
			}
			sink.SetPixel(x, y, c.X, c.Y, c.Z)
			hits++
		}
	}
	return hits, nil
}
