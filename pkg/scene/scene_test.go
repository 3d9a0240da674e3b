package scene

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/lights"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/transform"
)

func vec3ApproxEqual(a, b core.Vec3) bool {
	return a.Subtract(b).Length() < 1e-9
}

func sphereAt(center core.Vec3, radius float64) *geometry.Sphere {
	return geometry.NewSphere(transform.Must(center, core.Vec3{}, core.NewVec3(radius, radius, radius)), nil)
}

func TestScene_CameraRayHitsUnitSphere(t *testing.T) {
	s := New(renderer.NewCamera(renderer.DefaultCameraConfig()))
	s.AddShape(geometry.NewSphere(nil, nil))

	ray := s.Camera.GenerateRay(0, 0)
	hit, ok := s.CastRay(ray, nil)
	if !ok {
		t.Fatal("Expected the central camera ray to hit the sphere")
	}
	if !vec3ApproxEqual(hit.Point, core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected hit at (0,-1,0), got %v", hit.Point)
	}
	if !vec3ApproxEqual(hit.Normal, core.NewVec3(0, -1, 0)) {
		t.Errorf("Expected normal (0,-1,0), got %v", hit.Normal)
	}
	if math.Abs(hit.Distance-9) > 1e-9 {
		t.Errorf("Expected distance 9, got %f", hit.Distance)
	}
}

func TestScene_CastRay(t *testing.T) {
	near := sphereAt(core.NewVec3(0, -3, 0), 1)
	far := sphereAt(core.NewVec3(0, 3, 0), 1)
	twin := sphereAt(core.NewVec3(0, -3, 0), 1)

	ray := core.NewRay(core.NewVec3(0, -10, 0), core.Vec3{})

	tests := []struct {
		name     string
		shapes   []core.Shape
		exclude  core.Shape
		expected core.Shape
	}{
		{"Nearest wins regardless of order", []core.Shape{far, near}, nil, near},
		{"Excluded shape is skipped", []core.Shape{far, near}, near, far},
		{"Ties go to the first registered", []core.Shape{near, twin}, nil, near},
		{"Ties go to the first registered reversed", []core.Shape{twin, near}, nil, twin},
		{"Nothing left", []core.Shape{near}, near, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			s.AddShape(tt.shapes...)
			hit, ok := s.CastRay(ray, tt.exclude)
			if tt.expected == nil {
				if ok {
					t.Errorf("Expected no hit, got %v", hit.Shape)
				}
				return
			}
			if !ok || hit.Shape != tt.expected {
				t.Errorf("Expected a hit on the expected shape, got %+v", hit)
			}
		})
	}
}

func TestScene_Defaults(t *testing.T) {
	s := New(nil)
	if s.MaxDepth() != DefaultMaxReflectionDepth {
		t.Errorf("Expected max depth %d, got %d", DefaultMaxReflectionDepth, s.MaxDepth())
	}
	if s.Ambient() != (core.Vec3{}) {
		t.Errorf("Ambient should be off by default, got %v", s.Ambient())
	}
	s.AmbientColor = core.NewVec3(1, 0.5, 0)
	s.AmbientIntensity = 0.5
	if !vec3ApproxEqual(s.Ambient(), core.NewVec3(0.5, 0.25, 0)) {
		t.Errorf("Expected scaled ambient, got %v", s.Ambient())
	}
	if s.Camera == nil {
		t.Error("Expected a default camera")
	}
}

func TestScene_Render(t *testing.T) {
	s := New(nil)
	sphere := geometry.NewSphere(nil, nil)
	sphere.SetBaseColor(core.NewVec3(1, 0, 0))
	s.AddShape(sphere)
	s.AddLight(lights.NewPointLight(core.NewVec3(0, -10, 0), core.NewVec3(1, 1, 1), 1.0))

	frame := renderer.NewFrame(4, 4)
	hits, err := s.Render(context.Background(), frame)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Only the central pixel (2,2) looks at the sphere; its neighbours at
	// half a screen width pass more than four units wide of it
	if hits != 1 {
		t.Errorf("Expected exactly one hit, got %d", hits)
	}
	center := frame.At(2, 2)
	if !vec3ApproxEqual(center, core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected fully lit red at the center, got %v", center)
	}
	if corner := frame.At(0, 0); corner != (core.Vec3{}) {
		t.Errorf("Corner ray misses and should stay black, got %v", corner)
	}
}

func TestScene_RenderCancelled(t *testing.T) {
	s := NewSphereScene(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hits, err := s.Render(ctx, renderer.NewFrame(4, 4))
	if !errors.Is(err, renderer.ErrInterrupted) {
		t.Errorf("Expected ErrInterrupted, got %v", err)
	}
	if hits != 0 {
		t.Errorf("Expected no work after cancellation, got %d hits", hits)
	}
}

func TestScene_ThroughRenderer(t *testing.T) {
	s := NewShapesScene(Options{})

	direct := renderer.NewFrame(32, 18)
	hits, err := s.Render(context.Background(), direct)
	if err != nil {
		t.Fatalf("Direct render failed: %v", err)
	}

	driven := renderer.NewFrame(32, 18)
	stats, err := renderer.NewRenderer(s, renderer.Options{Name: "shapes"}, nil).Render(context.Background(), driven)
	if err != nil {
		t.Fatalf("Driven render failed: %v", err)
	}

	if stats.Hits != hits || stats.Pixels != 32*18 {
		t.Errorf("Expected %d hits over %d pixels, got %+v", hits, 32*18, stats)
	}
	for y := 0; y < 18; y++ {
		for x := 0; x < 32; x++ {
			if direct.At(x, y) != driven.At(x, y) {
				t.Fatalf("Pixel (%d,%d) differs: %v vs %v", x, y, direct.At(x, y), driven.At(x, y))
			}
		}
	}
}

func TestScene_MaxDepthReachesMaterials(t *testing.T) {
	// A reflective sphere in an empty scene reflects nothing, so its color
	// only depends on the diffuse term whatever the budget
	s := New(nil)
	s.AmbientIntensity = 1
	s.AddShape(geometry.NewSphere(nil, material.NewSimple(core.NewVec3(0, 1, 0), 0.5, 0)))

	for _, depth := range []int{0, 3} {
		s.MaxReflectionDepth = depth
		c, ok := s.TracePixel(0, 0)
		if !ok {
			t.Fatal("Expected a hit")
		}
		if !vec3ApproxEqual(c, core.NewVec3(0, 0.5, 0)) {
			t.Errorf("depth %d: expected (0,0.5,0), got %v", depth, c)
		}
	}
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, format)
}

func TestCreate(t *testing.T) {
	names := Names()
	if len(names) != 3 || names[0] != "shapes" || names[1] != "sphere" || names[2] != "spheres" {
		t.Fatalf("Unexpected scene names %v", names)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, Options{})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if len(s.Shapes) == 0 || len(s.Lights) == 0 || s.Camera == nil {
				t.Errorf("Scene %s is incomplete: %d shapes, %d lights", name, len(s.Shapes), len(s.Lights))
			}
		})
	}

	if _, err := Create("cornell", Options{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestSpheresScene_MissingImage(t *testing.T) {
	logger := &recordingLogger{}
	s := NewSpheresScene(Options{
		ImagePath: filepath.Join(t.TempDir(), "missing.bmp"),
		Logger:    logger,
	})
	if len(logger.messages) != 1 {
		t.Errorf("Expected one warning, got %v", logger.messages)
	}
	if len(s.Shapes) != 6 || len(s.Lights) != 2 {
		t.Errorf("Expected 6 shapes and 2 lights, got %d and %d", len(s.Shapes), len(s.Lights))
	}
	if !vec3ApproxEqual(s.Ambient(), core.NewVec3(0.2, 0.2, 0.2)) {
		t.Errorf("Expected ambient 0.2, got %v", s.Ambient())
	}

	// Without a path nothing is loaded and nothing is logged
	quiet := &recordingLogger{}
	NewSpheresScene(Options{Logger: quiet})
	if len(quiet.messages) != 0 {
		t.Errorf("Expected no warnings, got %v", quiet.messages)
	}
}
