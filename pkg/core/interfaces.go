package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord describes one ray/shape intersection. It is returned by value
// from every intersection test so no per-shape state is written while tracing.
type HitRecord struct {
	Point    Vec3    // world-space intersection point
	Normal   Vec3    // unit world-space surface normal
	Color    Vec3    // shape base color, or texture color at UV
	UV       Vec2    // surface parametrisation used for texturing
	Distance float64 // Euclidean distance from the ray origin
	Shape    Shape
}

// Shape is anything a ray can hit
type Shape interface {
	// TestIntersection returns the nearest hit in front of the ray origin
	TestIntersection(ray Ray) (*HitRecord, bool)
	// Material returns the attached material, or nil
	Material() Material
	// BaseColor is used when no material or texture supplies a color
	BaseColor() Vec3
}

// Material computes the color leaving a surface point towards the viewer.
// depth counts the secondary rays already spawned on the current path.
type Material interface {
	ComputeColor(scene Scene, hit *HitRecord, incident Ray, depth int) Vec3
}

// Texture maps surface (u, v) coordinates to an RGBA color
type Texture interface {
	ColorAt(uv Vec2) Vec4
}

// Light illuminates surface points
type Light interface {
	// Position is the light's world-space location
	Position() Vec3
	// Visible reports whether nothing in shapes, other than exclude, lies
	// between point and the light
	Visible(point Vec3, shapes []Shape, exclude Shape) bool
	// Illuminate returns the unshadowed contribution at point with the given
	// unit normal; ok is false for back-facing points
	Illuminate(point, normal Vec3) (color Vec3, intensity float64, ok bool)
	// ComputeIllumination combines Visible and Illuminate
	ComputeIllumination(point, normal Vec3, shapes []Shape, exclude Shape) (color Vec3, intensity float64, ok bool)
}

// Scene is the read-only view of a scene that materials need while shading
type Scene interface {
	GetShapes() []Shape
	GetLights() []Light
	// CastRay returns the nearest hit of ray against every shape except exclude
	CastRay(ray Ray, exclude Shape) (*HitRecord, bool)
	// MaxDepth is the secondary-ray budget shared by reflection and refraction
	MaxDepth() int
	// Ambient returns the ambient light color already scaled by its intensity
	Ambient() Vec3
}

// Textured is implemented by materials that can carry textures
type Textured interface {
	// Texture returns the texture used for surface color, or nil
	Texture() Texture
}
