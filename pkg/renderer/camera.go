package renderer

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Position       core.Vec3 // Camera position
	LookAt         core.Vec3 // Point the camera is looking at
	Up             core.Vec3 // Up direction
	Length         float64   // Distance from the camera to the screen
	HorizontalSize float64   // Half-width of the screen in world units
	AspectRatio    float64   // Width / height
}

// DefaultCameraConfig looks at the origin from ten units down -y with +z up
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position:       core.NewVec3(0, -10, 0),
		LookAt:         core.NewVec3(0, 0, 0),
		Up:             core.NewVec3(0, 0, 1),
		Length:         1.0,
		HorizontalSize: 1.0,
		AspectRatio:    1.0,
	}
}

// Camera generates primary rays through a virtual screen in front of it.
// The setters do not refresh the derived screen vectors; call
// UpdateCameraGeometry after changing anything.
type Camera struct {
	config CameraConfig

	alignment    core.Vec3
	screenU      core.Vec3
	screenV      core.Vec3
	screenCenter core.Vec3
}

// NewCamera creates a camera and computes its screen geometry
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.UpdateCameraGeometry()
	return c
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(p core.Vec3) { c.config.Position = p }

// SetLookAt sets the point the camera looks at
func (c *Camera) SetLookAt(p core.Vec3) { c.config.LookAt = p }

// SetUp sets the up direction
func (c *Camera) SetUp(up core.Vec3) { c.config.Up = up }

// SetLength sets the camera-to-screen distance
func (c *Camera) SetLength(l float64) { c.config.Length = l }

// SetHorizontalSize sets the screen half-width
func (c *Camera) SetHorizontalSize(s float64) { c.config.HorizontalSize = s }

// SetAspect sets the screen aspect ratio
func (c *Camera) SetAspect(a float64) { c.config.AspectRatio = a }

// Config returns the current configuration
func (c *Camera) Config() CameraConfig { return c.config }

// UpdateCameraGeometry recomputes the screen vectors from the configuration
func (c *Camera) UpdateCameraGeometry() {
	cfg := c.config
	c.alignment = cfg.LookAt.Subtract(cfg.Position).Normalize()
	c.screenU = c.alignment.Cross(cfg.Up).Normalize().Multiply(cfg.HorizontalSize)
	c.screenV = c.screenU.Cross(c.alignment).Normalize().Multiply(cfg.HorizontalSize / cfg.AspectRatio)
	c.screenCenter = cfg.Position.Add(c.alignment.Multiply(cfg.Length))
}

// Alignment is the unit viewing direction
func (c *Camera) Alignment() core.Vec3 { return c.alignment }

// ScreenU is the screen's horizontal half-extent vector
func (c *Camera) ScreenU() core.Vec3 { return c.screenU }

// ScreenV is the screen's vertical half-extent vector
func (c *Camera) ScreenV() core.Vec3 { return c.screenV }

// ScreenCenter is the point on the screen the camera looks through
func (c *Camera) ScreenCenter() core.Vec3 { return c.screenCenter }

// GenerateRay returns the ray through normalized screen coordinates
// (nx, ny) in [-1, 1]
func (c *Camera) GenerateRay(nx, ny float64) core.Ray {
	target := c.screenCenter.Add(c.screenU.Multiply(nx)).Add(c.screenV.Multiply(ny))
	return core.NewRay(c.config.Position, target)
}
