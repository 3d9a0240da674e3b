package material

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Properties are the parameters shared by every material
type Properties struct {
	BaseColor    core.Vec3
	Reflectivity float64 // in [0, 1]; also scales the specular highlight
	Shininess    float64 // specular exponent; 0 disables the highlight

	textures []core.Texture
}

// AssignTexture attaches a texture. Only the first attached texture is used
// for shading.
func (p *Properties) AssignTexture(t core.Texture) {
	p.textures = append(p.textures, t)
}

// Texture returns the first attached texture, or nil
func (p *Properties) Texture() core.Texture {
	if len(p.textures) == 0 {
		return nil
	}
	return p.textures[0]
}

// surfaceColor is the texture color at the hit, or the base color
func (p *Properties) surfaceColor(hit *core.HitRecord) core.Vec3 {
	if tex := p.Texture(); tex != nil {
		return tex.ColorAt(hit.UV).RGB()
	}
	return p.BaseColor
}
