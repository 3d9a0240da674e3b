package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
)

// missingImageColor is returned by an ImageTexture with no image
var missingImageColor = core.NewVec4(1, 0, 1, 1)

// ImageTexture samples a raster with nearest-neighbour lookup. Transformed
// UV in [-1, 1] spans the image once; outside that range it tiles.
type ImageTexture struct {
	uvTransform
	image *loaders.ImageData
}

// NewImageTexture creates an image texture with no image loaded
func NewImageTexture() *ImageTexture {
	return &ImageTexture{uvTransform: newUVTransform()}
}

// LoadImage decodes filename into the texture. On failure the texture keeps
// its previous image, or stays magenta if it never had one.
func (t *ImageTexture) LoadImage(filename string) error {
	img, err := loaders.LoadImage(filename)
	if err != nil {
		return err
	}
	t.image = img
	return nil
}

// SetImage replaces the texture's image
func (t *ImageTexture) SetImage(img *loaders.ImageData) {
	t.image = img
}

// Loaded reports whether the texture has an image
func (t *ImageTexture) Loaded() bool {
	return t.image != nil && t.image.Width > 0 && t.image.Height > 0
}

// ColorAt samples the image at uv
func (t *ImageTexture) ColorAt(uv core.Vec2) core.Vec4 {
	if !t.Loaded() {
		return missingImageColor
	}

	p := t.apply(uv)
	w, h := t.image.Width, t.image.Height

	x := int(math.Round((p.X + 1.0) / 2.0 * float64(w)))
	y := h - int(math.Round((p.Y+1.0)/2.0*float64(h)))

	return t.image.At(wrap(x, w), wrap(y, h))
}

// wrap maps i into [0, n) with toroidal wraparound
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
