package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	_ "golang.org/x/image/bmp" // BMP decoder
)

// bytesPerPixel is the size of one RGBA pixel in ImageData.Pix
const bytesPerPixel = 4

// ImageData is a decoded raster in 8-bit RGBA, row-major from the top row.
// Stride is the number of bytes between the starts of consecutive rows.
type ImageData struct {
	Width  int
	Height int
	Stride int
	Pix    []uint8
}

// LoadImage loads a BMP, PNG or JPEG image
func LoadImage(filename string) (*ImageData, error) {
	img, err := imgio.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}
	return FromImage(img), nil
}

// FromImage converts any decoded image to ImageData
func FromImage(img image.Image) *ImageData {
	rgba := clone.AsShallowRGBA(img)
	bounds := rgba.Bounds()
	offset := rgba.PixOffset(bounds.Min.X, bounds.Min.Y)

	return &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Stride: rgba.Stride,
		Pix:    rgba.Pix[offset:],
	}
}

// At returns the pixel at (x, y) as RGBA in [0, 1]. Coordinates must be in
// range.
func (d *ImageData) At(x, y int) core.Vec4 {
	i := y*d.Stride + x*bytesPerPixel
	return core.NewVec4(
		float64(d.Pix[i])/255.0,
		float64(d.Pix[i+1])/255.0,
		float64(d.Pix[i+2])/255.0,
		float64(d.Pix[i+3])/255.0,
	)
}
