package renderer

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// PixelSink receives shaded pixels. Channel values are unbounded floats;
// display range mapping is left to the sink.
type PixelSink interface {
	Size() (width, height int)
	SetPixel(x, y int, r, g, b float64)
}

// NormalizedCoord maps pixel index i of n onto the [-1, 1) screen range
func NormalizedCoord(i, n int) float64 {
	return float64(i)*(2.0/float64(n)) - 1.0
}

// ToneMap selects how float pixels are squeezed into 8 bits
type ToneMap string

const (
	// ToneMapNormalize divides every channel by the brightest channel in the frame
	ToneMapNormalize ToneMap = "normalize"
	// ToneMapClamp clips each channel to [0, 1]
	ToneMapClamp ToneMap = "clamp"
)

// ParseToneMap validates a tone map name
func ParseToneMap(name string) (ToneMap, error) {
	switch tm := ToneMap(strings.ToLower(name)); tm {
	case ToneMapNormalize, ToneMapClamp:
		return tm, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownToneMap, name)
}

// Frame is a float RGB buffer
type Frame struct {
	width, height int
	pix           []core.Vec3
}

// NewFrame creates a black frame
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]core.Vec3, width*height),
	}
}

// Size returns the frame dimensions
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// SetPixel stores a color; writes outside the frame are ignored
func (f *Frame) SetPixel(x, y int, r, g, b float64) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = core.NewVec3(r, g, b)
}

// At returns the stored color at (x, y)
func (f *Frame) At(x, y int) core.Vec3 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return core.Vec3{}
	}
	return f.pix[y*f.width+x]
}

// Max returns the largest channel value in the frame
func (f *Frame) Max() float64 {
	maxValue := 0.0
	for _, p := range f.pix {
		if m := p.MaxComponent(); m > maxValue {
			maxValue = m
		}
	}
	return maxValue
}

// ToImage converts the frame to 8-bit RGBA
func (f *Frame) ToImage(tm ToneMap) (*image.RGBA, error) {
	scale := 1.0
	switch tm {
	case ToneMapNormalize:
		if m := f.Max(); m > 0 {
			scale = 1.0 / m
		}
	case ToneMapClamp:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownToneMap, tm)
	}

	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			c := f.pix[y*f.width+x].Multiply(scale)
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(c.X),
				G: toByte(c.Y),
				B: toByte(c.Z),
				A: 255,
			})
		}
	}
	return img, nil
}

func toByte(v float64) uint8 {
	return uint8(core.Clamp(v, 0, 1)*255 + 0.5)
}

// Save tone maps the frame and writes it to path. The encoder is picked
// from the file extension.
func (f *Frame) Save(path string, tm ToneMap) error {
	if f.width == 0 || f.height == 0 {
		return ErrEmptyFrame
	}

	encoder, err := encoderFor(path)
	if err != nil {
		return err
	}

	img, err := f.ToImage(tm)
	if err != nil {
		return err
	}

	if err := imgio.Save(path, img, encoder); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}

func encoderFor(path string) (imgio.Encoder, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return imgio.PNGEncoder(), nil
	case ".jpg", ".jpeg":
		return imgio.JPEGEncoder(95), nil
	case ".bmp":
		return imgio.BMPEncoder(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
