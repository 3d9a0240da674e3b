package loaders

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"golang.org/x/image/bmp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255}) // white
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})     // red
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})     // green
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})     // blue
	return img
}

func writeImage(t *testing.T, name string, encode func(f *os.File) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		t.Fatalf("Failed to encode %s: %v", name, err)
	}
	return path
}

func TestLoadImage(t *testing.T) {
	img := testImage()

	tests := []struct {
		name   string
		file   string
		encode func(f *os.File) error
	}{
		{"BMP", "test.bmp", func(f *os.File) error { return bmp.Encode(f, img) }},
		{"PNG", "test.png", func(f *os.File) error { return png.Encode(f, img) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, tt.file, tt.encode)

			data, err := LoadImage(path)
			if err != nil {
				t.Fatalf("LoadImage failed: %v", err)
			}
			if data.Width != 2 || data.Height != 2 {
				t.Fatalf("Expected 2x2 image, got %dx%d", data.Width, data.Height)
			}
			if data.Stride < 2*bytesPerPixel {
				t.Errorf("Stride %d is shorter than a row", data.Stride)
			}

			checks := []struct {
				x, y     int
				expected core.Vec4
			}{
				{0, 0, core.NewVec4(1, 1, 1, 1)},
				{1, 0, core.NewVec4(1, 0, 0, 1)},
				{0, 1, core.NewVec4(0, 1, 0, 1)},
				{1, 1, core.NewVec4(0, 0, 1, 1)},
			}
			for _, c := range checks {
				got := data.At(c.x, c.y)
				if math.Abs(got.X-c.expected.X) > 0.01 ||
					math.Abs(got.Y-c.expected.Y) > 0.01 ||
					math.Abs(got.Z-c.expected.Z) > 0.01 {
					t.Errorf("Pixel (%d,%d): expected %v, got %v", c.x, c.y, c.expected, got)
				}
			}
		})
	}
}

func TestLoadImage_Errors(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.bmp")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := writeImage(t, "garbage.bmp", func(f *os.File) error {
		_, err := f.WriteString("not an image")
		return err
	})
	if _, err := LoadImage(path); err == nil {
		t.Error("Expected error for undecodable file")
	}
}

func TestFromImage_SubImage(t *testing.T) {
	sub := testImage().SubImage(image.Rect(1, 1, 2, 2))
	data := FromImage(sub)

	if data.Width != 1 || data.Height != 1 {
		t.Fatalf("Expected 1x1 image, got %dx%d", data.Width, data.Height)
	}
	if got := data.At(0, 0); got.Z != 1 || got.X != 0 {
		t.Errorf("Expected blue at sub-image origin, got %v", got)
	}
}
