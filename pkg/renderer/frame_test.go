package renderer

import (
	"errors"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

func TestNormalizedCoord(t *testing.T) {
	tests := []struct {
		i, n     int
		expected float64
	}{
		{0, 4, -1.0},
		{1, 4, -0.5},
		{2, 4, 0.0},
		{3, 4, 0.5},
		{0, 1, -1.0},
	}

	for _, tt := range tests {
		if got := NormalizedCoord(tt.i, tt.n); got != tt.expected {
			t.Errorf("NormalizedCoord(%d, %d): expected %f, got %f", tt.i, tt.n, tt.expected, got)
		}
	}
}

func TestParseToneMap(t *testing.T) {
	for _, name := range []string{"normalize", "clamp", "CLAMP"} {
		if _, err := ParseToneMap(name); err != nil {
			t.Errorf("Expected %q to parse, got %v", name, err)
		}
	}
	if _, err := ParseToneMap("reinhard"); !errors.Is(err, ErrUnknownToneMap) {
		t.Errorf("Expected ErrUnknownToneMap, got %v", err)
	}
}

func TestFrame_SetPixelBounds(t *testing.T) {
	f := NewFrame(2, 2)
	f.SetPixel(1, 1, 0.5, 0.25, 1)
	f.SetPixel(-1, 0, 9, 9, 9)
	f.SetPixel(2, 0, 9, 9, 9)

	if got := f.At(1, 1); got.X != 0.5 || got.Y != 0.25 || got.Z != 1 {
		t.Errorf("Expected stored pixel, got %v", got)
	}
	if f.Max() != 1 {
		t.Errorf("Out of range writes must be ignored, max is %f", f.Max())
	}
}

func TestFrame_ToImage(t *testing.T) {
	f := NewFrame(2, 1)
	f.SetPixel(0, 0, 2, 1, 0)
	f.SetPixel(1, 0, 0.5, 0, 0)

	tests := []struct {
		name   string
		tm     ToneMap
		first  color.RGBA
		second color.RGBA
	}{
		{"Normalize by frame max", ToneMapNormalize, color.RGBA{255, 128, 0, 255}, color.RGBA{64, 0, 0, 255}},
		{"Clamp", ToneMapClamp, color.RGBA{255, 255, 0, 255}, color.RGBA{128, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := f.ToImage(tt.tm)
			if err != nil {
				t.Fatalf("ToImage failed: %v", err)
			}
			if got := img.RGBAAt(0, 0); got != tt.first {
				t.Errorf("First pixel: expected %v, got %v", tt.first, got)
			}
			if got := img.RGBAAt(1, 0); got != tt.second {
				t.Errorf("Second pixel: expected %v, got %v", tt.second, got)
			}
		})
	}

	if _, err := f.ToImage("sepia"); !errors.Is(err, ErrUnknownToneMap) {
		t.Errorf("Expected ErrUnknownToneMap, got %v", err)
	}
}

func TestFrame_NormalizeBlackFrame(t *testing.T) {
	img, err := NewFrame(1, 1).ToImage(ToneMapNormalize)
	if err != nil {
		t.Fatalf("ToImage failed: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Expected opaque black, got %v", got)
	}
}

func TestFrame_Save(t *testing.T) {
	f := NewFrame(3, 2)
	f.SetPixel(2, 1, 1, 0, 0)

	for _, name := range []string{"out.png", "out.bmp", "out.jpg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := f.Save(path, ToneMapClamp); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			img, err := imgio.Open(path)
			if err != nil {
				t.Fatalf("Could not read back %s: %v", name, err)
			}
			if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
				t.Errorf("Expected 3x2 image, got %v", b)
			}
		})
	}

	if err := f.Save(filepath.Join(t.TempDir(), "out.tga"), ToneMapClamp); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if err := NewFrame(0, 0).Save(filepath.Join(t.TempDir(), "out.png"), ToneMapClamp); !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("Expected ErrEmptyFrame, got %v", err)
	}
}
