package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// diskTracer hits everything inside the unit circle of the screen
type diskTracer struct {
	calls int
}

func (d *diskTracer) Render(ctx context.Context, sink PixelSink) (int, error) {
	width, height := sink.Size()
	hits := 0
	for y := 0; y < height; y++ {
		if ctx.Err() != nil {
			return hits, ErrInterrupted
		}
		for x := 0; x < width; x++ {
			d.calls++
			nx, ny := NormalizedCoord(x, width), NormalizedCoord(y, height)
			if nx*nx+ny*ny < 1 {
				sink.SetPixel(x, y, 1, nx, ny)
				hits++
			}
		}
	}
	return hits, nil
}

type recordingLogger struct {
	lines int
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.lines++
}

func TestRenderer_Render(t *testing.T) {
	tracer := &diskTracer{}
	logger := &recordingLogger{}
	frame := NewFrame(8, 6)

	stats, err := NewRenderer(tracer, Options{Name: "disk"}, logger).Render(context.Background(), frame)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.Pixels != 48 || tracer.calls != 48 {
		t.Errorf("Expected 48 pixels traced, got %d (%d calls)", stats.Pixels, tracer.calls)
	}
	if stats.Scene != "disk" || stats.ID == "" || stats.Width != 8 || stats.Height != 6 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if logger.lines != 2 {
		t.Errorf("Expected start and finish log lines, got %d", logger.lines)
	}

	hits := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if frame.At(x, y) != (core.Vec3{}) {
				hits++
			}
		}
	}
	if stats.Hits != hits {
		t.Errorf("Expected %d hits, got %d", hits, stats.Hits)
	}
}

func TestRenderer_UniqueIDs(t *testing.T) {
	r := NewRenderer(&diskTracer{}, Options{}, nil)
	a, _ := r.Render(context.Background(), NewFrame(1, 1))
	b, _ := r.Render(context.Background(), NewFrame(1, 1))
	if a.ID == b.ID {
		t.Errorf("Expected distinct render ids, got %s twice", a.ID)
	}
}

func TestRenderer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tracer := &diskTracer{}
	stats, err := NewRenderer(tracer, Options{}, nil).Render(ctx, NewFrame(4, 4))
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Expected ErrInterrupted, got %v", err)
	}
	if stats.Pixels != 0 || tracer.calls != 0 {
		t.Errorf("No pixels should be traced after cancellation, got %d", stats.Pixels)
	}
}

func TestRenderer_EmptyFrame(t *testing.T) {
	_, err := NewRenderer(&diskTracer{}, Options{}, nil).Render(context.Background(), NewFrame(0, 3))
	if !errors.Is(err, ErrEmptyFrame) {
		t.Errorf("Expected ErrEmptyFrame, got %v", err)
	}
}

func TestStats(t *testing.T) {
	s := Stats{Pixels: 200, Hits: 50, Elapsed: 2e9}
	if s.Coverage() != 0.25 {
		t.Errorf("Expected coverage 0.25, got %f", s.Coverage())
	}
	if s.PixelsPerSecond() != 100 {
		t.Errorf("Expected 100 pixels/s, got %f", s.PixelsPerSecond())
	}
	if (Stats{}).Coverage() != 0 || (Stats{}).PixelsPerSecond() != 0 {
		t.Error("Empty stats should report zero rates")
	}
}
