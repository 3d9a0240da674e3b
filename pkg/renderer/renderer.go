package renderer

import (
	"context"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/google/uuid"
)

// Tracer fills a sink with one rendered frame and reports how many primary
// rays hit a shape
type Tracer interface {
	Render(ctx context.Context, sink PixelSink) (hits int, err error)
}

// Options controls a Renderer
type Options struct {
	Name string // Scene name, reported in Stats
}

// Renderer times and logs a Tracer's frame
type Renderer struct {
	tracer Tracer
	opts   Options
	logger core.Logger
}

// NewRenderer creates a renderer. logger may be nil.
func NewRenderer(tracer Tracer, opts Options, logger core.Logger) *Renderer {
	return &Renderer{
		tracer: tracer,
		opts:   opts,
		logger: logger,
	}
}

func (r *Renderer) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}

// Render traces one frame into sink. On cancellation the tracer's error is
// returned with the hits counted so far and Pixels left at zero.
func (r *Renderer) Render(ctx context.Context, sink PixelSink) (Stats, error) {
	width, height := sink.Size()
	stats := Stats{
		ID:     uuid.NewString(),
		Scene:  r.opts.Name,
		Width:  width,
		Height: height,
	}
	if width == 0 || height == 0 {
		return stats, ErrEmptyFrame
	}

	r.logf("render %s: tracing %s at %dx%d", stats.ID, stats.Scene, width, height)
	start := time.Now()
	hits, err := r.tracer.Render(ctx, sink)
	stats.Hits = hits
	stats.Elapsed = time.Since(start)
	if err != nil {
		r.logf("render %s: stopped after %s: %v", stats.ID, stats.Elapsed, err)
		return stats, err
	}

	stats.Pixels = width * height
	r.logf("render %s: %d pixels, %d hits in %s", stats.ID, stats.Pixels, stats.Hits, stats.Elapsed)
	return stats, nil
}
