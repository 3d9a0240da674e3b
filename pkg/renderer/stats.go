package renderer

import "time"

// Stats summarises one finished render
type Stats struct {
	ID      string        // Render id, unique per Render call
	Scene   string        // Name of the rendered scene
	Width   int           // Frame width in pixels
	Height  int           // Frame height in pixels
	Pixels  int           // Pixels traced
	Hits    int           // Primary rays that hit a shape
	Elapsed time.Duration // Wall time spent tracing
}

// Coverage returns the fraction of primary rays that hit something
func (s Stats) Coverage() float64 {
	if s.Pixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Pixels)
}

// PixelsPerSecond is the tracing throughput
func (s Stats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Pixels) / s.Elapsed.Seconds()
}
