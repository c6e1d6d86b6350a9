package renderer

import (
	"time"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	ScrubbedSamples int           // Samples replaced with black due to NaN/Inf
	NumWorkers      int           // Worker goroutines used
	NumTiles        int           // Tiles dispatched
	RenderTime      time.Duration // Wall-clock render duration
}

// SamplesPerPixel returns the average samples per pixel
func (s RenderStats) SamplesPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// PixelStats accumulates color samples for a single pixel. Each pixel is
// owned by exactly one tile during the render, so no locking is needed.
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken
	Scrubbed    int       // Degenerate samples replaced with black
}

// AddSample adds a new color sample. Non-finite colors from degenerate
// numeric cases are replaced with black here, at the accumulation boundary,
// and never reach the output image.
func (ps *PixelStats) AddSample(color core.Vec3) {
	if !color.IsFinite() {
		color = core.Vec3{}
		ps.Scrubbed++
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// Color returns the current average color for this pixel
func (ps *PixelStats) Color() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
