package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"time"

	"github.com/FabiMur/go-pathtracer/log"
	"github.com/FabiMur/go-pathtracer/pkg/core"
)

var logger = log.New("renderer")

// Scene is what the renderer needs from a fully built scene: the shared
// read-only view the integrator consumes plus the camera
type Scene interface {
	core.Scene
	GetCamera() *Camera
}

// Integrator turns a primary ray into a radiance estimate
type Integrator interface {
	RayColor(ray core.Ray, scene core.Scene, random *rand.Rand) core.Vec3
}

// Config contains the resolved render configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Independent jittered rays averaged per pixel
	TileSize        int   // Edge length of square work tiles
	NumWorkers      int   // Worker goroutines; 0 = one per CPU
	Seed            int64 // Base seed for per-tile generators
}

// DefaultConfig returns sensible default values
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 100,
		TileSize:        64,
		NumWorkers:      0,
	}
}

// Validate reports configuration errors before any work is dispatched
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image dimensions %dx%d must be positive", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel %d must be positive", c.SamplesPerPixel)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size %d must be positive", c.TileSize)
	}
	return nil
}

// Renderer drives a single batch render: it partitions the image into
// tiles, fans them out across a worker pool, and assembles the framebuffer.
type Renderer struct {
	scene      Scene
	integrator Integrator
	config     Config
}

// NewRenderer creates a renderer for the given scene and integrator
func NewRenderer(scene Scene, integrator Integrator, config Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		scene:      scene,
		integrator: integrator,
		config:     config,
	}, nil
}

// Render renders the scene and returns the framebuffer as an RGBA image.
// Row 0 of the image is the top of the frame (camera t=1). A task failure
// aborts the whole render: no partial image is ever returned as complete.
func (r *Renderer) Render() (*image.RGBA, RenderStats, error) {
	startTime := time.Now()

	// The scene must be fully built before any worker starts; tiles only
	// ever read it from here on
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize, r.config.Seed)

	pixelStats := make([][]PixelStats, r.config.Height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, r.config.Width)
	}

	pool := NewWorkerPool(r.config.NumWorkers, len(tiles), r.renderTile)
	pool.Start()

	logger.Infof("rendering %dx%d, %d spp, %d tiles on %d workers",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, len(tiles), pool.NumWorkers())

	for taskID, tile := range tiles {
		pool.Submit(TileTask{
			Tile:       tile,
			TaskID:     taskID,
			PixelStats: pixelStats,
		})
	}

	stats := RenderStats{
		TotalPixels: r.config.Width * r.config.Height,
		NumWorkers:  pool.NumWorkers(),
		NumTiles:    len(tiles),
	}

	var renderErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := pool.Result()
		if !ok {
			renderErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Err != nil {
			renderErr = result.Err
			break
		}
		stats.TotalSamples += result.Samples
		stats.ScrubbedSamples += result.Scrubbed
	}
	pool.Stop()

	if renderErr != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", renderErr)
	}

	img := r.assembleImage(pixelStats)
	stats.RenderTime = time.Since(startTime)

	logger.Infof("render finished in %v (%.1f samples/pixel)",
		stats.RenderTime, stats.SamplesPerPixel())

	return img, stats, nil
}

// renderTile renders all pixels within one tile's bounds. The tile's own
// generator drives every random decision, so output is reproducible for a
// fixed seed regardless of worker count or scheduling order.
func (r *Renderer) renderTile(task TileTask) (samples, scrubbed int) {
	camera := r.scene.GetCamera()
	bounds := task.Tile.Bounds
	random := task.Tile.Random

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ps := &task.PixelStats[j][i]

			for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
				// Pixel row 0 is the top of the image; flip to camera t
				s := (float64(i) + random.Float64()) / float64(r.config.Width)
				t := (float64(r.config.Height-1-j) + random.Float64()) / float64(r.config.Height)

				ray := camera.GetRay(s, t, random)
				ps.AddSample(r.integrator.RayColor(ray, r.scene, random))
			}

			samples += ps.SampleCount
			scrubbed += ps.Scrubbed
		}
	}

	return samples, scrubbed
}

// assembleImage quantizes the accumulated pixel stats into an RGBA image
func (r *Renderer) assembleImage(pixelStats [][]PixelStats) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))

	for y := 0; y < r.config.Height; y++ {
		for x := 0; x < r.config.Width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].Color()))
		}
	}

	return img
}

// vec3ToColor converts a linear color to 8-bit RGBA with gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
