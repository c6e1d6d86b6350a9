package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/FabiMur/go-pathtracer/pkg/integrator"
	"github.com/FabiMur/go-pathtracer/pkg/renderer"
	"github.com/FabiMur/go-pathtracer/pkg/scene"
)

// RenderFrame renders a single frame of the selected scene and writes it
// out as a PNG file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		TileSize:        ctx.Int("tile-size"),
		NumWorkers:      ctx.Int("workers"),
		Seed:            ctx.Int64("seed"),
	}

	sc, err := buildScene(ctx.String("scene"), ctx.String("texture"))
	if err != nil {
		return err
	}
	if err := sc.Preprocess(); err != nil {
		return fmt.Errorf("scene validation failed: %w", err)
	}

	r, err := renderer.NewRenderer(sc, integrator.NewPathTracer(ctx.Int("max-depth")), config)
	if err != nil {
		return err
	}

	img, stats, err := r.Render()
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	logger.Infof("wrote %s", outFile)
	displayFrameStats(stats)

	return nil
}

func buildScene(name, texturePath string) (*scene.Scene, error) {
	switch name {
	case "cornell":
		return scene.NewCornellScene(texturePath)
	case "spheres":
		return scene.NewSpheresScene()
	default:
		return nil, fmt.Errorf("unknown scene %q (available: cornell, spheres)", name)
	}
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Scrubbed", "Tiles", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.ScrubbedSamples),
		fmt.Sprintf("%d", stats.NumTiles),
		fmt.Sprintf("%d", stats.NumWorkers),
		fmt.Sprintf("%s", stats.RenderTime),
	})

	table.Render()
	logger.Infof("frame statistics\n%s", buf.String())
}
