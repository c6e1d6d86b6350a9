package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/FabiMur/go-pathtracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame of a built-in scene",
			Description: `
Render one frame of the selected scene with the Monte Carlo path tracer
and write it out as a PNG file. Renders are deterministic for a fixed
seed regardless of the worker count.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: 50,
					Usage: "maximum path length in bounces",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 64,
					Usage: "edge length of square work tiles",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "worker goroutines (0 = one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "base seed for per-tile sampling",
				},
				cli.StringFlag{
					Name:  "scene",
					Value: "cornell",
					Usage: "scene to render (cornell, spheres)",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: "",
					Usage: "image file for the textured sphere in the cornell scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
	}

	app.Run(os.Args)
}
