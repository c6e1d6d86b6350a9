package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// ImageData holds a decoded image as a row-major Vec3 array, row 0 at the
// top, with linear color values.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes a PNG or JPEG file into linear-color pixel data
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is auto-detected from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image %s has zero size", filename)
	}

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]. Files store gamma-encoded
			// values, so square to get back to linear light.
			pixels[y*width+x] = core.NewVec3(
				srgbToLinear(float64(r)/65535.0),
				srgbToLinear(float64(g)/65535.0),
				srgbToLinear(float64(b)/65535.0),
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// srgbToLinear undoes the gamma 2.0 encoding applied when writing output
func srgbToLinear(v float64) float64 {
	return v * v
}
