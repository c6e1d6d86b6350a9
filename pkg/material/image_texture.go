package material

import (
	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// ImageTexture provides color from a decoded 2D image. The pixel buffer is
// owned by the texture and never written after construction.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], row 0 at the top
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at the given UV coordinates using
// nearest-neighbor filtering. UV is clamped to [0,1] and pixel indices are
// clamped to the image bounds, so out-of-range coordinates never fault.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) == 0 {
		// Loud debug color for an empty texture
		return core.NewVec3(1, 0, 1)
	}

	u := clamp01(uv.X)
	v := clamp01(uv.Y)

	// V=0 is the bottom of the texture; image rows grow downward
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
