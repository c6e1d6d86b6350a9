package material

import (
	"math"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials.
// Lookups are pure: the same (uv, point) always yields the same color.
type ColorSource interface {
	// Evaluate returns the color at the given UV coordinates and 3D point.
	// UV drives image textures, the point drives procedural textures.
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker provides a 3D checkerboard pattern alternating two color sources
type Checker struct {
	Odd   ColorSource
	Even  ColorSource
	Scale float64 // Edge length of one check in world units
}

// NewChecker creates a checker pattern from two color sources
func NewChecker(scale float64, even, odd ColorSource) *Checker {
	return &Checker{Odd: odd, Even: even, Scale: scale}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Evaluate alternates the two sources based on the integer lattice cell
// containing the point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	inv := 1.0 / c.Scale
	x := int(math.Floor(point.X * inv))
	y := int(math.Floor(point.Y * inv))
	z := int(math.Floor(point.Z * inv))

	if (x+y+z)%2 == 0 {
		return c.Even.Evaluate(uv, point)
	}
	return c.Odd.Evaluate(uv, point)
}
