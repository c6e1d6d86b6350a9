package material

import (
	"testing"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// 2x2 texture: top row red, green; bottom row blue, white
func testTexture() *ImageTexture {
	return NewImageTexture(2, 2, []core.Vec3{
		{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1},
	})
}

func TestImageTextureLookup(t *testing.T) {
	tex := testTexture()
	point := core.NewVec3(0, 0, 0)

	// V=1 maps to the top row, V=0 to the bottom row
	cases := []struct {
		uv   core.Vec2
		want core.Vec3
	}{
		{core.NewVec2(0.25, 0.75), core.NewVec3(1, 0, 0)},
		{core.NewVec2(0.75, 0.75), core.NewVec3(0, 1, 0)},
		{core.NewVec2(0.25, 0.25), core.NewVec3(0, 0, 1)},
		{core.NewVec2(0.75, 0.25), core.NewVec3(1, 1, 1)},
	}
	for _, tc := range cases {
		if got := tex.Evaluate(tc.uv, point); got != tc.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tc.uv, got, tc.want)
		}
	}
}

func TestImageTextureClampsUV(t *testing.T) {
	tex := testTexture()
	point := core.NewVec3(0, 0, 0)

	// Out-of-range coordinates clamp to the edges, never fault
	cases := []struct {
		uv   core.Vec2
		want core.Vec3
	}{
		{core.NewVec2(-5, 2), core.NewVec3(1, 0, 0)},   // clamps to (0,1): top-left
		{core.NewVec2(2, 2), core.NewVec3(0, 1, 0)},    // clamps to (1,1): top-right
		{core.NewVec2(-1, -1), core.NewVec3(0, 0, 1)},  // clamps to (0,0): bottom-left
		{core.NewVec2(1.5, -3), core.NewVec3(1, 1, 1)}, // clamps to (1,0): bottom-right
	}
	for _, tc := range cases {
		if got := tex.Evaluate(tc.uv, point); got != tc.want {
			t.Errorf("Evaluate(%v) = %v, want %v", tc.uv, got, tc.want)
		}
	}
}

func TestImageTextureEmpty(t *testing.T) {
	empty := NewImageTexture(0, 0, nil)
	// Must not panic; returns the debug color
	got := empty.Evaluate(core.NewVec2(0.5, 0.5), core.NewVec3(0, 0, 0))
	if got != core.NewVec3(1, 0, 1) {
		t.Errorf("empty texture = %v, want debug magenta", got)
	}
}

func TestCheckerPattern(t *testing.T) {
	checker := NewCheckerColors(2.0, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	uv := core.NewVec2(0, 0)

	// Adjacent cells alternate along each axis
	if got := checker.Evaluate(uv, core.NewVec3(1, 1, 1)); got != core.NewVec3(1, 1, 1) {
		t.Errorf("cell (0,0,0) = %v, want even color", got)
	}
	if got := checker.Evaluate(uv, core.NewVec3(3, 1, 1)); got != core.NewVec3(0, 0, 0) {
		t.Errorf("cell (1,0,0) = %v, want odd color", got)
	}
	if got := checker.Evaluate(uv, core.NewVec3(3, 3, 1)); got != core.NewVec3(1, 1, 1) {
		t.Errorf("cell (1,1,0) = %v, want even color", got)
	}

	// Negative coordinates keep alternating without a seam double-cell
	if got := checker.Evaluate(uv, core.NewVec3(-1, 1, 1)); got != core.NewVec3(0, 0, 0) {
		t.Errorf("cell (-1,0,0) = %v, want odd color", got)
	}
}
