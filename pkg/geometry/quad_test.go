package geometry

import (
	"math"
	"testing"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// unit quad in the XY plane at z=0, corner at origin
func testQuad(t *testing.T) *Quad {
	t.Helper()
	return NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)
}

func TestQuadHitCenter(t *testing.T) {
	quad := testQuad(t)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 5), core.NewVec3(0, 0, -1))

	hit, isHit := quad.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit at quad center")
	}
	if math.Abs(hit.T-5.0) > 1e-9 {
		t.Errorf("t = %v, want 5", hit.T)
	}
	if math.Abs(hit.UV.X-0.5) > 1e-9 || math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("UV = %v, want (0.5, 0.5)", hit.UV)
	}
	if !hit.FrontFace {
		t.Error("expected front face for ray against the normal")
	}
	if !vecEquals(hit.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("normal = %v, want (0,0,1)", hit.Normal)
	}
}

func TestQuadUVCorners(t *testing.T) {
	quad := testQuad(t)

	cases := []struct {
		point core.Vec3
		u, v  float64
	}{
		{core.NewVec3(0.1, 0.1, 5), 0.1, 0.1},
		{core.NewVec3(0.9, 0.2, 5), 0.9, 0.2},
		{core.NewVec3(0.25, 0.75, 5), 0.25, 0.75},
	}
	for _, tc := range cases {
		ray := core.NewRay(tc.point, core.NewVec3(0, 0, -1))
		hit, isHit := quad.Hit(ray, 0.001, 1000.0)
		if !isHit {
			t.Fatalf("expected hit at %v", tc.point)
		}
		if math.Abs(hit.UV.X-tc.u) > 1e-9 || math.Abs(hit.UV.Y-tc.v) > 1e-9 {
			t.Errorf("UV at %v = %v, want (%v, %v)", tc.point, hit.UV, tc.u, tc.v)
		}
	}
}

func TestQuadMissOutsideBounds(t *testing.T) {
	quad := testQuad(t)

	outside := []core.Vec3{
		{X: 1.5, Y: 0.5, Z: 5},
		{X: -0.5, Y: 0.5, Z: 5},
		{X: 0.5, Y: 1.5, Z: 5},
		{X: 0.5, Y: -0.5, Z: 5},
	}
	for _, origin := range outside {
		ray := core.NewRay(origin, core.NewVec3(0, 0, -1))
		if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
			t.Errorf("expected miss for ray from %v (outside the quad)", origin)
		}
	}
}

func TestQuadParallelRay(t *testing.T) {
	quad := testQuad(t)

	// Parallel to the plane, off the plane: never hits
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0))
	if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("parallel ray should not hit")
	}

	// Origin on the plane, direction in the plane: must not divide by zero
	ray = core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(1, 0, 0))
	if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("in-plane ray should not hit")
	}

	// Origin on the plane, direction off the plane: handled without error
	ray = core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1))
	if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("ray leaving its own plane should miss (t below tMin)")
	}
}

func TestQuadBackFace(t *testing.T) {
	quad := testQuad(t)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, -5), core.NewVec3(0, 0, 1))

	hit, isHit := quad.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("expected hit from behind")
	}
	if hit.FrontFace {
		t.Error("hit from behind should be back face")
	}
	if !vecEquals(hit.Normal, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("flipped normal = %v, want (0,0,-1)", hit.Normal)
	}
}

func TestQuadBoundingBoxNotEmpty(t *testing.T) {
	quad := testQuad(t)
	bbox := quad.BoundingBox()

	if !bbox.IsValid() {
		t.Error("quad bbox invalid")
	}
	// Planar quad box must still have nonzero thickness for the slab test
	if bbox.Max.Z-bbox.Min.Z <= 0 {
		t.Error("quad bbox has zero thickness")
	}
}

func TestQuadValidate(t *testing.T) {
	if err := testQuad(t).Validate(); err != nil {
		t.Errorf("valid quad rejected: %v", err)
	}

	degenerate := NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(2, 0, 0), // collinear with u
		testMaterial(),
	)
	if err := degenerate.Validate(); err == nil {
		t.Error("degenerate quad accepted")
	}

	zeroEdge := NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial(),
	)
	if err := zeroEdge.Validate(); err == nil {
		t.Error("zero-edge quad accepted")
	}
}
