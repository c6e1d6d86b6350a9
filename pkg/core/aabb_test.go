package core

import (
	"testing"
)

func TestAABBHit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
	}{
		{"straight through center", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), false},
		{"misses to the side", NewRay(NewVec3(5, 0, -5), NewVec3(0, 0, 1)), false},
		{"diagonal through corner region", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), true},
		{"origin inside box", NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)), true},
		{"parallel inside slab", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1).Add(NewVec3(0, 0, 0))), true},
		{"parallel outside slab", NewRay(NewVec3(0, 5, -5), NewVec3(0, 0, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, 1000.0); got != tt.wantHit {
				t.Errorf("Hit() = %v, want %v", got, tt.wantHit)
			}
		})
	}
}

func TestAABBHitDegenerate(t *testing.T) {
	// Zero-width box from a planar primitive, still a valid AABB
	planar := NewAABB(NewVec3(-1, 0, -1), NewVec3(1, 0, 1))
	if !planar.IsValid() {
		t.Fatal("planar AABB should be valid")
	}

	down := NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0))
	if !planar.Hit(down, 0.001, 1000.0) {
		t.Error("ray through planar box should hit")
	}

	parallel := NewRay(NewVec3(0, 1, 0), NewVec3(1, 0, 0))
	if planar.Hit(parallel, 0.001, 1000.0) {
		t.Error("parallel ray above planar box should miss")
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(2, -1, 0.5), NewVec3(3, 0.5, 2))

	union := a.Union(b)
	if !vecEquals(union.Min, NewVec3(0, -1, 0), 1e-12) {
		t.Errorf("union min = %v", union.Min)
	}
	if !vecEquals(union.Max, NewVec3(3, 1, 2), 1e-12) {
		t.Errorf("union max = %v", union.Max)
	}

	// Union must contain both inputs
	if !union.Hit(NewRay(NewVec3(0.5, 0.5, -5), NewVec3(0, 0, 1)), 0.001, 1000) {
		t.Error("union should contain first box")
	}
	if !union.Hit(NewRay(NewVec3(2.5, 0, -5), NewVec3(0, 0, 1)), 0.001, 1000) {
		t.Error("union should contain second box")
	}
}

func TestAABBLongestAxis(t *testing.T) {
	tests := []struct {
		box  AABB
		want int
	}{
		{NewAABB(NewVec3(0, 0, 0), NewVec3(10, 1, 1)), 0},
		{NewAABB(NewVec3(0, 0, 0), NewVec3(1, 10, 1)), 1},
		{NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 10)), 2},
	}
	for _, tt := range tests {
		if got := tt.box.LongestAxis(); got != tt.want {
			t.Errorf("LongestAxis(%v) = %d, want %d", tt.box, got, tt.want)
		}
	}
}

func TestAABBCenterAndExpand(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 4, 6))
	if got := box.Center(); !vecEquals(got, NewVec3(1, 2, 3), 1e-12) {
		t.Errorf("Center = %v", got)
	}

	expanded := box.Expand(1)
	if !vecEquals(expanded.Min, NewVec3(-1, -1, -1), 1e-12) ||
		!vecEquals(expanded.Max, NewVec3(3, 5, 7), 1e-12) {
		t.Errorf("Expand = %v", expanded)
	}
}
