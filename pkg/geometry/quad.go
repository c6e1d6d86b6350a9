package geometry

import (
	"fmt"
	"math"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (computed from U x V)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal . point = d
	W        core.Vec3     // Cached vector for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()
	d := normal.Dot(corner)

	// w = n / (n . (u x v)), used to project hit points onto the edges
	var w core.Vec3
	if denom := normal.Dot(cross); denom != 0 {
		w = normal.Multiply(1.0 / denom)
	}

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        d,
		W:        w,
	}
}

// Validate reports construction errors before any ray is traced
func (q *Quad) Validate() error {
	if q.U.Cross(q.V).NearZero() {
		return fmt.Errorf("quad at %v has degenerate edges u=%v v=%v", q.Corner, q.U, q.V)
	}
	if q.Material == nil {
		return fmt.Errorf("quad at %v has no material", q.Corner)
	}
	return nil
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Project onto the quad's local axes; inside iff both in [0,1]
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad.
// Padded slightly so axis-aligned quads do not produce a zero-volume box
// that the slab test could miss at its exact boundary.
func (q *Quad) BoundingBox() core.AABB {
	corner2 := q.Corner.Add(q.U)
	corner3 := q.Corner.Add(q.V)
	corner4 := q.Corner.Add(q.U).Add(q.V)
	return core.NewAABBFromPoints(q.Corner, corner2, corner3, corner4).Expand(1e-4)
}
