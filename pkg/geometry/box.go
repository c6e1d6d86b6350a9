package geometry

import (
	"fmt"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// Box represents a rectangular box made of 6 quads, optionally rotated
// around the Y axis and translated into place.
type Box struct {
	MinCorner core.Vec3     // Minimum corner before rotation/translation
	MaxCorner core.Vec3     // Maximum corner before rotation/translation
	AngleY    float64       // Rotation around the Y axis in radians
	Offset    core.Vec3     // Translation applied after rotation
	Material  core.Material // Material for all faces

	faces [6]*Quad
	bbox  core.AABB
}

// NewBox creates an axis-aligned box spanning min..max, rotated by angleY
// radians around the Y axis and translated by offset.
func NewBox(min, max core.Vec3, angleY float64, offset core.Vec3, material core.Material) *Box {
	b := &Box{
		MinCorner: min,
		MaxCorner: max,
		AngleY:    angleY,
		Offset:    offset,
		Material:  material,
	}
	b.generateFaces()
	return b
}

// NewAxisAlignedBox creates a box with no rotation or translation
func NewAxisAlignedBox(min, max core.Vec3, material core.Material) *Box {
	return NewBox(min, max, 0, core.NewVec3(0, 0, 0), material)
}

// Validate reports construction errors before any ray is traced
func (b *Box) Validate() error {
	size := b.MaxCorner.Subtract(b.MinCorner)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return fmt.Errorf("box %v..%v has non-positive extent", b.MinCorner, b.MaxCorner)
	}
	if b.Material == nil {
		return fmt.Errorf("box %v..%v has no material", b.MinCorner, b.MaxCorner)
	}
	return nil
}

// generateFaces creates the 6 quad faces of the box
func (b *Box) generateFaces() {
	// The 8 corners of the untransformed box
	corners := [8]core.Vec3{
		core.NewVec3(b.MinCorner.X, b.MinCorner.Y, b.MinCorner.Z), // 0: left-bottom-back
		core.NewVec3(b.MaxCorner.X, b.MinCorner.Y, b.MinCorner.Z), // 1: right-bottom-back
		core.NewVec3(b.MaxCorner.X, b.MaxCorner.Y, b.MinCorner.Z), // 2: right-top-back
		core.NewVec3(b.MinCorner.X, b.MaxCorner.Y, b.MinCorner.Z), // 3: left-top-back
		core.NewVec3(b.MinCorner.X, b.MinCorner.Y, b.MaxCorner.Z), // 4: left-bottom-front
		core.NewVec3(b.MaxCorner.X, b.MinCorner.Y, b.MaxCorner.Z), // 5: right-bottom-front
		core.NewVec3(b.MaxCorner.X, b.MaxCorner.Y, b.MaxCorner.Z), // 6: right-top-front
		core.NewVec3(b.MinCorner.X, b.MaxCorner.Y, b.MaxCorner.Z), // 7: left-top-front
	}

	for i := range corners {
		corners[i] = corners[i].RotateY(b.AngleY).Add(b.Offset)
	}

	// Front face (Z+): 4-5-6-7
	b.faces[0] = NewQuad(corners[4], corners[5].Subtract(corners[4]), corners[7].Subtract(corners[4]), b.Material)
	// Back face (Z-): 1-0-3-2
	b.faces[1] = NewQuad(corners[1], corners[0].Subtract(corners[1]), corners[2].Subtract(corners[1]), b.Material)
	// Left face (X-): 0-4-7-3
	b.faces[2] = NewQuad(corners[0], corners[4].Subtract(corners[0]), corners[3].Subtract(corners[0]), b.Material)
	// Right face (X+): 5-1-2-6
	b.faces[3] = NewQuad(corners[5], corners[1].Subtract(corners[5]), corners[6].Subtract(corners[5]), b.Material)
	// Top face (Y+): 3-2-6-7
	b.faces[4] = NewQuad(corners[3], corners[2].Subtract(corners[3]), corners[7].Subtract(corners[3]), b.Material)
	// Bottom face (Y-): 0-1-5-4
	b.faces[5] = NewQuad(corners[0], corners[1].Subtract(corners[0]), corners[4].Subtract(corners[0]), b.Material)

	bbox := b.faces[0].BoundingBox()
	for _, face := range b.faces[1:] {
		bbox = bbox.Union(face.BoundingBox())
	}
	b.bbox = bbox
}

// Hit tests if a ray intersects any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
