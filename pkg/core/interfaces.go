package core

import "math/rand"

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with t in (tMin, tMax), or false
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
	BoundingBox() AABB
}

// Validator interface for shapes that can report construction errors
type Validator interface {
	Validate() error
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and attenuation, or false if the
	// material absorbed the ray
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emit(rayIn Ray, hit HitRecord) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface parametric coordinates
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Scene is the read-only view of a fully built scene shared by all workers
type Scene interface {
	// GetBVH returns the acceleration structure over all scene shapes
	GetBVH() *BVH
	// Background returns the radiance for a ray that missed all geometry
	Background(ray Ray) Vec3
}
