package integrator

import (
	"math/rand"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// Epsilon for intersection tests: keeps tMin strictly positive so rays do
// not re-hit the surface they just left (shadow acne)
const tMinEpsilon = 1e-3

// Far clip for intersection queries
const tMaxInfinity = 1e9

// PathTracer computes radiance along rays by recursively sampling material
// scattering and emission up to a depth bound.
type PathTracer struct {
	MaxDepth int // Maximum ray bounce depth
}

// NewPathTracer creates a path tracing integrator
func NewPathTracer(maxDepth int) *PathTracer {
	return &PathTracer{MaxDepth: maxDepth}
}

// RayColor computes the color for a single ray.
// Reaching the depth bound truncates the estimate to black; that loses a
// small amount of energy but bounds the recursion.
func (pt *PathTracer) RayColor(ray core.Ray, scene core.Scene, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, scene, random, pt.MaxDepth)
}

func (pt *PathTracer) rayColor(ray core.Ray, scene core.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := scene.GetBVH().Hit(ray, tMinEpsilon, tMaxInfinity)
	if !isHit {
		return scene.Background(ray)
	}

	emitted := pt.emittedLight(ray, hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		// Absorbed or non-scattering surface: only its own emission counts
		return emitted
	}

	incoming := pt.rayColor(scatter.Scattered, scene, random, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// emittedLight returns the emitted light from a material if it is emissive
func (pt *PathTracer) emittedLight(ray core.Ray, hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emit(ray, *hit)
	}
	return core.Vec3{}
}
