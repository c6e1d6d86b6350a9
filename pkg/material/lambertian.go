package material

import (
	"math/rand"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo ColorSource // Base color/reflectance (solid or textured)
}

// NewLambertian creates a new lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with a texture
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements cosine-weighted diffuse scattering. With this sampling
// distribution the Monte Carlo estimator reduces to albedo * incoming light,
// so the attenuation is the plain texture color. Lambertian never absorbs.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := core.RandomCosineDirection(hit.Normal, random)

	// Degenerate sample along the surface: fall back to the normal
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
