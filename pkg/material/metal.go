package material

import (
	"math/rand"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo ColorSource // Metal tint
	Fuzz   float64     // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with a solid color
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzz)
}

// NewTexturedMetal creates a new metal material with a textured tint
func NewTexturedMetal(albedo ColorSource, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray about the normal, perturbed by the fuzz factor.
// A perturbed direction ending up below the surface counts as absorption.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)

	if m.Fuzz > 0 {
		perturbation := core.RandomUnitVector(random).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
