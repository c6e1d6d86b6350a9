package material

import (
	"math"
	"math/rand"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts or reflects the incoming ray. Total internal reflection
// forces a reflection; otherwise the Schlick reflectance is used as the
// reflection probability. Clear glass absorbs nothing, so attenuation is
// always (1,1,1).
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // entering the material
	} else {
		refractionRatio = d.RefractiveIndex // exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
