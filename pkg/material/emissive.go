package material

import (
	"math/rand"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. By default it emits
// from the front face only; TwoSided panels emit from both.
type DiffuseLight struct {
	Emission ColorSource
	TwoSided bool
}

// NewDiffuseLight creates a front-face area light with a solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a front-face area light with a textured emission
func NewTexturedDiffuseLight(emission ColorSource) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter implements the Material interface. Lights never bounce rays.
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit returns the emitted radiance for a ray hitting this material
func (dl *DiffuseLight) Emit(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	if !hit.FrontFace && !dl.TwoSided {
		return core.NewVec3(0, 0, 0)
	}
	return dl.Emission.Evaluate(hit.UV, hit.Point)
}
