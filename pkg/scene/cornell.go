package scene

import (
	"math"
	"math/rand"

	"github.com/FabiMur/go-pathtracer/log"
	"github.com/FabiMur/go-pathtracer/pkg/core"
	"github.com/FabiMur/go-pathtracer/pkg/geometry"
	"github.com/FabiMur/go-pathtracer/pkg/loaders"
	"github.com/FabiMur/go-pathtracer/pkg/material"
	"github.com/FabiMur/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Cornell box dimensions (standard 555x555x555 units)
const cornellSize = 555.0

// NewCornellScene creates the Cornell box scene: colored walls, two area
// lights, a glass box, a metal box, mirror and glass spheres, a textured
// center sphere, and a field of small random spheres on the floor.
// texturePath names an optional image for the center sphere; when it
// cannot be loaded, a checker pattern stands in.
func NewCornellScene(texturePath string) (*Scene, error) {
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
		Aperture:    0.0, // No depth of field inside the box
	})
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:      camera,
		TopColor:    core.NewVec3(0, 0, 0), // Closed box, black background
		BottomColor: core.NewVec3(0, 0, 0),
	}

	white := material.NewLambertian(core.NewVec3(1.0, 1.0, 1.0))
	red := material.NewLambertian(core.NewVec3(0.80, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	blue := material.NewLambertian(core.NewVec3(0.10, 0.20, 0.80))

	// Left wall (green) - YZ plane at x=555
	s.Add(geometry.NewQuad(
		core.NewVec3(cornellSize, 0, 0),
		core.NewVec3(0, cornellSize, 0),
		core.NewVec3(0, 0, cornellSize),
		green,
	))
	// Right wall (red) - YZ plane at x=0
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, cornellSize, 0),
		core.NewVec3(0, 0, cornellSize),
		red,
	))
	// Back wall (blue) - XY plane at z=555
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, cornellSize),
		core.NewVec3(cornellSize, 0, 0),
		core.NewVec3(0, cornellSize, 0),
		blue,
	))
	// Floor (white) - XZ plane at y=0
	s.Add(geometry.NewQuad(
		core.NewVec3(0, 0, 0),
		core.NewVec3(cornellSize, 0, 0),
		core.NewVec3(0, 0, cornellSize),
		white,
	))
	// Ceiling (white) - XZ plane at y=555
	s.Add(geometry.NewQuad(
		core.NewVec3(0, cornellSize, 0),
		core.NewVec3(cornellSize, 0, 0),
		core.NewVec3(0, 0, cornellSize),
		white,
	))

	// Ceiling light, facing down into the box
	s.Add(geometry.NewQuad(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		material.NewDiffuseLight(core.NewVec3(17, 17, 17)),
	))
	// Dim blue side light on the back wall, facing the camera
	s.Add(geometry.NewQuad(
		core.NewVec3(40, 300, 550),
		core.NewVec3(0, 100, 0),
		core.NewVec3(100, 0, 0),
		material.NewDiffuseLight(core.NewVec3(0.5, 0.5, 1.0)),
	))

	// Textured sphere in the center of the floor
	s.Add(geometry.NewSphere(
		core.NewVec3(278, 50, 278), 50,
		material.NewTexturedLambertian(centerSphereTexture(texturePath)),
	))

	// Tall glass box, rotated and pushed toward the back
	s.Add(geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165),
		18*math.Pi/180, core.NewVec3(260, 0, 295),
		material.NewDielectric(1.5),
	))
	// Short brushed-metal box in front
	s.Add(geometry.NewBox(
		core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165),
		-15*math.Pi/180, core.NewVec3(80, 0, 200),
		material.NewMetal(core.NewVec3(0.80, 0.80, 0.85), 0.1),
	))

	// Glass and mirror spheres
	s.Add(geometry.NewSphere(core.NewVec3(420, 90, 140), 90, material.NewDielectric(1.5)))
	s.Add(geometry.NewSphere(core.NewVec3(380, 60, 420), 60, material.NewMetal(core.NewVec3(1, 1, 1), 0.0)))

	s.Add(randomSphereField()...)

	return s, nil
}

// centerSphereTexture loads the image texture for the center sphere,
// falling back to a checker when the asset is unavailable
func centerSphereTexture(texturePath string) material.ColorSource {
	if texturePath != "" {
		img, err := loaders.LoadImage(texturePath)
		if err == nil {
			return material.NewImageTexture(img.Width, img.Height, img.Pixels)
		}
		logger.Warningf("could not load texture %q, using checker: %v", texturePath, err)
	}
	return material.NewCheckerColors(20.0,
		core.NewVec3(0.9, 0.9, 0.9),
		core.NewVec3(0.1, 0.3, 0.6),
	)
}

// randomSphereField scatters small matte, metal and glass spheres across a
// central strip of the floor, avoiding the large objects. The generator is
// fixed-seeded so the scene is identical on every run.
func randomSphereField() []core.Shape {
	random := rand.New(rand.NewSource(1))

	avoid := []core.Vec3{
		{X: 420, Y: 90, Z: 140}, // glass sphere
		{X: 380, Y: 60, Z: 420}, // mirror sphere
		{X: 278, Y: 50, Z: 278}, // textured sphere
	}

	var shapes []core.Shape
	for gx := 0; gx < 10; gx++ {
		for gz := 0; gz < 8; gz++ {
			cx := 40.0 + float64(gx)*45.0 + 15.0*random.Float64()
			cz := 60.0 + float64(gz)*55.0 + 15.0*random.Float64()
			r := 8.0 + 6.0*random.Float64()
			center := core.NewVec3(cx, r, cz) // resting on the floor

			tooClose := false
			for _, a := range avoid {
				if center.Subtract(a).Length() < 80.0 {
					tooClose = true
					break
				}
			}
			if tooClose {
				continue
			}

			var mat core.Material
			switch choose := random.Float64(); {
			case choose < 0.6:
				mat = material.NewLambertian(core.NewVec3(
					0.2+0.8*random.Float64(),
					0.2+0.8*random.Float64(),
					0.2+0.8*random.Float64(),
				))
			case choose < 0.85:
				mat = material.NewMetal(core.NewVec3(
					0.6+0.4*random.Float64(),
					0.6+0.4*random.Float64(),
					0.6+0.4*random.Float64(),
				), 0.1)
			default:
				mat = material.NewDielectric(1.5)
			}

			shapes = append(shapes, geometry.NewSphere(center, r, mat))
		}
	}

	return shapes
}
