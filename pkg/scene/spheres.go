package scene

import (
	"github.com/FabiMur/go-pathtracer/pkg/core"
	"github.com/FabiMur/go-pathtracer/pkg/geometry"
	"github.com/FabiMur/go-pathtracer/pkg/material"
	"github.com/FabiMur/go-pathtracer/pkg/renderer"
)

// NewSpheresScene creates an open-sky demo scene: a checkered ground plane
// with one matte, one glass and one metal sphere, shot with a wide aperture
// so the depth of field is visible.
func NewSpheresScene() (*Scene, error) {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)
	camera, err := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.3,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	})
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:      camera,
		TopColor:    core.NewVec3(0.5, 0.7, 1.0),
		BottomColor: core.NewVec3(1.0, 1.0, 1.0),
	}

	ground := material.NewTexturedLambertian(material.NewCheckerColors(3.0,
		core.NewVec3(0.8, 0.8, 0.8),
		core.NewVec3(0.2, 0.3, 0.1),
	))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.05)),
	)

	return s, nil
}
