package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

// CameraConfig contains the parameters the scene author resolves
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // View-up direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance to the focal plane; 0 = |LookFrom-LookAt|
}

// Camera generates primary rays with a thin-lens depth of field model.
// Immutable after construction; safe for concurrent use.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Orthonormal camera basis
	lensRadius      float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("camera vfov %v out of range (0, 180)", config.VFov)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio %v must be positive", config.AspectRatio)
	}
	if config.LookFrom == config.LookAt {
		return nil, fmt.Errorf("camera look-from and look-at coincide at %v", config.LookFrom)
	}

	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	if u.NearZero() {
		return nil, fmt.Errorf("camera up %v is parallel to the view direction", config.Up)
	}
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

// GetRay generates a ray for screen coordinates (s, t) in [0,1]x[0,1],
// already jittered by the caller. s grows to the right, t grows upward.
// A nonzero lens radius offsets the origin on the lens disk; the offset is
// counter-applied in the direction so the focal plane stays sharp.
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
		return core.NewRay(
			c.origin.Add(offset),
			c.lowerLeftCorner.
				Add(c.horizontal.Multiply(s)).
				Add(c.vertical.Multiply(t)).
				Subtract(c.origin).
				Subtract(offset),
		)
	}

	return core.NewRay(
		c.origin,
		c.lowerLeftCorner.
			Add(c.horizontal.Multiply(s)).
			Add(c.vertical.Multiply(t)).
			Subtract(c.origin),
	)
}
