package scene

import (
	"fmt"

	"github.com/FabiMur/go-pathtracer/pkg/core"
	"github.com/FabiMur/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. After Preprocess
// succeeds the scene is immutable and safe to share across workers.
type Scene struct {
	Camera      *renderer.Camera
	Shapes      []core.Shape
	TopColor    core.Vec3 // Background gradient at +Y ray directions
	BottomColor core.Vec3 // Background gradient at -Y ray directions

	bvh *core.BVH
}

// Add appends shapes to the scene. Must not be called after Preprocess.
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Preprocess validates the scene and builds the acceleration structure.
// It must complete before any worker traces a ray; all construction errors
// surface here, never mid-render.
func (s *Scene) Preprocess() error {
	if s.Camera == nil {
		return fmt.Errorf("scene has no camera")
	}
	if len(s.Shapes) == 0 {
		return fmt.Errorf("scene has no shapes")
	}

	for i, shape := range s.Shapes {
		if validator, ok := shape.(core.Validator); ok {
			if err := validator.Validate(); err != nil {
				return fmt.Errorf("shape %d: %w", i, err)
			}
		}
		if !shape.BoundingBox().IsValid() {
			return fmt.Errorf("shape %d has an invalid bounding box", i)
		}
	}

	s.bvh = core.NewBVH(s.Shapes)
	return nil
}

// GetBVH returns the acceleration structure built by Preprocess
func (s *Scene) GetBVH() *core.BVH {
	return s.bvh
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// Background returns the radiance for rays that miss all geometry:
// a vertical gradient between BottomColor and TopColor
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return s.BottomColor.Multiply(1.0 - t).Add(s.TopColor.Multiply(t))
}
