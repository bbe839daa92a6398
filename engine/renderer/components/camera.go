package components

import (
	"github.com/spaghettifunk/prisma/engine/descriptor"
	"github.com/spaghettifunk/prisma/engine/math"
)

/**
 * @brief Represents the designer's single camera. It always looks at the
 * world origin, matching the preview behavior: settings.camera only moves
 * the eye and changes the field of view.
 */
type Camera struct {
	Position   math.Vec3
	FovDegrees float32

	isDirty    bool
	viewMatrix math.Mat4
}

const (
	defaultFovDegrees = 45.0
	nearClip          = 0.1
	farClip           = 1000.0
)

func NewCamera() *Camera {
	return &Camera{
		Position:   math.NewVec3(3, 5, -8),
		FovDegrees: defaultFovDegrees,
		isDirty:    true,
	}
}

// Apply adopts new camera settings from a reloaded settings file.
func (c *Camera) Apply(settings *descriptor.CameraSettings) {
	c.Position = settings.Translation
	c.FovDegrees = settings.FovDegrees
	c.isDirty = true
}

// View returns the look-at view matrix, recalculated when the position
// changed since the last call.
func (c *Camera) View() math.Mat4 {
	if c.isDirty {
		c.viewMatrix = math.NewMat4LookAt(c.Position, math.NewVec3Zero(), math.NewVec3Up())
		c.isDirty = false
	}
	return c.viewMatrix
}

// Projection returns the perspective projection for the given aspect ratio.
func (c *Camera) Projection(aspectRatio float32) math.Mat4 {
	return math.NewMat4Perspective(math.DegToRad(c.FovDegrees), aspectRatio, nearClip, farClip)
}
