package scene

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveCamera looks from Position toward Target.
type PerspectiveCamera struct {
	// Fov is the vertical field of view in degrees.
	Fov    float32
	Aspect float32
	Near   float32
	Far    float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func NewPerspectiveCamera(fov, aspect, near, far float32) *PerspectiveCamera {
	return &PerspectiveCamera{
		Fov:    fov,
		Aspect: aspect,
		Near:   near,
		Far:    far,
		Up:     mgl32.Vec3{0, 1, 0},
	}
}

func (c *PerspectiveCamera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

func (c *PerspectiveCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ViewProjection returns Projection * View.
func (c *PerspectiveCamera) ViewProjection() mgl32.Mat4 {
	return c.Projection().Mul4(c.View())
}
