package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/galaxy-generator/internal/input"
)

const minPolar = 1e-4

// OrbitControls swings a camera around its target from pointer drags and
// zooms with the wheel. With damping enabled the camera keeps easing for a
// few frames after the drag stops.
type OrbitControls struct {
	Camera *PerspectiveCamera

	EnableDamping bool
	// DampingFactor is the share of angular velocity removed each update.
	DampingFactor float32
	// RotateSpeed is radians per dragged pixel.
	RotateSpeed float32
	ZoomStep    float32
	MinDistance float32
	MaxDistance float32

	dragging     bool
	lastX, lastY int
	thetaDelta   float32
	phiDelta     float32
}

func NewOrbitControls(cam *PerspectiveCamera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		DampingFactor: 0.05,
		RotateSpeed:   0.005,
		ZoomStep:      0.95,
		MinDistance:   0,
		MaxDistance:   float32(math.Inf(1)),
	}
}

// Update consumes this tick's pointer state and moves the camera. It
// reports whether the camera position changed.
func (c *OrbitControls) Update(p input.Pointer) bool {
	x, y := p.CursorPosition()
	switch {
	case p.JustPressed():
		c.dragging = true
		c.lastX, c.lastY = x, y
	case c.dragging && !p.Pressed():
		c.dragging = false
	}

	if c.dragging {
		c.thetaDelta -= float32(x-c.lastX) * c.RotateSpeed
		c.phiDelta -= float32(y-c.lastY) * c.RotateSpeed
		c.lastX, c.lastY = x, y
	}

	scale := float32(1)
	if w := p.Wheel(); w != 0 {
		scale = float32(math.Pow(float64(c.ZoomStep), w))
	}

	if c.thetaDelta == 0 && c.phiDelta == 0 && scale == 1 {
		return false
	}

	offset := c.Camera.Position.Sub(c.Camera.Target)
	radius := offset.Len()
	if radius == 0 {
		return false
	}
	theta := float32(math.Atan2(float64(offset.X()), float64(offset.Z())))
	phi := float32(math.Acos(float64(mgl32.Clamp(offset.Y()/radius, -1, 1))))

	theta += c.thetaDelta
	phi = mgl32.Clamp(phi+c.phiDelta, minPolar, math.Pi-minPolar)
	radius = mgl32.Clamp(radius*scale, c.MinDistance, c.MaxDistance)

	sinPhi := float32(math.Sin(float64(phi)))
	next := c.Camera.Target.Add(mgl32.Vec3{
		radius * sinPhi * float32(math.Sin(float64(theta))),
		radius * float32(math.Cos(float64(phi))),
		radius * sinPhi * float32(math.Cos(float64(theta))),
	})

	if c.EnableDamping {
		c.thetaDelta *= 1 - c.DampingFactor
		c.phiDelta *= 1 - c.DampingFactor
		if abs32(c.thetaDelta) < 1e-6 {
			c.thetaDelta = 0
		}
		if abs32(c.phiDelta) < 1e-6 {
			c.phiDelta = 0
		}
	} else {
		c.thetaDelta = 0
		c.phiDelta = 0
	}

	c.Camera.Position = next
	return true
}

// Dragging reports whether a drag started on the controls is in progress.
func (c *OrbitControls) Dragging() bool {
	return c.dragging
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
