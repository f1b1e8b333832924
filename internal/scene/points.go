package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// Geometry carries the per-point attribute buffers of a Points object.
type Geometry struct {
	Positions []float32
	Colors    []float32

	disposed bool
}

func NewGeometry(positions, colors []float32) *Geometry {
	return &Geometry{Positions: positions, Colors: colors}
}

// Count returns the number of points in the position buffer.
func (g *Geometry) Count() int {
	return len(g.Positions) / 3
}

// Dispose drops the attribute buffers. Calling it again is a no-op.
func (g *Geometry) Dispose() {
	g.Positions = nil
	g.Colors = nil
	g.disposed = true
}

func (g *Geometry) Disposed() bool { return g.disposed }

// Material describes how points are rasterized.
type Material struct {
	// Size is the point size in world units when SizeAttenuation is set,
	// in pixels otherwise.
	Size            float32
	SizeAttenuation bool
	DepthWrite      bool
	VertexColors    bool
	Blend           ebiten.Blend
	// Map is the sprite drawn for every point. It is shared between
	// materials and is not released by Dispose.
	Map *ebiten.Image

	disposed bool
}

// NewPointsMaterial returns the additive, depth-write-off, vertex-colored
// material used for particle sprites.
func NewPointsMaterial(size float32, sprite *ebiten.Image) *Material {
	return &Material{
		Size:            size,
		SizeAttenuation: true,
		DepthWrite:      false,
		VertexColors:    true,
		Blend:           ebiten.BlendLighter,
		Map:             sprite,
	}
}

func (m *Material) Dispose() {
	m.Map = nil
	m.disposed = true
}

func (m *Material) Disposed() bool { return m.disposed }

// Points is a drawable cloud of independent sprites.
type Points struct {
	Geometry *Geometry
	Material *Material
	// Rotation holds Euler angles in radians. The matrix is Rx·Ry·Rz, so a
	// vertex is turned about Z first and about X last.
	Rotation mgl32.Vec3
}

func NewPoints(g *Geometry, m *Material) *Points {
	return &Points{Geometry: g, Material: m}
}

// ModelMatrix returns the object's local-to-world transform.
func (p *Points) ModelMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(p.Rotation.X()).
		Mul4(mgl32.HomogRotate3DY(p.Rotation.Y())).
		Mul4(mgl32.HomogRotate3DZ(p.Rotation.Z()))
}

// Dispose releases the geometry and material.
func (p *Points) Dispose() {
	p.Geometry.Dispose()
	p.Material.Dispose()
}
