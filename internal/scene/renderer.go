package scene

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// pointsPerBatch keeps each DrawTriangles call under the uint16 index limit.
const pointsPerBatch = 16383

// Renderer rasterizes a scene's point clouds as camera-facing sprites.
type Renderer struct {
	// MinPointPixels is the smallest on-screen sprite edge.
	MinPointPixels float32

	vertices []ebiten.Vertex
	indices  []uint16
	white    *ebiten.Image
}

func NewRenderer() *Renderer {
	r := &Renderer{MinPointPixels: 1}
	r.indices = make([]uint16, 0, pointsPerBatch*6)
	for i := 0; i < pointsPerBatch; i++ {
		v := uint16(i * 4)
		r.indices = append(r.indices, v, v+1, v+2, v+1, v+3, v+2)
	}
	return r
}

// Render draws every object in s as seen from cam onto dst. It returns the
// number of points that survived clipping.
func (r *Renderer) Render(dst *ebiten.Image, s *Scene, cam *PerspectiveCamera) int {
	b := dst.Bounds()
	width, height := float32(b.Dx()), float32(b.Dy())
	viewProj := cam.ViewProjection()

	drawn := 0
	for _, obj := range s.Children() {
		if obj.Geometry.Disposed() || obj.Material.Disposed() {
			continue
		}
		mvp := viewProj.Mul4(obj.ModelMatrix())
		drawn += r.drawPoints(dst, obj, mvp, cam, width, height)
	}
	return drawn
}

func (r *Renderer) drawPoints(dst *ebiten.Image, obj *Points, mvp mgl32.Mat4, cam *PerspectiveCamera, width, height float32) int {
	g, m := obj.Geometry, obj.Material
	sprite := m.Map
	if sprite == nil {
		sprite = r.whitePixel()
	}
	sb := sprite.Bounds()
	sx0, sy0 := float32(sb.Min.X), float32(sb.Min.Y)
	sx1, sy1 := float32(sb.Max.X), float32(sb.Max.Y)

	op := &ebiten.DrawTrianglesOptions{
		Blend:  m.Blend,
		Filter: ebiten.FilterLinear,
	}

	r.vertices = r.vertices[:0]
	drawn, inBatch := 0, 0
	flush := func() {
		if inBatch == 0 {
			return
		}
		dst.DrawTriangles(r.vertices, r.indices[:inBatch*6], sprite, op)
		r.vertices = r.vertices[:0]
		inBatch = 0
	}

	for i := 0; i < g.Count(); i++ {
		i3 := i * 3
		pos := mgl32.Vec3{g.Positions[i3], g.Positions[i3+1], g.Positions[i3+2]}
		x, y, depth, ok := project(mvp, pos, width, height)
		if !ok || depth < cam.Near || depth > cam.Far {
			continue
		}

		size := pointPixels(m, depth, height, r.MinPointPixels)
		half := size / 2

		cr, cg, cb := float32(1), float32(1), float32(1)
		if m.VertexColors && len(g.Colors) >= i3+3 {
			cr, cg, cb = g.Colors[i3], g.Colors[i3+1], g.Colors[i3+2]
		}

		r.vertices = append(r.vertices,
			ebiten.Vertex{DstX: x - half, DstY: y - half, SrcX: sx0, SrcY: sy0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
			ebiten.Vertex{DstX: x + half, DstY: y - half, SrcX: sx1, SrcY: sy0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
			ebiten.Vertex{DstX: x - half, DstY: y + half, SrcX: sx0, SrcY: sy1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
			ebiten.Vertex{DstX: x + half, DstY: y + half, SrcX: sx1, SrcY: sy1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1},
		)
		inBatch++
		drawn++
		if inBatch == pointsPerBatch {
			flush()
		}
	}
	flush()
	return drawn
}

func (r *Renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return r.white
}

// project maps a model-space point to screen pixels. depth is the view-space
// distance along the camera axis; ok is false for points behind the camera
// or outside the horizontal and vertical clip range.
func project(mvp mgl32.Mat4, p mgl32.Vec3, width, height float32) (x, y, depth float32, ok bool) {
	clip := mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return 0, 0, w, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	if ndcX < -1.1 || ndcX > 1.1 || ndcY < -1.1 || ndcY > 1.1 {
		return 0, 0, w, false
	}
	x = (ndcX + 1) / 2 * width
	y = (1 - ndcY) / 2 * height
	return x, y, w, true
}

// pointPixels returns the on-screen sprite edge for a point at depth.
func pointPixels(m *Material, depth, viewportHeight, minPixels float32) float32 {
	size := m.Size
	if m.SizeAttenuation {
		size *= viewportHeight / 2 / depth
	}
	if size < minPixels {
		size = minPixels
	}
	return size
}
