package panel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/galaxy-generator/internal/config"
	"github.com/iburimskiy/galaxy-generator/internal/input"
)

var (
	trackColor  = color.RGBA{R: 45, G: 52, B: 68, A: 255}
	fillColor   = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	hoverColor  = color.RGBA{R: 130, G: 150, B: 195, A: 255}
	borderColor = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

// widget is one row of the panel.
type widget interface {
	name() string
	bounds() image.Rectangle
	// update returns true when an edit was committed this tick.
	update(p input.Pointer, picker ColorPicker) (committed bool, err error)
	active() bool
	// cancel drops an in-progress edit without committing it.
	cancel()
	draw(screen *ebiten.Image, hovered bool)
}

// slider edits a numeric field. While dragging only the pending value moves;
// the bound field is written on release.
type slider struct {
	field  string
	label  string
	rng    config.Range
	format string
	get    func() float64
	set    func(float64)

	rect     image.Rectangle
	track    image.Rectangle
	dragging bool
	pending  float64
}

func (s *slider) name() string            { return s.field }
func (s *slider) bounds() image.Rectangle { return s.rect }
func (s *slider) active() bool            { return s.dragging }
func (s *slider) cancel()                 { s.dragging = false }

func (s *slider) valueAt(x int) float64 {
	frac := float64(x-s.track.Min.X) / float64(s.track.Dx())
	frac = clamp01(frac)
	return s.rng.Clamp(s.rng.Min + frac*(s.rng.Max-s.rng.Min))
}

func (s *slider) update(p input.Pointer, _ ColorPicker) (bool, error) {
	x, y := p.CursorPosition()
	if !s.dragging {
		if p.JustPressed() && image.Pt(x, y).In(s.rect) {
			s.dragging = true
			s.pending = s.valueAt(x)
		}
		return false, nil
	}

	s.pending = s.valueAt(x)
	if p.Pressed() {
		return false, nil
	}

	s.dragging = false
	if s.pending == s.get() {
		return false, nil
	}
	s.set(s.pending)
	return true, nil
}

func (s *slider) shown() float64 {
	if s.dragging {
		return s.pending
	}
	return s.get()
}

func (s *slider) draw(screen *ebiten.Image, hovered bool) {
	v := s.shown()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-16s "+s.format, s.label, v), s.rect.Min.X, s.rect.Min.Y)

	tx, ty := float32(s.track.Min.X), float32(s.track.Min.Y)
	tw, th := float32(s.track.Dx()), float32(s.track.Dy())
	vector.DrawFilledRect(screen, tx, ty, tw, th, trackColor, false)

	fc := fillColor
	if hovered || s.dragging {
		fc = hoverColor
	}
	frac := float32(clamp01((v - s.rng.Min) / (s.rng.Max - s.rng.Min)))
	vector.DrawFilledRect(screen, tx, ty, tw*frac, th, fc, false)
	vector.StrokeRect(screen, tx, ty, tw, th, 1, borderColor, false)
}

// swatch edits a color field through the native color dialog. A click is a
// press and release both inside the row.
type swatch struct {
	field string
	label string
	get   func() config.Color
	set   func(config.Color)

	rect    image.Rectangle
	box     image.Rectangle
	pressed bool
}

func (w *swatch) name() string            { return w.field }
func (w *swatch) bounds() image.Rectangle { return w.rect }
func (w *swatch) active() bool            { return w.pressed }
func (w *swatch) cancel()                 { w.pressed = false }

func (w *swatch) update(p input.Pointer, picker ColorPicker) (bool, error) {
	x, y := p.CursorPosition()
	inside := image.Pt(x, y).In(w.rect)

	if inside && p.JustPressed() {
		w.pressed = true
	}
	if !p.JustReleased() {
		return false, nil
	}

	clicked := w.pressed && inside
	w.pressed = false
	if !clicked || picker == nil {
		return false, nil
	}

	picked, ok, err := picker(w.label, w.get())
	if err != nil || !ok {
		return false, err
	}
	if picked.Hex() == w.get().Hex() {
		return false, nil
	}
	w.set(picked)
	return true, nil
}

func (w *swatch) draw(screen *ebiten.Image, hovered bool) {
	c := w.get()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%-16s %s", w.label, c.Hex()), w.rect.Min.X, w.rect.Min.Y)

	bx, by := float32(w.box.Min.X), float32(w.box.Min.Y)
	bw, bh := float32(w.box.Dx()), float32(w.box.Dy())
	vector.DrawFilledRect(screen, bx, by, bw, bh, c.Clamped(), false)

	stroke := float32(1)
	if hovered || w.pressed {
		stroke = 2
	}
	vector.StrokeRect(screen, bx, by, bw, bh, stroke, borderColor, false)
}
