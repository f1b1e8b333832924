// Package panel is an immediate-mode parameter panel drawn over the scene.
// Each row is bound to one field of a config.Parameters record and reports
// a change only once the edit is committed.
package panel

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/galaxy-generator/internal/config"
	"github.com/iburimskiy/galaxy-generator/internal/input"
)

// Field names passed to the change handler.
const (
	FieldCount           = "count"
	FieldSize            = "size"
	FieldRadius          = "radius"
	FieldBranches        = "branches"
	FieldSpin            = "spin"
	FieldRandomnessPower = "randomnessPower"
	FieldRotationSpeed   = "rotationSpeed"
	FieldInsideColor     = "insideColor"
	FieldOutsideColor    = "outsideColor"
)

// ColorPicker asks the user for a color. ok is false when the user
// cancelled.
type ColorPicker func(title string, initial config.Color) (picked config.Color, ok bool, err error)

// ZenityPicker opens the platform color dialog.
func ZenityPicker(title string, initial config.Color) (config.Color, bool, error) {
	c, err := zenity.SelectColor(
		zenity.Title(title),
		zenity.Color(initial.Clamped()),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return config.Color{}, false, nil
		}
		return config.Color{}, false, err
	}
	picked, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent picks carry no usable rgb
		return config.Color{}, false, nil
	}
	return config.Color{Color: picked}, true, nil
}

type Panel struct {
	// Hidden panels draw nothing and ignore input. An edit in progress when
	// the panel is hidden is dropped.
	Hidden bool

	x, y, width, height int
	widgets             []widget
	picker              ColorPicker
	onFinishChange      func(field string)
	hovered             int
}

// New binds a panel to params. onFinishChange runs after a committed edit
// has been written to params.
func New(params *config.Parameters, picker ColorPicker, onFinishChange func(field string)) *Panel {
	p := &Panel{
		x:              config.PanelX,
		y:              config.PanelY,
		width:          config.PanelWidth,
		picker:         picker,
		onFinishChange: onFinishChange,
		hovered:        -1,
	}

	p.addSlider(FieldCount, "count", config.CountRange, "%.0f",
		func() float64 { return float64(params.Count) },
		func(v float64) { params.Count = int(math.Round(v)) })
	p.addSlider(FieldSize, "size", config.SizeRange, "%.3f",
		func() float64 { return params.Size },
		func(v float64) { params.Size = v })
	p.addSlider(FieldRadius, "radius", config.RadiusRange, "%.2f",
		func() float64 { return params.Radius },
		func(v float64) { params.Radius = v })
	p.addSlider(FieldBranches, "branches", config.BranchesRange, "%.0f",
		func() float64 { return float64(params.Branches) },
		func(v float64) { params.Branches = int(math.Round(v)) })
	p.addSlider(FieldSpin, "spin", config.SpinRange, "%.3f",
		func() float64 { return params.Spin },
		func(v float64) { params.Spin = v })
	p.addSlider(FieldRandomnessPower, "randomnessPower", config.RandomnessPowerRange, "%.3f",
		func() float64 { return params.RandomnessPower },
		func(v float64) { params.RandomnessPower = v })
	p.addSlider(FieldRotationSpeed, "rotationSpeed", config.RotationSpeedRange, "%.2f",
		func() float64 { return params.RotationSpeed },
		func(v float64) { params.RotationSpeed = v })
	p.addSwatch(FieldInsideColor, "insideColor",
		func() config.Color { return params.InsideColor },
		func(c config.Color) { params.InsideColor = c })
	p.addSwatch(FieldOutsideColor, "outsideColor",
		func() config.Color { return params.OutsideColor },
		func(c config.Color) { params.OutsideColor = c })

	p.height = headerHeight + len(p.widgets)*config.PanelRowHeight + config.PanelPadding
	return p
}

const headerHeight = 24

func (p *Panel) nextRow() image.Rectangle {
	top := p.y + headerHeight + len(p.widgets)*config.PanelRowHeight
	left := p.x + config.PanelPadding
	return image.Rect(left, top, left+p.width-2*config.PanelPadding, top+config.PanelRowHeight)
}

func (p *Panel) addSlider(field, label string, rng config.Range, format string, get func() float64, set func(float64)) {
	row := p.nextRow()
	track := image.Rect(row.Min.X, row.Min.Y+16, row.Max.X, row.Min.Y+26)
	p.widgets = append(p.widgets, &slider{
		field: field, label: label, rng: rng, format: format,
		get: get, set: set, rect: row, track: track,
	})
}

func (p *Panel) addSwatch(field, label string, get func() config.Color, set func(config.Color)) {
	row := p.nextRow()
	box := image.Rect(row.Max.X-config.SwatchSize, row.Min.Y+14, row.Max.X, row.Min.Y+14+config.SwatchSize)
	p.widgets = append(p.widgets, &swatch{
		field: field, label: label, get: get, set: set, rect: row, box: box,
	})
}

// Bounds is the screen area the panel covers.
func (p *Panel) Bounds() image.Rectangle {
	return image.Rect(p.x, p.y, p.x+p.width, p.y+p.height)
}

// Update feeds this tick's pointer to the rows. It reports whether the
// panel owns the pointer, so camera controls can ignore it. Committed edits
// are written to the bound record before onFinishChange runs.
func (p *Panel) Update(ptr input.Pointer) (captured bool, err error) {
	if p.Hidden {
		for _, w := range p.widgets {
			w.cancel()
		}
		return false, nil
	}

	x, y := ptr.CursorPosition()
	over := image.Pt(x, y).In(p.Bounds())

	p.hovered = -1
	for i, w := range p.widgets {
		if image.Pt(x, y).In(w.bounds()) {
			p.hovered = i
		}

		wasActive := w.active()
		committed, werr := w.update(ptr, p.picker)
		if werr != nil {
			err = errors.Join(err, werr)
		}
		if committed && p.onFinishChange != nil {
			p.onFinishChange(w.name())
		}
		if wasActive || w.active() {
			captured = true
		}
	}

	if over && (ptr.JustPressed() || ptr.Wheel() != 0) {
		captured = true
	}
	return captured, err
}

func (p *Panel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	b := p.Bounds()
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), 2, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "Galaxy          [H] hide", b.Min.X+config.PanelPadding, b.Min.Y+6)

	for i, w := range p.widgets {
		w.draw(screen, i == p.hovered)
	}
}

// Active reports whether an edit started on the panel is still in progress.
func (p *Panel) Active() bool {
	if p.Hidden {
		return false
	}
	for _, w := range p.widgets {
		if w.active() {
			return true
		}
	}
	return false
}
