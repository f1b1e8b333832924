package panel

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/galaxy-generator/internal/config"
)

type fakePointer struct {
	x, y         int
	pressed      bool
	justPressed  bool
	justReleased bool
	wheel        float64
}

func (f *fakePointer) CursorPosition() (int, int) { return f.x, f.y }
func (f *fakePointer) Pressed() bool              { return f.pressed }
func (f *fakePointer) JustPressed() bool          { return f.justPressed }
func (f *fakePointer) JustReleased() bool         { return f.justReleased }
func (f *fakePointer) Wheel() float64             { return f.wheel }

type recorder struct {
	fields []string
}

func (r *recorder) onFinishChange(field string) {
	r.fields = append(r.fields, field)
}

func widgetFor(t *testing.T, p *Panel, field string) widget {
	t.Helper()
	for _, w := range p.widgets {
		if w.name() == field {
			return w
		}
	}
	t.Fatalf("no widget for %s", field)
	return nil
}

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func TestSliderCommitsOnRelease(t *testing.T) {
	params := config.Default()
	rec := &recorder{}
	p := New(&params, nil, rec.onFinishChange)

	w := widgetFor(t, p, FieldBranches)
	b := w.bounds()
	_, y := center(b)

	ptr := &fakePointer{x: b.Min.X, y: y, pressed: true, justPressed: true}
	captured, err := p.Update(ptr)
	require.NoError(t, err)
	assert.True(t, captured)

	// drag to the far right; the record must not change mid-drag
	ptr.justPressed = false
	ptr.x = b.Max.X + 50
	captured, _ = p.Update(ptr)
	assert.True(t, captured)
	assert.Equal(t, 3, params.Branches)
	assert.Empty(t, rec.fields)

	ptr.pressed = false
	ptr.justReleased = true
	captured, _ = p.Update(ptr)
	assert.True(t, captured)

	assert.Equal(t, 10, params.Branches)
	assert.Equal(t, []string{FieldBranches}, rec.fields)
}

func TestSliderNoCommitWhenUnchanged(t *testing.T) {
	params := config.Default()
	params.Branches = 2
	rec := &recorder{}
	p := New(&params, nil, rec.onFinishChange)

	b := widgetFor(t, p, FieldBranches).bounds()
	_, y := center(b)

	ptr := &fakePointer{x: b.Min.X, y: y, pressed: true, justPressed: true}
	p.Update(ptr)
	ptr.justPressed = false
	ptr.pressed = false
	ptr.justReleased = true
	p.Update(ptr)

	assert.Equal(t, 2, params.Branches)
	assert.Empty(t, rec.fields)
}

func TestSliderSnapsToStep(t *testing.T) {
	params := config.Default()
	p := New(&params, nil, nil)

	s := widgetFor(t, p, FieldCount).(*slider)
	v := s.valueAt(s.track.Min.X + s.track.Dx()/3)
	assert.Zero(t, int(v-config.CountRange.Min)%int(config.CountRange.Step))
	assert.GreaterOrEqual(t, v, config.CountRange.Min)
	assert.LessOrEqual(t, v, config.CountRange.Max)

	assert.Equal(t, config.CountRange.Min, s.valueAt(s.track.Min.X-100))
	assert.Equal(t, config.CountRange.Max, s.valueAt(s.track.Max.X+100))
}

func TestSwatchPicksColor(t *testing.T) {
	params := config.Default()
	rec := &recorder{}
	var titles []string
	picker := func(title string, initial config.Color) (config.Color, bool, error) {
		titles = append(titles, title)
		return config.MustHex("#00ff00"), true, nil
	}
	p := New(&params, picker, rec.onFinishChange)

	x, y := center(widgetFor(t, p, FieldOutsideColor).bounds())
	ptr := &fakePointer{x: x, y: y, pressed: true, justPressed: true}
	p.Update(ptr)
	ptr.justPressed = false
	ptr.pressed = false
	ptr.justReleased = true
	_, err := p.Update(ptr)
	require.NoError(t, err)

	assert.Equal(t, "#00ff00", params.OutsideColor.Hex())
	assert.Equal(t, []string{"outsideColor"}, titles)
	assert.Equal(t, []string{FieldOutsideColor}, rec.fields)
}

func TestSwatchCancelled(t *testing.T) {
	params := config.Default()
	rec := &recorder{}
	picker := func(string, config.Color) (config.Color, bool, error) {
		return config.Color{}, false, nil
	}
	p := New(&params, picker, rec.onFinishChange)

	x, y := center(widgetFor(t, p, FieldInsideColor).bounds())
	ptr := &fakePointer{x: x, y: y, pressed: true, justPressed: true}
	p.Update(ptr)
	ptr.justPressed, ptr.pressed, ptr.justReleased = false, false, true
	p.Update(ptr)

	assert.Equal(t, config.Default().InsideColor.Hex(), params.InsideColor.Hex())
	assert.Empty(t, rec.fields)
}

func TestSwatchPickerError(t *testing.T) {
	params := config.Default()
	boom := errors.New("no display")
	picker := func(string, config.Color) (config.Color, bool, error) {
		return config.Color{}, false, boom
	}
	p := New(&params, picker, nil)

	x, y := center(widgetFor(t, p, FieldInsideColor).bounds())
	ptr := &fakePointer{x: x, y: y, pressed: true, justPressed: true}
	p.Update(ptr)
	ptr.justPressed, ptr.pressed, ptr.justReleased = false, false, true
	_, err := p.Update(ptr)
	assert.ErrorIs(t, err, boom)
}

func TestSwatchReleaseOutsideIsNotAClick(t *testing.T) {
	params := config.Default()
	called := false
	picker := func(string, config.Color) (config.Color, bool, error) {
		called = true
		return config.MustHex("#ffffff"), true, nil
	}
	p := New(&params, picker, nil)

	x, y := center(widgetFor(t, p, FieldInsideColor).bounds())
	ptr := &fakePointer{x: x, y: y, pressed: true, justPressed: true}
	p.Update(ptr)
	ptr.justPressed, ptr.pressed, ptr.justReleased = false, false, true
	ptr.x = 0
	p.Update(ptr)

	assert.False(t, called)
}

func TestHiddenPanelIgnoresInput(t *testing.T) {
	params := config.Default()
	rec := &recorder{}
	p := New(&params, nil, rec.onFinishChange)
	p.Hidden = true

	x, y := center(widgetFor(t, p, FieldSpin).bounds())
	captured, err := p.Update(&fakePointer{x: x, y: y, pressed: true, justPressed: true})
	require.NoError(t, err)
	assert.False(t, captured)
}

func TestHidingPanelDropsDrag(t *testing.T) {
	params := config.Default()
	rec := &recorder{}
	p := New(&params, nil, rec.onFinishChange)

	b := widgetFor(t, p, FieldBranches).bounds()
	_, y := center(b)
	ptr := &fakePointer{x: b.Min.X, y: y, pressed: true, justPressed: true}
	p.Update(ptr)
	require.True(t, p.Active())

	// hidden mid-drag: the release never reaches the slider
	p.Hidden = true
	ptr.justPressed = false
	ptr.x = b.Max.X
	captured, err := p.Update(ptr)
	require.NoError(t, err)
	assert.False(t, captured)
	assert.False(t, p.Active())

	ptr.pressed = false
	ptr.justReleased = true
	p.Update(ptr)

	p.Hidden = false
	ptr.justReleased = false
	captured, _ = p.Update(ptr)
	assert.False(t, captured)
	assert.False(t, p.Active())
	assert.Equal(t, 3, params.Branches)
	assert.Empty(t, rec.fields)
}

func TestPointerOutsidePanelNotCaptured(t *testing.T) {
	params := config.Default()
	p := New(&params, nil, nil)

	captured, _ := p.Update(&fakePointer{x: 10, y: 10, pressed: true, justPressed: true})
	assert.False(t, captured)

	b := p.Bounds()
	captured, _ = p.Update(&fakePointer{x: b.Min.X + 2, y: b.Min.Y + 2, wheel: 1})
	assert.True(t, captured)
}
