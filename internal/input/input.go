// Package input adapts ebiten's polling input to a small interface the
// panel and camera controls can be driven by in tests.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Pointer is the primary mouse button plus cursor and wheel state for the
// current tick.
type Pointer interface {
	CursorPosition() (x, y int)
	Pressed() bool
	JustPressed() bool
	JustReleased() bool
	// Wheel returns the vertical scroll delta of this tick.
	Wheel() float64
}

// Ebiten reads the live ebiten input state.
type Ebiten struct{}

func (Ebiten) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (Ebiten) Pressed() bool { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }

func (Ebiten) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (Ebiten) JustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (Ebiten) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// Masked hides button and wheel input from controls while another widget owns
// the pointer. Cursor position still passes through.
type Masked struct {
	Pointer
	Hidden bool
}

func (m Masked) Pressed() bool      { return !m.Hidden && m.Pointer.Pressed() }
func (m Masked) JustPressed() bool  { return !m.Hidden && m.Pointer.JustPressed() }
func (m Masked) JustReleased() bool { return m.Pointer.JustReleased() }

func (m Masked) Wheel() float64 {
	if m.Hidden {
		return 0
	}
	return m.Pointer.Wheel()
}
