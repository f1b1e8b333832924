// Package scene is a minimal scene graph for point clouds on top of ebiten:
// a scene container, a perspective camera with orbit controls and a sprite
// renderer.
package scene

import "slices"

// Scene is the flat list of drawables rendered each frame.
type Scene struct {
	children []*Points
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) Add(p *Points) {
	s.children = append(s.children, p)
}

// Remove detaches p and reports whether it was attached.
func (s *Scene) Remove(p *Points) bool {
	i := slices.Index(s.children, p)
	if i < 0 {
		return false
	}
	s.children = slices.Delete(s.children, i, i+1)
	return true
}

func (s *Scene) Children() []*Points {
	return s.children
}

func (s *Scene) Len() int {
	return len(s.children)
}

// Slot owns the single live Points object in a scene.
type Slot struct {
	scene   *Scene
	current *Points
}

func NewSlot(s *Scene) *Slot {
	return &Slot{scene: s}
}

// Replace disposes and detaches the current object, if any, then attaches
// and stores next.
func (sl *Slot) Replace(next *Points) {
	sl.Clear()
	sl.scene.Add(next)
	sl.current = next
}

// Clear disposes and detaches the current object.
func (sl *Slot) Clear() {
	if sl.current == nil {
		return
	}
	sl.current.Dispose()
	sl.scene.Remove(sl.current)
	sl.current = nil
}

// Current returns the live object, or nil.
func (sl *Slot) Current() *Points {
	return sl.current
}
