package ui

import (
	"fyne.io/fyne/v2"
)

// DragGesture turns a press followed by movement into a single drag start.
//
// Positions are in canvas units; scale converts them to pixels so the
// threshold matches the native one regardless of DPI. The gesture fires at
// most once per press.
type DragGesture struct {
	onDrag func()

	armed  bool
	origin fyne.Position
	scale  float32
}

// NewDragGesture creates a gesture that calls onDrag when the threshold is crossed
func NewDragGesture(onDrag func()) *DragGesture {
	return &DragGesture{onDrag: onDrag, scale: 1}
}

// SetScale sets the canvas scale used to convert positions to pixels
func (g *DragGesture) SetScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	g.scale = scale
}

// Press arms the gesture at pos
func (g *DragGesture) Press(pos fyne.Position) {
	g.armed = true
	g.origin = pos
}

// Move reports whether this move started a drag. Moves without the primary
// button held, or after the gesture already fired, do nothing.
func (g *DragGesture) Move(pos fyne.Position, primaryHeld bool) bool {
	if !g.armed || !primaryHeld {
		return false
	}

	dx := (pos.X - g.origin.X) * g.scale
	dy := (pos.Y - g.origin.Y) * g.scale
	if dx*dx+dy*dy < DragThresholdSq {
		return false
	}

	g.armed = false
	if g.onDrag != nil {
		g.onDrag()
	}
	return true
}

// Release disarms the gesture
func (g *DragGesture) Release() {
	g.armed = false
}

// Armed reports whether a press is being tracked
func (g *DragGesture) Armed() bool {
	return g.armed
}
