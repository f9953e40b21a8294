//go:build !windows

package platform

import (
	"github.com/filerelay/filerelay-dock/internal/dragout"
)

// InitDragDrop is a no-op off Windows.
func InitDragDrop() error { return nil }

// ShutdownDragDrop is a no-op off Windows.
func ShutdownDragDrop() {}

// DragDropper has no native drag loop off Windows.
type DragDropper struct{}

// NewDragDropper returns a runner that always fails with ErrUnsupported.
func NewDragDropper(*Window) *DragDropper {
	return &DragDropper{}
}

// DoDragDrop implements dragout.Runner.
func (d *DragDropper) DoDragDrop(dragout.PayloadProvider, dragout.Source, dragout.Effect) (dragout.Effect, error) {
	return dragout.EffectNone, ErrUnsupported
}
