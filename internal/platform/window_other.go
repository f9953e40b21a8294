//go:build !windows

package platform

import "fyne.io/fyne/v2"

// Window is a no-op stand-in for the native window wrapper. It reports the
// window visible and never minimised, and every mutation returns
// ErrUnsupported.
type Window struct{}

// Attach returns a detached Window.
func Attach(fyne.Window) *Window {
	return &Window{}
}

// Attached always reports false.
func (w *Window) Attached() bool { return false }

// Minimized always reports false.
func (w *Window) Minimized() bool { return false }

// Visible always reports true.
func (w *Window) Visible() bool { return true }

func (w *Window) ShowNoActivate() error { return ErrUnsupported }
func (w *Window) SetTopmost(bool) error { return ErrUnsupported }
func (w *Window) SetBounds(x, y, width, height int) error { return ErrUnsupported }
func (w *Window) ApplyDockStyle(LayerStyle) error { return ErrUnsupported }
func (w *Window) ApplyOverlayStyle(bool) error { return ErrUnsupported }
func (w *Window) InterceptHide(func() bool) error { return ErrUnsupported }
func (w *Window) ReleaseCapture() {}
func (w *Window) Detach() {}
