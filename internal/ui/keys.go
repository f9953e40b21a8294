package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// keyTracker samples Control from the OS when possible and otherwise
// remembers the last Control key events delivered to the canvas.
type keyTracker struct {
	native func() (held, ok bool)
	held   bool
}

var _ ModifierProbe = (*keyTracker)(nil)

func newKeyTracker(native func() (bool, bool)) *keyTracker {
	return &keyTracker{native: native}
}

// ControlHeld implements ModifierProbe
func (k *keyTracker) ControlHeld() bool {
	if k.native != nil {
		if held, ok := k.native(); ok {
			return held
		}
	}
	return k.held
}

// watch follows Control key events on c
func (k *keyTracker) watch(c fyne.Canvas) {
	dc, ok := c.(desktop.Canvas)
	if !ok {
		return
	}
	dc.SetOnKeyDown(func(ev *fyne.KeyEvent) {
		if isControlKey(ev.Name) {
			k.held = true
		}
	})
	dc.SetOnKeyUp(func(ev *fyne.KeyEvent) {
		if isControlKey(ev.Name) {
			k.held = false
		}
	})
}

func isControlKey(name fyne.KeyName) bool {
	return name == desktop.KeyControlLeft || name == desktop.KeyControlRight
}
