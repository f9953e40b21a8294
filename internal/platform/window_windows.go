//go:build windows

package platform

import (
	"fmt"
	"sync"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
)

// Window wraps the native handle behind a fyne window. A Window without a
// handle, for example under the test driver, reports itself visible and
// returns ErrUnsupported from every mutation.
type Window struct {
	hwnd uintptr

	veto         func() bool
	clickThrough bool
	subclassed   bool
}

var (
	subclassOnce sync.Once
	subclassProc uintptr

	subclassMu sync.Mutex
	subclassed = map[uintptr]*Window{}
)

// Attach resolves the native handle of w. The window must have been shown.
func Attach(w fyne.Window) *Window {
	win := &Window{}
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return win
	}
	nw.RunNative(func(ctx any) {
		if wc, ok := ctx.(driver.WindowsWindowContext); ok {
			win.hwnd = wc.HWND
		}
	})
	if win.hwnd == 0 {
		log.Warn("no native handle for window", "title", w.Title())
	}
	return win
}

// Attached reports whether a native handle was found.
func (w *Window) Attached() bool {
	return w != nil && w.hwnd != 0
}

// Minimized reports whether the window is iconic.
func (w *Window) Minimized() bool {
	if !w.Attached() {
		return false
	}
	r, _, _ := procIsIconic.Call(w.hwnd)
	return r != 0
}

// Visible reports whether the window has the visible style.
func (w *Window) Visible() bool {
	if !w.Attached() {
		return true
	}
	r, _, _ := procIsWindowVisible.Call(w.hwnd)
	return r != 0
}

// ShowNoActivate shows or restores the window without taking focus.
func (w *Window) ShowNoActivate() error {
	if !w.Attached() {
		return ErrUnsupported
	}
	procShowWindow.Call(w.hwnd, swShowNoActivate)
	return nil
}

// SetTopmost places the window in the topmost or normal band. Position and
// size are left untouched.
func (w *Window) SetTopmost(topmost bool) error {
	if !w.Attached() {
		return ErrUnsupported
	}
	after := hwndNoTopmost
	if topmost {
		after = hwndTopmost
	}
	r, _, err := procSetWindowPos.Call(w.hwnd, after, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoActivate|swpShowWindow)
	if r == 0 {
		return fmt.Errorf("set z-order: %w", err)
	}
	return nil
}

// SetBounds moves and resizes the window in screen pixels without changing
// its z-order or activating it.
func (w *Window) SetBounds(x, y, width, height int) error {
	if !w.Attached() {
		return ErrUnsupported
	}
	r, _, err := procSetWindowPos.Call(w.hwnd, 0,
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		swpNoZOrder|swpNoActivate)
	if r == 0 {
		return fmt.Errorf("set bounds: %w", err)
	}
	return nil
}

// ApplyDockStyle removes the taskbar button and applies the optional layered
// transparency.
func (w *Window) ApplyDockStyle(style LayerStyle) error {
	if !w.Attached() {
		return ErrUnsupported
	}

	ex := getExStyle(w.hwnd)
	ex |= wsExToolWindow
	ex &^= wsExAppWindow
	if style.Layered {
		ex |= wsExLayered
	}
	w.restyle(ex)

	if !style.Layered {
		return nil
	}
	var r uintptr
	var err error
	if style.UseColorKey {
		r, _, err = procSetLayeredWindowAttributes.Call(w.hwnd, uintptr(colorRef(style.ColorKey)), 0, lwaColorKey)
	} else {
		r, _, err = procSetLayeredWindowAttributes.Call(w.hwnd, 0, uintptr(style.Alpha), lwaAlpha)
	}
	if r == 0 {
		return fmt.Errorf("set layered attributes: %w", err)
	}
	return nil
}

// ApplyOverlayStyle makes the window a non-activating topmost tool window.
// With clickThrough every hit test falls through to the window below.
func (w *Window) ApplyOverlayStyle(clickThrough bool) error {
	if !w.Attached() {
		return ErrUnsupported
	}

	ex := getExStyle(w.hwnd)
	ex |= wsExToolWindow | wsExNoActivate | wsExTopmost
	ex &^= wsExAppWindow
	w.restyle(ex)

	w.clickThrough = clickThrough
	if clickThrough {
		if err := w.subclass(); err != nil {
			return err
		}
	}
	return w.SetTopmost(true)
}

// InterceptHide routes minimise commands and hide notifications to veto. When
// veto returns true the request is swallowed.
func (w *Window) InterceptHide(veto func() bool) error {
	if !w.Attached() {
		return ErrUnsupported
	}
	w.veto = veto
	return w.subclass()
}

// ReleaseCapture gives up mouse capture held by the calling thread.
func (w *Window) ReleaseCapture() {
	procReleaseCapture.Call()
}

// Detach removes the message hook. The handle stays usable.
func (w *Window) Detach() {
	if !w.Attached() || !w.subclassed {
		return
	}
	procRemoveWindowSubclass.Call(w.hwnd, subclassProc, 0)
	subclassMu.Lock()
	delete(subclassed, w.hwnd)
	subclassMu.Unlock()
	w.subclassed = false
}

// restyle writes ex and, for a visible window, cycles visibility so the shell
// picks up the taskbar change.
func (w *Window) restyle(ex uintptr) {
	setExStyle(w.hwnd, ex)
	procSetWindowPos.Call(w.hwnd, 0, 0, 0, 0, 0,
		swpNoMove|swpNoSize|swpNoZOrder|swpNoActivate|swpFrameChanged)
	if w.Visible() && !w.subclassed {
		procShowWindow.Call(w.hwnd, swHide)
		procShowWindow.Call(w.hwnd, swShowNoActivate)
	}
}

func (w *Window) subclass() error {
	if w.subclassed {
		return nil
	}
	subclassOnce.Do(func() {
		subclassProc = syscall.NewCallback(windowSubclassProc)
	})

	subclassMu.Lock()
	subclassed[w.hwnd] = w
	subclassMu.Unlock()

	r, _, err := procSetWindowSubclass.Call(w.hwnd, subclassProc, 0, 0)
	if r == 0 {
		subclassMu.Lock()
		delete(subclassed, w.hwnd)
		subclassMu.Unlock()
		return fmt.Errorf("install window hook: %w", err)
	}
	w.subclassed = true
	return nil
}

func windowSubclassProc(hwnd, msg, wParam, lParam, id, ref uintptr) uintptr {
	subclassMu.Lock()
	w := subclassed[hwnd]
	subclassMu.Unlock()

	if w != nil {
		switch msg {
		case wmSysCommand:
			if wParam&0xFFF0 == scMinimize && w.veto != nil && w.veto() {
				return 0
			}
		case wmShowWindow:
			if wParam == 0 && w.veto != nil && w.veto() {
				return 0
			}
		case wmNCHitTest:
			if w.clickThrough {
				return htTransparent
			}
		case wmNCDestroy:
			procRemoveWindowSubclass.Call(hwnd, subclassProc, id)
			subclassMu.Lock()
			delete(subclassed, hwnd)
			subclassMu.Unlock()
			w.subclassed = false
		}
	}

	r, _, _ := procDefSubclassProc.Call(hwnd, msg, wParam, lParam)
	return r
}
