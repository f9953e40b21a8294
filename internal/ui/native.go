package ui

import (
	"fyne.io/fyne/v2"

	"github.com/filerelay/filerelay-dock/internal/guardian"
	"github.com/filerelay/filerelay-dock/internal/platform"
)

// NativeWindow is the native side of a fyne window the dock manipulates.
// *platform.Window implements it.
type NativeWindow interface {
	guardian.Window
	SetBounds(x, y, width, height int) error
	ApplyDockStyle(style platform.LayerStyle) error
	ApplyOverlayStyle(clickThrough bool) error
	InterceptHide(veto func() bool) error
	Detach()
}

// AttachFunc resolves the native window behind a fyne window.
type AttachFunc func(fyne.Window) NativeWindow

// ScreenFunc reports the screen and, when known, the taskbar rectangle.
type ScreenFunc func() (screen platform.Rect, taskbar *platform.Rect)

// ModifierProbe reports whether Control is held right now.
type ModifierProbe interface {
	ControlHeld() bool
}

func attachPlatform(w fyne.Window) NativeWindow {
	return platform.Attach(w)
}

func platformScreen() (platform.Rect, *platform.Rect) {
	screen := platform.ScreenBounds()
	if bar, ok := platform.TaskbarBounds(); ok {
		return screen, &bar
	}
	return screen, nil
}

// newWindow creates a borderless window when the driver supports it.
func newWindow(app fyne.App, title string) fyne.Window {
	if drv, ok := app.(interface{ NewSplashWindow() fyne.Window }); ok {
		w := drv.NewSplashWindow()
		w.SetTitle(title)
		return w
	}
	return app.NewWindow(title)
}
