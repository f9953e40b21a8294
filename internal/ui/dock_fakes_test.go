package ui

import (
	"fyne.io/fyne/v2"

	"github.com/filerelay/filerelay-dock/internal/dragout"
	"github.com/filerelay/filerelay-dock/internal/platform"
)

type bounds struct {
	x, y, w, h int
}

type fakeNative struct {
	minimized bool
	visible   bool

	shows        int
	topmost      []bool
	bounds       []bounds
	dockStyle    *platform.LayerStyle
	overlayStyle *bool
	veto         func() bool
	detached     int
}

func (f *fakeNative) Minimized() bool { return f.minimized }
func (f *fakeNative) Visible() bool   { return f.visible }

func (f *fakeNative) ShowNoActivate() error {
	f.shows++
	f.minimized = false
	f.visible = true
	return nil
}

func (f *fakeNative) SetTopmost(topmost bool) error {
	f.topmost = append(f.topmost, topmost)
	return nil
}

func (f *fakeNative) SetBounds(x, y, w, h int) error {
	f.bounds = append(f.bounds, bounds{x, y, w, h})
	return nil
}

func (f *fakeNative) ApplyDockStyle(style platform.LayerStyle) error {
	f.dockStyle = &style
	return nil
}

func (f *fakeNative) ApplyOverlayStyle(clickThrough bool) error {
	f.overlayStyle = &clickThrough
	return nil
}

func (f *fakeNative) InterceptHide(veto func() bool) error {
	f.veto = veto
	return nil
}

func (f *fakeNative) Detach() { f.detached++ }

type fakeAttacher struct {
	windows map[fyne.Window]*fakeNative
	order   []*fakeNative
}

func newFakeAttacher() *fakeAttacher {
	return &fakeAttacher{windows: map[fyne.Window]*fakeNative{}}
}

func (a *fakeAttacher) attach(w fyne.Window) NativeWindow {
	if n, ok := a.windows[w]; ok {
		return n
	}
	n := &fakeNative{visible: true}
	a.windows[w] = n
	a.order = append(a.order, n)
	return n
}

type fakeRunner struct {
	calls   int
	payload []byte
	allowed dragout.Effect
	err     error
}

func (r *fakeRunner) DoDragDrop(payload dragout.PayloadProvider, source dragout.Source, allowed dragout.Effect) (dragout.Effect, error) {
	r.calls++
	r.allowed = allowed
	if r.err != nil {
		return dragout.EffectNone, r.err
	}
	data, err := payload.Data(dragout.FormatFileList, dragout.MediumGlobal)
	if err != nil {
		return dragout.EffectNone, err
	}
	r.payload = data
	return dragout.EffectCopy, nil
}

type fakeModifiers struct {
	control bool
}

func (m *fakeModifiers) ControlHeld() bool { return m.control }

func fixedScreen(screen platform.Rect, taskbar *platform.Rect) ScreenFunc {
	return func() (platform.Rect, *platform.Rect) {
		return screen, taskbar
	}
}
