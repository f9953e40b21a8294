package ui

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/filerelay/filerelay-dock/internal/config"
	"github.com/filerelay/filerelay-dock/internal/dragout"
	"github.com/filerelay/filerelay-dock/internal/platform"
	"github.com/filerelay/filerelay-dock/internal/preview"
	"github.com/filerelay/filerelay-dock/internal/schedule"
)

type dockHarness struct {
	dock      *Dock
	attacher  *fakeAttacher
	runner    *fakeRunner
	modifiers *fakeModifiers
	clock     *schedule.Manual
	quits     int
}

var (
	testScreen  = platform.Rect{Right: 1920, Bottom: 1080}
	testTaskbar = &platform.Rect{Top: 1040, Right: 1920, Bottom: 1080}
)

func newDockHarness(t *testing.T, settings *config.Settings) *dockHarness {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	if settings == nil {
		settings = config.NewSettings()
	}
	h := &dockHarness{
		attacher:  newFakeAttacher(),
		runner:    &fakeRunner{},
		modifiers: &fakeModifiers{},
		clock:     schedule.NewManual(),
	}
	h.dock = NewDock(app, settings, Deps{
		Attach:    h.attacher.attach,
		Screen:    fixedScreen(testScreen, testTaskbar),
		Runner:    h.runner,
		Modifiers: h.modifiers,
		Scheduler: h.clock,
		Quit:      func() { h.quits++ },
	})
	return h
}

func fileURIs(paths ...string) []fyne.URI {
	uris := make([]fyne.URI, len(paths))
	for i, p := range paths {
		uris[i] = storage.NewFileURI(p)
	}
	return uris
}

func nativePaths(paths ...string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.FromSlash(p)
	}
	return out
}

func registryPaths(d *Dock) []string {
	var out []string
	for _, e := range d.Registry().Snapshot() {
		out = append(out, e.FullPath)
	}
	return out
}

func primary(x, y float32) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     desktop.MouseButtonPrimary,
	}
}

func secondary(mod fyne.KeyModifier) *desktop.MouseEvent {
	return &desktop.MouseEvent{Button: desktop.MouseButtonSecondary, Modifier: mod}
}

func dragTo(x, y float32) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestDock_DropOverwritesAndAppends(t *testing.T) {
	h := newDockHarness(t, nil)
	d := h.dock

	d.onDropped(fyne.Position{}, fileURIs("/a/one.txt", "/a/two.txt"))
	require.Equal(t, nativePaths("/a/one.txt", "/a/two.txt"), registryPaths(d))
	require.Equal(t, 2, d.badge.Count())

	d.onDropped(fyne.Position{}, fileURIs("/b/three.txt"))
	require.Equal(t, nativePaths("/b/three.txt"), registryPaths(d))

	h.modifiers.control = true
	d.onDropped(fyne.Position{}, fileURIs("/c/four.txt", "/c/five.txt"))
	require.Equal(t, nativePaths("/b/three.txt", "/c/four.txt", "/c/five.txt"), registryPaths(d))
	require.Equal(t, "3", d.badge.Text())
}

func TestDock_DropRespectsMaxCount(t *testing.T) {
	settings := config.NewSettings()
	settings.Window.MaxCount = 3
	h := newDockHarness(t, settings)

	h.dock.onDropped(fyne.Position{}, fileURIs("/1", "/2", "/3", "/4", "/5"))
	require.Equal(t, 3, h.dock.Registry().Count())

	h.modifiers.control = true
	h.dock.onDropped(fyne.Position{}, fileURIs("/6"))
	require.Equal(t, nativePaths("/1", "/2", "/3"), registryPaths(h.dock))
}

// An empty drop without Control still clears the list.
func TestDock_EmptyDropClears(t *testing.T) {
	h := newDockHarness(t, nil)
	h.dock.onDropped(fyne.Position{}, fileURIs("/a"))

	h.dock.onDropped(fyne.Position{}, nil)
	require.Equal(t, 0, h.dock.Registry().Count())
	require.Equal(t, 0, h.dock.badge.Count())
}

func TestDock_StartPlacesAndGuards(t *testing.T) {
	h := newDockHarness(t, nil)
	d := h.dock

	d.Start()
	d.Start()

	require.Len(t, h.attacher.order, 1)
	native := h.attacher.order[0]
	require.NotNil(t, native.dockStyle)
	require.False(t, native.dockStyle.Layered)

	// x = -430, y = -1 on a 1920x1080 screen with a 60x43 dock
	require.Equal(t, []bounds{{1430, 1036, 60, 43}}, native.bounds)
	require.Equal(t, []bool{true}, native.topmost)
	require.NotNil(t, native.veto)

	h.clock.Advance(3 * time.Second)
	require.Len(t, native.topmost, 4)
	require.Len(t, native.bounds, 1, "healing must not move the window")

	native.minimized = true
	require.True(t, native.veto())
	require.Equal(t, 1, native.shows)
}

func TestDock_DragExportsAfterThreshold(t *testing.T) {
	h := newDockHarness(t, nil)
	d := h.dock
	d.Start()
	d.onDropped(fyne.Position{}, fileURIs("/x/a.txt", "/x/b.txt"))

	d.badge.MouseDown(primary(10, 10))
	d.badge.Dragged(dragTo(12, 12))
	require.Equal(t, 0, h.runner.calls)

	d.badge.Dragged(dragTo(13, 14))
	require.Equal(t, 1, h.runner.calls)
	require.Equal(t, dragout.EffectCopy|dragout.EffectMove, h.runner.allowed)

	paths, err := dragout.DecodeFileList(h.runner.payload)
	require.NoError(t, err)
	require.Equal(t, nativePaths("/x/a.txt", "/x/b.txt"), paths)

	d.badge.Dragged(dragTo(40, 40))
	d.badge.DragEnd()
	d.badge.MouseUp(primary(40, 40))
	require.Equal(t, 1, h.runner.calls, "one drag per press")
}

func TestDock_DragWithoutFilesDoesNothing(t *testing.T) {
	h := newDockHarness(t, nil)
	h.dock.Start()

	h.dock.badge.MouseDown(primary(0, 0))
	h.dock.badge.Dragged(dragTo(20, 0))
	require.Equal(t, 0, h.runner.calls)
}

func TestDock_DragErrorIsContained(t *testing.T) {
	h := newDockHarness(t, nil)
	h.runner.err = errors.New("boom")
	h.dock.Start()
	h.dock.onDropped(fyne.Position{}, fileURIs("/a"))

	h.dock.badge.MouseDown(primary(0, 0))
	h.dock.badge.Dragged(dragTo(20, 0))
	require.Equal(t, 1, h.runner.calls)
	require.Equal(t, 1, h.dock.Registry().Count())
}

func TestDock_RightClickShowsPreview(t *testing.T) {
	h := newDockHarness(t, nil)
	d := h.dock
	d.Start()
	d.onDropped(fyne.Position{}, fileURIs("/a/one.txt"))

	d.badge.MouseDown(secondary(0))
	id := d.Overlay().Current()
	require.NotEmpty(t, id)
	require.Equal(t, 0, h.quits)

	overlay := h.attacher.order[len(h.attacher.order)-1]
	require.NotNil(t, overlay.overlayStyle)
	require.False(t, *overlay.overlayStyle)

	tip := d.settings.Tip
	size := preview.Measure(1, d.Overlay().Metrics())
	pos := preview.Place(size, toPreviewRect(testScreen), toPreviewRectPtr(testTaskbar), tip.Margin)
	require.Equal(t, []bounds{{pos.X, pos.Y, size.Width, size.Height}}, overlay.bounds)

	h.clock.Advance(tip.AutoClose - time.Millisecond)
	require.Equal(t, id, d.Overlay().Current())
	h.clock.Advance(time.Millisecond)
	require.Empty(t, d.Overlay().Current())
	require.Equal(t, 1, overlay.detached)
}

func TestDock_PreviewStyledBeforeShown(t *testing.T) {
	h := newDockHarness(t, nil)
	d := h.dock
	d.Start()

	shown := 0
	d.Overlay().show = func(w fyne.Window) {
		shown++
		native := h.attacher.windows[w]
		require.NotNil(t, native, "overlay attached before show")
		require.NotNil(t, native.overlayStyle, "overlay styled before show")
		require.Len(t, native.bounds, 1, "overlay placed before show")
		w.Show()
	}

	d.ShowPreview()
	require.Equal(t, 1, shown)
}

func TestDock_PreviewReplacesPrevious(t *testing.T) {
	h := newDockHarness(t, nil)
	d := h.dock
	d.Start()

	first := d.ShowPreview()
	h.clock.Advance(time.Second)
	second := d.ShowPreview()
	require.NotEqual(t, first, second)

	d.Overlay().closeIfCurrent(first)
	require.Equal(t, second, d.Overlay().Current(), "stale close must be ignored")

	h.clock.Advance(d.settings.Tip.AutoClose)
	require.Empty(t, d.Overlay().Current())
}

func TestDock_PreviewWithoutAutoClose(t *testing.T) {
	settings := config.NewSettings()
	settings.Tip.AutoClose = 0
	h := newDockHarness(t, settings)
	h.dock.Start()

	id := h.dock.ShowPreview()
	h.clock.Advance(time.Hour)
	require.Equal(t, id, h.dock.Overlay().Current())
}

func TestDock_CtrlRightClickQuits(t *testing.T) {
	tests := []struct {
		name     string
		held     bool
		modifier fyne.KeyModifier
	}{
		{"sampled control", true, 0},
		{"event modifier", false, fyne.KeyModifierControl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newDockHarness(t, nil)
			h.dock.Start()
			native := h.attacher.order[0]
			h.modifiers.control = tt.held

			h.dock.badge.MouseDown(secondary(tt.modifier))

			require.Equal(t, 1, h.quits)
			require.Empty(t, h.dock.Overlay().Current())
			require.False(t, native.veto(), "hide must be allowed while quitting")
		})
	}
}

func TestDock_PreviewTruncatesLongList(t *testing.T) {
	settings := config.NewSettings()
	settings.Tip.MaxLines = 5
	h := newDockHarness(t, settings)
	d := h.dock
	d.Start()

	var paths []string
	for i := 0; i < 8; i++ {
		paths = append(paths, fmt.Sprintf("/f/%d.txt", i))
	}
	d.onDropped(fyne.Position{}, fileURIs(paths...))
	d.ShowPreview()

	overlay := h.attacher.order[len(h.attacher.order)-1]
	expected := preview.Measure(5, d.Overlay().Metrics())
	require.Equal(t, expected.Height, overlay.bounds[0].h)
}
