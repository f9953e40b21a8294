package ui

import (
	"errors"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/filerelay/filerelay-dock/internal/config"
	"github.com/filerelay/filerelay-dock/internal/dragout"
	"github.com/filerelay/filerelay-dock/internal/guardian"
	"github.com/filerelay/filerelay-dock/internal/logger"
	"github.com/filerelay/filerelay-dock/internal/model"
	"github.com/filerelay/filerelay-dock/internal/platform"
	"github.com/filerelay/filerelay-dock/internal/preview"
	"github.com/filerelay/filerelay-dock/internal/schedule"
)

var log = logger.ComponentLogger("ui")

// Deps holds the collaborators of a Dock. Zero fields get the platform
// implementations.
type Deps struct {
	Attach    AttachFunc
	Screen    ScreenFunc
	Runner    dragout.Runner
	Modifiers ModifierProbe
	Scheduler schedule.Scheduler
	Quit      func()
}

// Dock is the main UI: a small always-on-top window that holds dropped files
// and hands them on by drag.
//
// Everything here runs on the fyne main goroutine, which is also the only
// writer of the registry.
type Dock struct {
	app          fyne.App
	window       fyne.Window
	settings     *config.Settings
	localization *Localization

	registry *model.Registry
	badge    *CountBadge
	gesture  *DragGesture
	exporter *dragout.Exporter
	overlay  *PreviewOverlay
	guardian *guardian.Guardian
	native   NativeWindow

	attach    AttachFunc
	screen    ScreenFunc
	runner    dragout.Runner
	modifiers ModifierProbe
	sched     schedule.Scheduler
	quit      func()

	started  bool
	stopHeal schedule.Cancel
}

// NewDock creates the dock window and its state. The window is shown by Run
// or, in tests, by calling Start directly.
func NewDock(app fyne.App, settings *config.Settings, deps Deps) *Dock {
	localization := NewLocalization()
	localization.SetLanguage(settings.Window.Language)

	d := &Dock{
		app:          app,
		settings:     settings,
		localization: localization,
		registry:     model.NewRegistry(settings.Window.MaxCount),
		attach:       deps.Attach,
		screen:       deps.Screen,
		runner:       deps.Runner,
		modifiers:    deps.Modifiers,
		sched:        deps.Scheduler,
		quit:         deps.Quit,
	}
	if d.attach == nil {
		d.attach = attachPlatform
	}
	if d.screen == nil {
		d.screen = platformScreen
	}
	if d.sched == nil {
		d.sched = schedule.NewUIScheduler(fyne.Do)
	}
	if d.quit == nil {
		d.quit = app.Quit
	}

	d.setupUI()
	return d
}

// setupUI creates the window and its content
func (d *Dock) setupUI() {
	style := d.settings.Style

	d.window = newWindow(d.app, d.localization.GetText(KeyAppTitle))
	d.window.SetPadded(false)
	d.window.SetIcon(LogoResource)
	d.window.Resize(fyne.NewSize(float32(d.settings.Window.Width), float32(d.settings.Window.Height)))

	d.badge = NewCountBadge(style.Background, style.Foreground, float32(style.FontSize)*PointsToUnits)
	d.badge.SetCallbacks(d.onMouseDown, d.onMouseUp, d.onDragged, d.onDragEnd)
	d.gesture = NewDragGesture(d.startExport)

	d.window.SetContent(d.badge)
	d.window.SetOnDropped(d.onDropped)

	if d.modifiers == nil {
		tracker := newKeyTracker(platform.ControlKeyDown)
		tracker.watch(d.window.Canvas())
		d.modifiers = tracker
	}

	d.overlay = NewPreviewOverlay(d.app, d.settings.Tip, style.Background, d.attach, d.sched)
}

// Run shows the dock and blocks in the fyne event loop
func (d *Dock) Run() {
	d.app.Lifecycle().SetOnStarted(func() {
		// The native handle exists only once the driver has created the window.
		d.sched.After(NativeSetupDelay, d.Start)
	})
	d.app.Lifecycle().SetOnStopped(d.Stop)
	d.window.ShowAndRun()
}

// Start applies native styling, places the window and starts the guardian.
// It is idempotent.
func (d *Dock) Start() {
	if d.started {
		return
	}
	d.started = true
	d.window.Show()

	d.native = d.attach(d.window)
	if d.runner == nil {
		win, _ := d.native.(*platform.Window)
		d.runner = platform.NewDragDropper(win)
	}
	d.exporter = dragout.NewExporter(d.runner)
	d.gesture.SetScale(d.window.Canvas().Scale())

	ws := d.settings.Window
	style := d.settings.Style
	if err := d.native.ApplyDockStyle(platform.LayerStyle{
		Layered:     style.Layered,
		Alpha:       style.Alpha,
		UseColorKey: style.UseColorKey,
		ColorKey:    style.ColorKey,
	}); err != nil {
		log.Debug("dock style not applied", "error", err)
	}

	screen, _ := d.screen()
	x, y := ws.ResolvePosition(screen.Width(), screen.Height())
	if err := d.native.SetBounds(screen.Left+x, screen.Top+y, ws.Width, ws.Height); err != nil {
		log.Debug("dock not positioned", "error", err)
	}

	d.guardian = guardian.New(d.native, ws.Topmost, ws.HealInterval)
	d.guardian.Heal()
	if err := d.native.InterceptHide(d.guardian.VetoHide); err != nil {
		log.Debug("hide interception unavailable", "error", err)
	}
	d.stopHeal = d.guardian.Start(d.sched)

	log.Info("dock started", "x", x, "y", y, "w", ws.Width, "h", ws.Height,
		"topmost", ws.Topmost, "max_count", d.registry.MaxCount(),
		"language", d.localization.GetCurrentLanguage())
}

// Stop ends the guardian and closes the overlay. Safe to call repeatedly.
func (d *Dock) Stop() {
	if d.guardian != nil {
		d.guardian.Stop()
	}
	if d.stopHeal != nil {
		d.stopHeal()
		d.stopHeal = nil
	}
	d.overlay.Close()
	if d.native != nil {
		d.native.Detach()
	}
}

// Quit stops the dock and exits the application
func (d *Dock) Quit() {
	log.Info("quit requested")
	d.Stop()
	d.quit()
}

// Window returns the dock window
func (d *Dock) Window() fyne.Window {
	return d.window
}

// Registry returns the held files
func (d *Dock) Registry() *model.Registry {
	return d.registry
}

// Localization returns the active translations
func (d *Dock) Localization() *Localization {
	return d.localization
}

// onDropped ingests dropped files, appending while Control is held
func (d *Dock) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, u := range uris {
		paths = append(paths, uriPath(u))
	}

	appendMode := d.modifiers.ControlHeld()
	accepted := d.registry.Ingest(paths, appendMode)
	d.badge.SetCount(d.registry.Count())

	log.Debug("files dropped", "offered", len(paths), "accepted", accepted,
		"append", appendMode, "count", d.registry.Count())
}

// uriPath converts a dropped URI to a native path
func uriPath(u fyne.URI) string {
	if u == nil {
		return ""
	}
	return filepath.FromSlash(u.Path())
}

func (d *Dock) onMouseDown(ev *desktop.MouseEvent) {
	switch ev.Button {
	case desktop.MouseButtonPrimary:
		d.gesture.Press(ev.Position)
	case desktop.MouseButtonSecondary:
		if d.modifiers.ControlHeld() || ev.Modifier&fyne.KeyModifierControl != 0 {
			d.Quit()
			return
		}
		d.ShowPreview()
	}
}

func (d *Dock) onMouseUp(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonPrimary {
		d.gesture.Release()
	}
}

func (d *Dock) onDragged(ev *fyne.DragEvent) {
	d.gesture.Move(ev.Position, true)
}

func (d *Dock) onDragEnd() {
	d.gesture.Release()
}

// startExport hands the current files to the native drag loop
func (d *Dock) startExport() {
	if d.exporter == nil {
		log.Debug("drag ignored before start")
		return
	}

	effect, err := d.exporter.Export(d.registry.Snapshot())
	switch {
	case errors.Is(err, dragout.ErrNothingToExport):
		log.Debug("drag ignored, no files")
	case errors.Is(err, platform.ErrUnsupported):
		log.Info("drag out is not supported on this platform")
	case err != nil:
		log.Warn("drag failed", "error", err)
	default:
		log.Debug("drag completed", "effect", effect)
	}
}

// ShowPreview opens the overlay listing the held files
func (d *Dock) ShowPreview() string {
	tip := d.settings.Tip
	content := preview.Compose(d.registry.Snapshot(), tip.MaxLines, preview.Labels{
		Empty: d.localization.GetText(KeyEmptyList),
		More:  d.localization.MoreFiles,
	})

	size := preview.Measure(len(content.Lines), d.overlay.Metrics())
	screen, taskbar := d.screen()
	pos := preview.Place(size, toPreviewRect(screen), toPreviewRectPtr(taskbar), tip.Margin)

	return d.overlay.Show(content.Lines, size, pos)
}

// Overlay returns the preview overlay manager
func (d *Dock) Overlay() *PreviewOverlay {
	return d.overlay
}

func toPreviewRect(r platform.Rect) preview.Rect {
	return preview.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func toPreviewRectPtr(r *platform.Rect) *preview.Rect {
	if r == nil {
		return nil
	}
	pr := toPreviewRect(*r)
	return &pr
}
