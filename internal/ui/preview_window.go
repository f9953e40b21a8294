package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"github.com/google/uuid"

	"github.com/filerelay/filerelay-dock/internal/config"
	"github.com/filerelay/filerelay-dock/internal/preview"
	"github.com/filerelay/filerelay-dock/internal/schedule"
)

// PreviewOverlay shows at most one borderless, non-activating window listing
// the held files. A new overlay replaces the previous one.
type PreviewOverlay struct {
	app        fyne.App
	tip        config.Tip
	background color.Color
	attach     AttachFunc
	sched      schedule.Scheduler
	show       func(fyne.Window)

	current *overlayWindow
}

type overlayWindow struct {
	id     string
	window fyne.Window
	native NativeWindow
	cancel schedule.Cancel
}

// NewPreviewOverlay creates an overlay manager
func NewPreviewOverlay(app fyne.App, tip config.Tip, background color.Color, attach AttachFunc, sched schedule.Scheduler) *PreviewOverlay {
	return &PreviewOverlay{
		app:        app,
		tip:        tip,
		background: background,
		attach:     attach,
		sched:      sched,
		show:       fyne.Window.Show,
	}
}

// Metrics returns the sizing parameters derived from the tip settings
func (o *PreviewOverlay) Metrics() preview.Metrics {
	return preview.Metrics{
		Width:     o.tip.Width,
		MinHeight: o.tip.MinHeight,
		MaxHeight: o.tip.MaxHeight,
		MaxLines:  o.tip.MaxLines,
		FontSize:  o.tip.FontSize,
	}
}

// Show closes any open overlay and opens a new one with lines at pos. It
// returns the identifier of the new overlay.
func (o *PreviewOverlay) Show(lines []string, size preview.Size, pos preview.Point) string {
	o.Close()

	ow := &overlayWindow{id: uuid.NewString()}
	ow.window = newWindow(o.app, "")
	ow.window.SetPadded(false)
	ow.window.SetContent(o.render(lines))
	ow.window.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))

	// Style and place the hidden window so it never appears activatable or
	// at the driver's default position.
	if o.attach != nil {
		ow.native = o.attach(ow.window)
		if err := ow.native.ApplyOverlayStyle(o.tip.ClickThrough); err != nil {
			log.Debug("overlay style not applied", "error", err)
		}
		if err := ow.native.SetBounds(pos.X, pos.Y, size.Width, size.Height); err != nil {
			log.Debug("overlay not positioned", "error", err)
		}
	}
	o.show(ow.window)

	if o.tip.AutoClose > 0 && o.sched != nil {
		id := ow.id
		ow.cancel = o.sched.After(o.tip.AutoClose, func() { o.closeIfCurrent(id) })
	}

	o.current = ow
	log.Debug("preview shown", "id", ow.id, "lines", len(lines), "x", pos.X, "y", pos.Y,
		"w", size.Width, "h", size.Height)
	return ow.id
}

// Close closes the open overlay, if any
func (o *PreviewOverlay) Close() {
	ow := o.current
	if ow == nil {
		return
	}
	o.current = nil

	if ow.cancel != nil {
		ow.cancel()
	}
	if ow.native != nil {
		ow.native.Detach()
	}
	ow.window.Close()
}

// Current returns the identifier of the open overlay, or "" when none is open
func (o *PreviewOverlay) Current() string {
	if o.current == nil {
		return ""
	}
	return o.current.id
}

// Window returns the open overlay window, or nil
func (o *PreviewOverlay) Window() fyne.Window {
	if o.current == nil {
		return nil
	}
	return o.current.window
}

// closeIfCurrent ignores timers belonging to an overlay that was already replaced
func (o *PreviewOverlay) closeIfCurrent(id string) {
	if o.current == nil || o.current.id != id {
		log.Debug("stale preview timer ignored", "id", id)
		return
	}
	o.Close()
}

// render draws the lines top-aligned inside a bordered panel
func (o *PreviewOverlay) render(lines []string) fyne.CanvasObject {
	bg := canvas.NewRectangle(o.background)
	bg.StrokeColor = OverlayBorderColor
	bg.StrokeWidth = OverlayBorderWidth

	textSize := float32(o.tip.FontSize) * PointsToUnits
	rows := make([]fyne.CanvasObject, 0, len(lines))
	for _, line := range lines {
		t := canvas.NewText(line, OverlayTextColor)
		t.TextSize = textSize
		rows = append(rows, t)
	}

	body := container.New(
		layout.NewCustomPaddedLayout(preview.PaddingTop, preview.PaddingBottom, preview.PaddingSide, preview.PaddingSide),
		container.NewVBox(rows...),
	)
	return container.NewStack(bg, body)
}
