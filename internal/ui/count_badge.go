package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CountBadge fills the dock window and shows how many files are held. It
// forwards raw mouse and drag events so the dock can implement its gestures.
type CountBadge struct {
	widget.BaseWidget

	count      int
	background color.Color
	foreground color.Color
	textSize   float32

	// Callbacks
	onMouseDown func(*desktop.MouseEvent)
	onMouseUp   func(*desktop.MouseEvent)
	onDragged   func(*fyne.DragEvent)
	onDragEnd   func()
}

var (
	_ desktop.Mouseable = (*CountBadge)(nil)
	_ fyne.Draggable    = (*CountBadge)(nil)
)

// NewCountBadge creates a badge with the given colours and text size
func NewCountBadge(background, foreground color.Color, textSize float32) *CountBadge {
	b := &CountBadge{
		background: background,
		foreground: foreground,
		textSize:   textSize,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetCallbacks sets the input callbacks; nil callbacks are ignored
func (b *CountBadge) SetCallbacks(
	onMouseDown func(*desktop.MouseEvent),
	onMouseUp func(*desktop.MouseEvent),
	onDragged func(*fyne.DragEvent),
	onDragEnd func(),
) {
	b.onMouseDown = onMouseDown
	b.onMouseUp = onMouseUp
	b.onDragged = onDragged
	b.onDragEnd = onDragEnd
}

// SetCount updates the displayed number
func (b *CountBadge) SetCount(n int) {
	if b.count == n {
		return
	}
	b.count = n
	b.Refresh()
}

// Count returns the displayed number
func (b *CountBadge) Count() int {
	return b.count
}

// Text returns the label as drawn
func (b *CountBadge) Text() string {
	return fmt.Sprintf(CountFormat, b.count)
}

// MouseDown implements desktop.Mouseable
func (b *CountBadge) MouseDown(ev *desktop.MouseEvent) {
	if b.onMouseDown != nil {
		b.onMouseDown(ev)
	}
}

// MouseUp implements desktop.Mouseable
func (b *CountBadge) MouseUp(ev *desktop.MouseEvent) {
	if b.onMouseUp != nil {
		b.onMouseUp(ev)
	}
}

// Dragged implements fyne.Draggable
func (b *CountBadge) Dragged(ev *fyne.DragEvent) {
	if b.onDragged != nil {
		b.onDragged(ev)
	}
}

// DragEnd implements fyne.Draggable
func (b *CountBadge) DragEnd() {
	if b.onDragEnd != nil {
		b.onDragEnd()
	}
}

// CreateRenderer implements fyne.Widget
func (b *CountBadge) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.background)
	text := canvas.NewText(b.Text(), b.foreground)
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = b.textSize

	return &countBadgeRenderer{badge: b, bg: bg, text: text}
}

type countBadgeRenderer struct {
	badge *CountBadge
	bg    *canvas.Rectangle
	text  *canvas.Text
}

func (r *countBadgeRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	textSize := r.text.MinSize()
	r.text.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

func (r *countBadgeRenderer) MinSize() fyne.Size {
	return r.text.MinSize()
}

func (r *countBadgeRenderer) Refresh() {
	r.text.Text = r.badge.Text()
	r.text.Color = r.badge.foreground
	r.bg.FillColor = r.badge.background
	r.text.Refresh()
	r.bg.Refresh()
}

func (r *countBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *countBadgeRenderer) Destroy() {}
