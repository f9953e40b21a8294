package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
)

func TestCountBadge_Render(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	b := NewCountBadge(color.White, color.Black, 16)
	w := test.NewWindow(b)
	defer w.Close()
	w.Resize(fyne.NewSize(60, 43))

	if b.Text() != "0" {
		t.Errorf("Expected initial text 0, got %q", b.Text())
	}

	b.SetCount(42)
	if b.Count() != 42 || b.Text() != "42" {
		t.Errorf("Expected 42, got count=%d text=%q", b.Count(), b.Text())
	}

	r := test.WidgetRenderer(b).(*countBadgeRenderer)
	if r.text.Text != "42" {
		t.Errorf("Expected rendered text 42, got %q", r.text.Text)
	}
	if r.bg.Size() != b.Size() {
		t.Errorf("Expected background to fill the badge, got %v vs %v", r.bg.Size(), b.Size())
	}
}

func TestCountBadge_ForwardsEvents(t *testing.T) {
	b := NewCountBadge(color.White, color.Black, 16)

	var downs, ups, drags, ends int
	b.SetCallbacks(
		func(*desktop.MouseEvent) { downs++ },
		func(*desktop.MouseEvent) { ups++ },
		func(*fyne.DragEvent) { drags++ },
		func() { ends++ },
	)

	b.MouseDown(&desktop.MouseEvent{})
	b.MouseUp(&desktop.MouseEvent{})
	b.Dragged(&fyne.DragEvent{})
	b.Dragged(&fyne.DragEvent{})
	b.DragEnd()

	if downs != 1 || ups != 1 || drags != 2 || ends != 1 {
		t.Errorf("Unexpected event counts: down=%d up=%d drag=%d end=%d", downs, ups, drags, ends)
	}
}

func TestCountBadge_NilCallbacks(t *testing.T) {
	b := NewCountBadge(color.White, color.Black, 16)
	b.MouseDown(&desktop.MouseEvent{})
	b.MouseUp(&desktop.MouseEvent{})
	b.Dragged(&fyne.DragEvent{})
	b.DragEnd()
}
