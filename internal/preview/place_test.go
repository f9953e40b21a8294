package preview

import "testing"

func TestPlace(t *testing.T) {
	screen := Rect{Right: 1920, Bottom: 1080}
	size := Size{Width: 320, Height: 200}

	bottomBar := &Rect{Top: 1032, Right: 1920, Bottom: 1080}
	leftBar := &Rect{Right: 60, Bottom: 1080}
	topBar := &Rect{Right: 1920, Bottom: 40}

	tests := []struct {
		name     string
		size     Size
		taskbar  *Rect
		margin   int
		expected Point
	}{
		{"above bottom taskbar", size, bottomBar, 8, Point{X: 800, Y: 1032 - 200 - 8}},
		{"no taskbar info", size, nil, 8, Point{X: 800, Y: 1080 - 200 - 8}},
		{"vertical taskbar", size, leftBar, 8, Point{X: 800, Y: 1080 - 200 - 8}},
		{"top taskbar", size, topBar, 8, Point{X: 800, Y: 1080 - 200 - 8}},
		{"clamped to top", Size{Width: 320, Height: 1070}, bottomBar, 8, Point{X: 800, Y: 0}},
		{"wider than screen", Size{Width: 2500, Height: 100}, nil, 0, Point{X: 0, Y: 980}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Place(test.size, screen, test.taskbar, test.margin)
			if got != test.expected {
				t.Errorf("Place = %+v, expected %+v", got, test.expected)
			}
		})
	}
}

func TestPlace_OffsetScreen(t *testing.T) {
	screen := Rect{Left: 100, Top: 50, Right: 1100, Bottom: 850}
	bar := &Rect{Left: 100, Top: 810, Right: 1100, Bottom: 850}

	got := Place(Size{Width: 200, Height: 100}, screen, bar, 10)
	expected := Point{X: 500, Y: 810 - 100 - 10}
	if got != expected {
		t.Errorf("Place = %+v, expected %+v", got, expected)
	}
}
