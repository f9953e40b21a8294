package platform

import (
	"image/color"
	"testing"
)

func TestColorRef(t *testing.T) {
	tests := []struct {
		c        color.NRGBA
		expected uint32
	}{
		{color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}, 0x202020},
		{color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}, 0x563412},
		{color.NRGBA{R: 0xff}, 0x0000ff},
	}

	for _, test := range tests {
		if got := colorRef(test.c); got != test.expected {
			t.Errorf("colorRef(%v) = %#06x, expected %#06x", test.c, got, test.expected)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 110, Bottom: 70}
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("Expected 100x50, got %dx%d", r.Width(), r.Height())
	}
}
