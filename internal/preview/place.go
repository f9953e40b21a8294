package preview

// bottomTolerance allows a taskbar that stops a pixel or two short of the
// screen edge to still count as docked at the bottom.
const bottomTolerance = 2

// Place centres an overlay of the given size horizontally on screen and puts
// it margin pixels above a bottom taskbar. Without a bottom taskbar it sits
// margin pixels above the screen's bottom edge. The result is clamped so the
// overlay stays on screen.
func Place(size Size, screen Rect, taskbar *Rect, margin int) Point {
	x := screen.Left + (screen.Width()-size.Width)/2
	y := screen.Bottom - size.Height - margin

	if taskbar != nil && taskbar.Width() >= taskbar.Height() && taskbar.Bottom >= screen.Bottom-bottomTolerance {
		y = taskbar.Top - size.Height - margin
	}

	x = clamp(x, screen.Left, screen.Right-size.Width)
	y = clamp(y, screen.Top, screen.Bottom-size.Height)
	return Point{X: x, Y: y}
}

// clamp pins v into [lo, hi], preferring lo when the range is empty.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
