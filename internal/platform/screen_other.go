//go:build !windows

package platform

// Fallback screen size when no monitor information is available
const (
	FallbackScreenWidth  = 1920
	FallbackScreenHeight = 1080
)

// ScreenBounds returns a nominal full HD screen; fyne exposes no monitor
// geometry outside the native driver.
func ScreenBounds() Rect {
	return Rect{Right: FallbackScreenWidth, Bottom: FallbackScreenHeight}
}

// TaskbarBounds is unknown off Windows.
func TaskbarBounds() (Rect, bool) {
	return Rect{}, false
}

// ControlKeyDown cannot sample the keyboard off Windows; callers fall back to
// key events seen by the canvas.
func ControlKeyDown() (held, ok bool) {
	return false, false
}
