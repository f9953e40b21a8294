//go:build windows

package platform

import (
	"unsafe"
)

type appBarData struct {
	cbSize           uint32
	hWnd             uintptr
	uCallbackMessage uint32
	uEdge            uint32
	rc               struct{ Left, Top, Right, Bottom int32 }
	lParam           uintptr
}

// ScreenBounds returns the primary monitor in pixels.
func ScreenBounds() Rect {
	cx, _, _ := procGetSystemMetrics.Call(smCXScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCYScreen)
	return Rect{Right: int(int32(cx)), Bottom: int(int32(cy))}
}

// TaskbarBounds returns the shell taskbar rectangle. ok is false when the
// shell does not report one.
func TaskbarBounds() (r Rect, ok bool) {
	abd := appBarData{}
	abd.cbSize = uint32(unsafe.Sizeof(abd))
	ret, _, _ := procSHAppBarMessage.Call(abmGetTaskbarPos, uintptr(unsafe.Pointer(&abd)))
	if ret == 0 {
		return Rect{}, false
	}
	return Rect{
		Left:   int(abd.rc.Left),
		Top:    int(abd.rc.Top),
		Right:  int(abd.rc.Right),
		Bottom: int(abd.rc.Bottom),
	}, true
}

// ControlKeyDown samples the Control key at the time of the call.
func ControlKeyDown() (held, ok bool) {
	r, _, _ := procGetKeyState.Call(vkControl)
	return uint16(r)&keyDownMask != 0, true
}
