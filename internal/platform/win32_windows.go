//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")
	shell32  = windows.NewLazySystemDLL("shell32.dll")
	ole32    = windows.NewLazySystemDLL("ole32.dll")
	comctl32 = windows.NewLazySystemDLL("comctl32.dll")

	procIsIconic                   = user32.NewProc("IsIconic")
	procIsWindowVisible            = user32.NewProc("IsWindowVisible")
	procShowWindow                 = user32.NewProc("ShowWindow")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
	procReleaseCapture             = user32.NewProc("ReleaseCapture")
	procGetKeyState                = user32.NewProc("GetKeyState")
	procGetSystemMetrics           = user32.NewProc("GetSystemMetrics")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procGetWindowLongW             = user32.NewProc("GetWindowLongW")
	procSetWindowLongW             = user32.NewProc("SetWindowLongW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")

	procSHAppBarMessage       = shell32.NewProc("SHAppBarMessage")
	procSHCreateStdEnumFmtEtc = shell32.NewProc("SHCreateStdEnumFmtEtc")

	procSetWindowSubclass    = comctl32.NewProc("SetWindowSubclass")
	procRemoveWindowSubclass = comctl32.NewProc("RemoveWindowSubclass")
	procDefSubclassProc      = comctl32.NewProc("DefSubclassProc")

	procOleInitialize   = ole32.NewProc("OleInitialize")
	procOleUninitialize = ole32.NewProc("OleUninitialize")
	procDoDragDrop      = ole32.NewProc("DoDragDrop")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
)

// Window messages
const (
	wmShowWindow = 0x0018
	wmNCDestroy  = 0x0082
	wmNCHitTest  = 0x0084
	wmSysCommand = 0x0112

	scMinimize = 0xF020
)

// HWND_TOPMOST and HWND_NOTOPMOST are -1 and -2
const (
	hwndTopmost   = ^uintptr(0)
	hwndNoTopmost = ^uintptr(1)

	htTransparent = ^uintptr(0)
)

// SetWindowPos flags
const (
	swpNoSize       = 0x0001
	swpNoMove       = 0x0002
	swpNoZOrder     = 0x0004
	swpNoActivate   = 0x0010
	swpFrameChanged = 0x0020
	swpShowWindow   = 0x0040
)

// ShowWindow commands
const (
	swHide           = 0
	swShowNoActivate = 4
)

// Extended window styles
const (
	gwlExStyle = ^uintptr(19) // GWL_EXSTYLE, -20

	wsExTopmost    = 0x00000008
	wsExToolWindow = 0x00000080
	wsExAppWindow  = 0x00040000
	wsExLayered    = 0x00080000
	wsExNoActivate = 0x08000000

	lwaColorKey = 0x1
	lwaAlpha    = 0x2
)

// Input and metrics
const (
	vkControl   = 0x11
	keyDownMask = 0x8000

	smCXScreen = 0
	smCYScreen = 1

	abmGetTaskbarPos = 5
)

// Global memory flags
const (
	ghnd      = 0x0042
	gmemShare = 0x2000
)

func getExStyle(hwnd uintptr) uintptr {
	proc := procGetWindowLongPtrW
	if proc.Find() != nil {
		proc = procGetWindowLongW
	}
	r, _, _ := proc.Call(hwnd, gwlExStyle)
	return r
}

func setExStyle(hwnd, style uintptr) {
	proc := procSetWindowLongPtrW
	if proc.Find() != nil {
		proc = procSetWindowLongW
	}
	proc.Call(hwnd, gwlExStyle, style)
}
