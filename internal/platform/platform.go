package platform

import (
	"errors"
	"image/color"

	"github.com/filerelay/filerelay-dock/internal/logger"
)

var (
	// ErrUnsupported is returned by operations that have no implementation
	// on the current platform or for a window without a native handle.
	ErrUnsupported = errors.New("not supported on this platform")

	// ErrAlreadyRunning is returned by AcquireInstance when another copy
	// holds the instance lock.
	ErrAlreadyRunning = errors.New("another instance is already running")
)

// Rect is a screen rectangle in pixels; Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Bottom - r.Top }

// LayerStyle selects optional window transparency.
type LayerStyle struct {
	Layered     bool
	Alpha       uint8
	UseColorKey bool
	ColorKey    color.NRGBA
}

// colorRef packs c as a Win32 COLORREF (0x00BBGGRR).
func colorRef(c color.NRGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

var log = logger.ComponentLogger("platform")
