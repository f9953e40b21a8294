package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Identity
const (
	AppID        = "io.github.filerelay.dock"
	InstanceName = "FileRelayDock_SingleInstance"
)

// Text fragments
const (
	CountFormat = "%d"
)

// Drag gesture. Squared distance in pixels the pointer must travel with the
// primary button held before a drag starts.
const (
	DragThresholdSq float32 = 25
)

// Preview overlay drawing
const (
	OverlayBorderWidth float32 = 1
	PointsToUnits      float32 = 96.0 / 72.0
)

// Startup
const (
	// NativeSetupDelay lets the driver finish creating the window before
	// its native handle is resolved.
	NativeSetupDelay = 50 * time.Millisecond
)
