package ui

import (
	"testing"

	"fyne.io/fyne/v2/driver/desktop"
)

func TestKeyTracker_PrefersNative(t *testing.T) {
	k := newKeyTracker(func() (bool, bool) { return true, true })
	k.held = false
	if !k.ControlHeld() {
		t.Error("Expected native sample to win")
	}
}

func TestKeyTracker_FallsBackToEvents(t *testing.T) {
	k := newKeyTracker(func() (bool, bool) { return false, false })
	if k.ControlHeld() {
		t.Error("Expected Control released initially")
	}
	k.held = true
	if !k.ControlHeld() {
		t.Error("Expected tracked key state when native is unavailable")
	}
}

func TestIsControlKey(t *testing.T) {
	if !isControlKey(desktop.KeyControlLeft) || !isControlKey(desktop.KeyControlRight) {
		t.Error("Expected both Control keys recognised")
	}
	if isControlKey(desktop.KeyShiftLeft) {
		t.Error("Shift is not Control")
	}
}
