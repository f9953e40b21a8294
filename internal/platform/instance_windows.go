//go:build windows

package platform

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

// InstanceLock holds the single-instance mutex for the session.
type InstanceLock struct {
	handle windows.Handle
}

// AcquireInstance creates the per-session named mutex. It returns
// ErrAlreadyRunning when another process already owns the name.
func AcquireInstance(name string) (*InstanceLock, error) {
	p, err := windows.UTF16PtrFromString(`Local\` + name)
	if err != nil {
		return nil, fmt.Errorf("instance name: %w", err)
	}

	h, err := windows.CreateMutex(nil, true, p)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			if h != 0 {
				windows.CloseHandle(h)
			}
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("create instance mutex: %w", err)
	}
	return &InstanceLock{handle: h}, nil
}

// Release frees the mutex. It must run on the thread that acquired it.
func (l *InstanceLock) Release() {
	if l == nil || l.handle == 0 {
		return
	}
	windows.ReleaseMutex(l.handle)
	windows.CloseHandle(l.handle)
	l.handle = 0
}
