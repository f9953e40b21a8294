//go:build !windows && !unix

package platform

// InstanceLock is a placeholder where no process-wide lock is available.
type InstanceLock struct{}

// AcquireInstance always succeeds.
func AcquireInstance(string) (*InstanceLock, error) {
	return &InstanceLock{}, nil
}

// Release does nothing.
func (l *InstanceLock) Release() {}
