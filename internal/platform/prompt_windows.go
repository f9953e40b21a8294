//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// MessageBox styles
const (
	mbOK              = 0x00000000
	mbIconInformation = 0x00000040
	mbTopmost         = 0x00040000
)

// ShowInfo shows a blocking information box.
func ShowInfo(title, message string) error {
	t, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	m, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, m, t, mbOK|mbIconInformation|mbTopmost)
	return err
}
