//go:build !windows

package platform

import (
	"github.com/gen2brain/beeep"
)

// ShowInfo posts a desktop notification. There is no blocking dialog before
// the UI exists, so a notification stands in for one.
func ShowInfo(title, message string) error {
	err := beeep.Notify(title, message, "")
	if err != nil {
		log.Debug("notification failed", "error", err)
	}
	return err
}
