// Package guardian keeps the dock visible and in its configured z-order.
//
// "Show desktop", minimise requests and full-screen capture overlays can all
// hide the dock. The guardian undoes that on a fixed interval and, through a
// native hook, vetoes hide requests as they arrive.
package guardian

import (
	"time"

	"github.com/filerelay/filerelay-dock/internal/logger"
	"github.com/filerelay/filerelay-dock/internal/schedule"
)

// Window is the native window state the guardian repairs. Implementations
// must only change visibility and z-order, never position or size.
type Window interface {
	Minimized() bool
	Visible() bool
	ShowNoActivate() error
	SetTopmost(topmost bool) error
}

// Guardian restores a window it watches. It is not safe for concurrent use;
// every method runs on the UI goroutine.
type Guardian struct {
	win      Window
	topmost  bool
	interval time.Duration
	stopped  bool
	cancel   schedule.Cancel
}

var log = logger.ComponentLogger("guardian")

// New creates a guardian for win. A zero interval disables periodic healing;
// hide vetoes still apply.
func New(win Window, topmost bool, interval time.Duration) *Guardian {
	return &Guardian{win: win, topmost: topmost, interval: interval}
}

// Heal restores a minimised or hidden window without activating it, then
// re-asserts the z-order. Failures are logged and otherwise ignored; the next
// tick retries.
func (g *Guardian) Heal() {
	if g.win == nil {
		return
	}

	if g.win.Minimized() || !g.win.Visible() {
		if err := g.win.ShowNoActivate(); err != nil {
			log.Debug("restore failed", "error", err)
		}
	}
	if err := g.win.SetTopmost(g.topmost); err != nil {
		log.Debug("z-order failed", "topmost", g.topmost, "error", err)
	}
}

// Start heals on every tick of the configured interval. Calling Start again
// replaces the previous schedule.
func (g *Guardian) Start(s schedule.Scheduler) schedule.Cancel {
	g.stopCancel()
	g.stopped = false
	if g.interval <= 0 {
		log.Info("periodic healing disabled")
		return func() {}
	}

	g.cancel = s.Every(g.interval, g.Heal)
	log.Debug("healing started", "interval", g.interval)
	return g.Stop
}

// Stop cancels periodic healing and stops vetoing hide requests so the window
// can close during shutdown.
func (g *Guardian) Stop() {
	g.stopped = true
	g.stopCancel()
}

// VetoHide is called synchronously when the window is asked to minimise or
// hide. It heals and reports true to swallow the request, unless the guardian
// was stopped.
func (g *Guardian) VetoHide() bool {
	if g.stopped {
		return false
	}
	g.Heal()
	return true
}

func (g *Guardian) stopCancel() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}
