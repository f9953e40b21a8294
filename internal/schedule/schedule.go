// Package schedule provides timers whose callbacks run on the UI goroutine.
//
// The dock is single threaded: every handler, timer tick and paint runs on the
// fyne main goroutine. Timers here use goroutines only to wait; the callback
// itself is always posted back through the supplied post function.
package schedule

import (
	"sync"
	"time"
)

// Cancel stops a scheduled callback. Calling it more than once is allowed.
type Cancel func()

// Scheduler registers periodic and one-shot callbacks.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Cancel
	After(delay time.Duration, fn func()) Cancel
}

// UIScheduler posts callbacks to the UI goroutine, typically with fyne.Do.
type UIScheduler struct {
	post func(func())
}

// NewUIScheduler creates a scheduler that delivers callbacks through post.
func NewUIScheduler(post func(func())) *UIScheduler {
	return &UIScheduler{post: post}
}

// Every runs fn each interval until cancelled. A non-positive interval
// schedules nothing.
func (s *UIScheduler) Every(interval time.Duration, fn func()) Cancel {
	if interval <= 0 {
		return func() {}
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	var once sync.Once

	go func() {
		for {
			select {
			case <-ticker.C:
				s.post(fn)
			case <-done:
				return
			}
		}
	}()

	return func() {
		once.Do(func() {
			ticker.Stop()
			close(done)
		})
	}
}

// After runs fn once after delay unless cancelled first. A non-positive delay
// schedules nothing.
func (s *UIScheduler) After(delay time.Duration, fn func()) Cancel {
	if delay <= 0 {
		return func() {}
	}

	var mu sync.Mutex
	cancelled := false
	timer := time.AfterFunc(delay, func() {
		s.post(func() {
			mu.Lock()
			skip := cancelled
			mu.Unlock()
			if !skip {
				fn()
			}
		})
	})

	return func() {
		mu.Lock()
		cancelled = true
		mu.Unlock()
		timer.Stop()
	}
}
