package schedule

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. Callbacks run inline
// on the goroutine calling Advance, which makes it suitable for tests.
type Manual struct {
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	id       int
	due      time.Duration
	interval time.Duration
	fn       func()
	stopped  bool
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// Every implements Scheduler.
func (m *Manual) Every(interval time.Duration, fn func()) Cancel {
	if interval <= 0 {
		return func() {}
	}
	return m.add(interval, interval, fn)
}

// After implements Scheduler.
func (m *Manual) After(delay time.Duration, fn func()) Cancel {
	if delay <= 0 {
		return func() {}
	}
	return m.add(delay, 0, fn)
}

func (m *Manual) add(delay, interval time.Duration, fn func()) Cancel {
	m.seq++
	t := &manualTask{id: m.seq, due: m.now + delay, interval: interval, fn: fn}
	m.tasks = append(m.tasks, t)
	return func() { t.stopped = true }
}

// Pending returns the number of live scheduled callbacks.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock forward and fires every callback that falls due, in
// due-time order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			next.stopped = true
		}
		next.fn()
	}
	m.now = target
	m.compact()
}

func (m *Manual) nextDue(limit time.Duration) *manualTask {
	live := make([]*manualTask, 0, len(m.tasks))
	for _, t := range m.tasks {
		if !t.stopped && t.due <= limit {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due == live[j].due {
			return live[i].id < live[j].id
		}
		return live[i].due < live[j].due
	})
	return live[0]
}

func (m *Manual) compact() {
	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	m.tasks = kept
}
