// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package timing

import (
	"sync"
	"time"
)

// Manual is a virtual clock and scheduler. Time only moves on Advance, and
// due callbacks run on the caller's goroutine in due-time order.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	owner     *Manual
	seq       uint64
	due       time.Time
	interval  time.Duration
	fn        func()
	cancelled bool
}

// NewManual creates a virtual clock starting at now.
func NewManual(now time.Time) *Manual {
	return &Manual{now: now}
}

// NewManualUnix creates a virtual clock starting at sec seconds since the epoch.
func NewManualUnix(sec int64) *Manual {
	return NewManual(time.Unix(sec, 0))
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *Manual) AfterFunc(d time.Duration, fn func()) Handle {
	return m.add(d, 0, fn)
}

func (m *Manual) Every(d time.Duration, fn func()) Handle {
	return m.add(d, d, fn)
}

func (m *Manual) add(d, interval time.Duration, fn func()) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{
		owner:    m,
		seq:      m.seq,
		due:      m.now.Add(d),
		interval: interval,
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, running every callback that falls due.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		m.mu.Unlock()

		next.fn()

		if next.interval > 0 {
			m.mu.Lock()
			if !next.cancelled {
				m.seq++
				next.seq = m.seq
				next.due = next.due.Add(next.interval)
				m.timers = append(m.timers, next)
			}
			m.mu.Unlock()
		}
	}
}

// AdvanceSeconds is Advance in whole seconds.
func (m *Manual) AdvanceSeconds(sec int64) {
	m.Advance(time.Duration(sec) * time.Second)
}

// Pending returns the number of scheduled, uncancelled callbacks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// popDue removes and returns the earliest timer due at or before target.
func (m *Manual) popDue(target time.Time) *manualTimer {
	idx := -1
	for i, t := range m.timers {
		if t.due.After(target) {
			continue
		}
		if idx == -1 || t.due.Before(m.timers[idx].due) ||
			(t.due.Equal(m.timers[idx].due) && t.seq < m.timers[idx].seq) {
			idx = i
		}
	}
	if idx == -1 {
		return nil
	}
	t := m.timers[idx]
	m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
	return t
}

func (t *manualTimer) Cancel() {
	m := t.owner
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.cancelled {
		return
	}
	t.cancelled = true
	for i, other := range m.timers {
		if other == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return
		}
	}
}
