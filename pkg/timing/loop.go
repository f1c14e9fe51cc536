// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package timing

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultLoopBuffer = 64

// Loop executes posted callbacks one at a time on a single goroutine.
// Timers created through the loop only post work to it, so every callback
// observes the effects of the ones before it.
type Loop struct {
	SystemClock

	tasks chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop. Callbacks posted before Run are buffered.
func NewLoop() *Loop {
	return &Loop{
		tasks: make(chan func(), defaultLoopBuffer),
		done:  make(chan struct{}),
	}
}

// Run executes callbacks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.tasks:
			l.execute(fn)
		}
	}
}

// Post queues fn for execution. It returns false if the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("recovered panic in loop callback: %v", r)
		}
	}()
	fn()
}

// AfterFunc schedules fn on the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	h := &loopHandle{}
	h.timer = time.AfterFunc(d, func() {
		l.Post(h.guard(fn))
	})
	return h
}

// Every schedules fn on the loop every d.
func (l *Loop) Every(d time.Duration, fn func()) Handle {
	h := &loopHandle{stop: make(chan struct{})}
	ticker := time.NewTicker(d)
	guarded := h.guard(fn)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !l.Post(guarded) {
					return
				}
			case <-h.stop:
				return
			case <-l.done:
				return
			}
		}
	}()

	return h
}

type loopHandle struct {
	cancelled atomic.Bool
	timer     *time.Timer
	stop      chan struct{}
}

// guard drops callbacks that were already queued when the handle was cancelled.
func (h *loopHandle) guard(fn func()) func() {
	return func() {
		if h.cancelled.Load() {
			return
		}
		fn()
	}
}

func (h *loopHandle) Cancel() {
	if !h.cancelled.CompareAndSwap(false, true) {
		return
	}
	if h.timer != nil {
		h.timer.Stop()
	}
	if h.stop != nil {
		close(h.stop)
	}
}
