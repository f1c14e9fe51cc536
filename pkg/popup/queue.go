// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package popup runs the social proof loop: one "<name> just registered"
// popup at a time, shown, hidden and replaced forever.
package popup

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/AccelByte/extend-landing-promo/pkg/metrics"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CSS classes applied to popup elements.
const (
	PopupClass = "social-proof-popup"
	IconClass  = "social-proof-icon"
	ShowClass  = "show"
	HideClass  = "hide"
)

// Container holds the popups. page.Element satisfies it.
type Container interface {
	AppendChild(child *page.Element)
	RemoveChild(child *page.Element) bool
}

// Config holds the queue timings and content.
type Config struct {
	InitialDelay    time.Duration
	DisplayDuration time.Duration
	HideDuration    time.Duration
	// MessageFormat receives the name as its single %s verb.
	MessageFormat string
	Names         []string
}

// DefaultConfig returns the stock timings with the built-in name pool.
func DefaultConfig() Config {
	return Config{
		InitialDelay:    4000 * time.Millisecond,
		DisplayDuration: 3000 * time.Millisecond,
		HideDuration:    500 * time.Millisecond,
		MessageFormat:   "%s just registered",
		Names:           DefaultNames(),
	}
}

// Task is the popup currently on screen.
type Task struct {
	ID      string
	Name    string
	Element *page.Element
}

// Queue shows popups one after another. Its callbacks run on the
// scheduler's thread; Stop may be called from anywhere.
type Queue struct {
	cfg       Config
	sched     timing.Scheduler
	container Container
	pick      func(n int) int
	log       *logrus.Entry

	mu      sync.Mutex
	running bool
	next    timing.Handle
	current *Task
	shown   int
}

// Option customizes a Queue.
type Option func(*Queue)

// WithPicker replaces the uniform random index picker.
func WithPicker(pick func(n int) int) Option {
	return func(q *Queue) {
		q.pick = pick
	}
}

// NewQueue creates a queue. container may be nil, in which case Run does
// nothing.
func NewQueue(cfg Config, sched timing.Scheduler, container Container, opts ...Option) *Queue {
	q := &Queue{
		cfg:       cfg,
		sched:     sched,
		container: container,
		pick:      rand.IntN,
		log:       logrus.WithField("component", "popup"),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Run starts the loop after the initial delay. It is a no-op without a
// container, without names, or when already running.
func (q *Queue) Run() {
	if q.container == nil || len(q.cfg.Names) == 0 {
		q.log.Debug("popup container or name pool missing, not starting")
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.running {
		return
	}
	q.running = true
	q.next = q.sched.AfterFunc(q.cfg.InitialDelay, q.show)
	q.log.Infof("popup loop starts in %v", q.cfg.InitialDelay)
}

// Stop cancels the pending step and removes the popup on screen.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.next != nil {
		q.next.Cancel()
		q.next = nil
	}
	if q.current != nil {
		q.container.RemoveChild(q.current.Element)
		q.current = nil
	}
	q.running = false
}

// Current returns the popup on screen, if any.
func (q *Queue) Current() *Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current
}

// Shown returns how many popups have been shown.
func (q *Queue) Shown() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.shown
}

func (q *Queue) show() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.running {
		return
	}

	name := q.cfg.Names[q.pick(len(q.cfg.Names))]
	task := q.newTask(name)

	q.container.AppendChild(task.Element)
	task.Element.AddClass(ShowClass)
	q.current = task
	q.shown++
	metrics.PopupsShown.Inc()
	q.log.Debugf("showing popup %s for %s", task.ID, name)

	q.next = q.sched.AfterFunc(q.cfg.DisplayDuration, q.hide)
}

func (q *Queue) hide() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.running || q.current == nil {
		return
	}

	q.current.Element.RemoveClass(ShowClass)
	q.current.Element.AddClass(HideClass)

	q.next = q.sched.AfterFunc(q.cfg.HideDuration, q.remove)
}

func (q *Queue) remove() {
	q.mu.Lock()
	if !q.running || q.current == nil {
		q.mu.Unlock()
		return
	}
	q.container.RemoveChild(q.current.Element)
	q.current = nil
	q.mu.Unlock()

	q.show()
}

func (q *Queue) newTask(name string) *Task {
	id := uuid.NewString()

	el := page.NewElement("popup-"+id, PopupClass)
	el.AppendChild(page.NewElement("popup-icon-"+id, IconClass))
	el.SetText(fmt.Sprintf(q.cfg.MessageFormat, name))

	return &Task{ID: id, Name: name, Element: el}
}
