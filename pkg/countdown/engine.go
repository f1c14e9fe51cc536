// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package countdown implements the persistent offer countdown: a single
// expiry time kept in a durable store, rendered once per tick, and restarted
// after a cooldown every time it runs out.
package countdown

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/AccelByte/extend-landing-promo/pkg/common"
	"github.com/AccelByte/extend-landing-promo/pkg/metrics"
	"github.com/AccelByte/extend-landing-promo/pkg/store"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/sirupsen/logrus"
)

// Phase is the engine's lifecycle state.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseInitializing Phase = "initializing"
	PhaseRunning      Phase = "running"
	PhaseExpired      Phase = "expired"
)

// Display receives rendered countdown text.
type Display interface {
	SetText(text string)
}

// Displays are the two optional render targets. A nil target is skipped.
type Displays struct {
	Inline Display
	Fixed  Display
}

// Config holds the countdown settings.
type Config struct {
	StorageKey   string
	Duration     time.Duration
	RestartDelay time.Duration
	TickInterval time.Duration

	// InlineRunningLabel and InlineExpiredLabel prefix the inline display.
	InlineRunningLabel string
	InlineExpiredLabel string
}

// DefaultConfig returns the stock offer settings: a ten minute countdown
// that restarts five seconds after it runs out.
func DefaultConfig() Config {
	return Config{
		StorageKey:         "offerEndTime",
		Duration:           600 * time.Second,
		RestartDelay:       5000 * time.Millisecond,
		TickInterval:       time.Second,
		InlineRunningLabel: "অফার শেষ হচ্ছে: ",
		InlineExpiredLabel: "অফার শেষ: ",
	}
}

// Snapshot is a read-only view of the engine.
type Snapshot struct {
	Phase      Phase  `json:"phase"`
	ExpiryTime int64  `json:"expiryTime,omitempty"`
	Remaining  int64  `json:"remaining"`
	Display    string `json:"display"`
	Cycles     int    `json:"cycles"`
}

// Engine owns the single countdown. Hosts create exactly one per page.
//
// Start and the scheduled callbacks are expected to run on one logical
// thread (a timing.Loop); the mutex only guards Snapshot readers.
type Engine struct {
	ctx      context.Context
	cfg      Config
	clock    timing.Clock
	sched    timing.Scheduler
	store    store.Store
	displays Displays
	log      *logrus.Entry

	mu        sync.Mutex
	phase     Phase
	expiry    int64
	remaining int64
	display   string
	cycles    int
	tick      timing.Handle
	restart   timing.Handle
}

// NewEngine creates an idle engine.
func NewEngine(
	ctx context.Context,
	cfg Config,
	clock timing.Clock,
	sched timing.Scheduler,
	st store.Store,
	displays Displays,
) *Engine {
	return &Engine{
		ctx:      ctx,
		cfg:      cfg,
		clock:    clock,
		sched:    sched,
		store:    st,
		displays: displays,
		log:      logrus.WithField("component", "countdown"),
		phase:    PhaseIdle,
	}
}

// Start reconciles the persisted expiry and begins ticking. Calling Start
// on a live engine cancels the current tick and any pending restart first.
func (e *Engine) Start() {
	scope := common.NewScope(e.ctx, "countdown.start", e.log)
	defer scope.Finish()

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelTimersLocked()
	e.phase = PhaseInitializing

	now := timing.UnixSeconds(e.clock)
	expiry, outcome := e.reconcile(scope, now)
	metrics.CountdownStarts.WithLabelValues(outcome).Inc()

	e.expiry = expiry
	e.cycles++
	e.phase = PhaseRunning
	scope.SetAttributes("expiry_time", expiry)
	scope.SetAttributes("outcome", outcome)
	scope.Log.Infof("countdown running until %d (%s, %ds left)", expiry, outcome, expiry-now)

	e.tick = e.sched.Every(e.cfg.TickInterval, e.onTick)
	e.renderLocked(now)
}

// Stop cancels the tick and any pending restart and returns to idle.
// The persisted expiry is left in place so a later Start resumes it.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelTimersLocked()
	e.phase = PhaseIdle
	e.log.Info("countdown stopped")
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		Phase:      e.phase,
		ExpiryTime: e.expiry,
		Remaining:  e.remaining,
		Display:    e.display,
		Cycles:     e.cycles,
	}
}

// reconcile decides the expiry for a new cycle: a persisted expiry still in
// the future is adopted as-is, anything else is replaced by now+Duration.
func (e *Engine) reconcile(scope *common.Scope, now int64) (int64, string) {
	outcome := metrics.OutcomeFresh

	raw, found, err := e.store.Get(scope.Ctx, e.cfg.StorageKey)
	switch {
	case err != nil:
		metrics.StoreErrors.WithLabelValues("get").Inc()
		scope.TraceError(err)
		scope.Log.Warnf("store unavailable, starting a fresh countdown: %v", err)
		outcome = metrics.OutcomeUnavailable
	case found:
		saved, perr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if perr != nil {
			scope.Log.Warnf("discarding malformed expiry %q: %v", raw, perr)
			outcome = metrics.OutcomeMalformed
		} else if saved > now {
			return saved, metrics.OutcomeResumed
		} else {
			scope.Log.Debugf("discarding stale expiry %d (now %d)", saved, now)
			outcome = metrics.OutcomeStale
		}
	}

	expiry := now + int64(e.cfg.Duration/time.Second)
	if err := e.store.Set(scope.Ctx, e.cfg.StorageKey, strconv.FormatInt(expiry, 10)); err != nil {
		metrics.StoreErrors.WithLabelValues("set").Inc()
		scope.TraceError(err)
		scope.Log.Warnf("failed to persist expiry %d: %v", expiry, err)
	}
	return expiry, outcome
}

func (e *Engine) onTick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseRunning {
		return
	}
	e.renderLocked(timing.UnixSeconds(e.clock))
}

// renderLocked writes the remaining time, or runs expiry once it hits zero.
func (e *Engine) renderLocked(now int64) {
	remaining := e.expiry - now
	if remaining <= 0 {
		e.expireLocked()
		return
	}

	e.remaining = remaining
	e.display = FormatRemaining(remaining)
	metrics.CountdownRemaining.Set(float64(remaining))

	e.write(e.cfg.InlineRunningLabel+e.display, e.display)
}

func (e *Engine) expireLocked() {
	scope := common.NewScope(e.ctx, "countdown.expire", e.log)
	defer scope.Finish()

	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}

	e.remaining = 0
	e.display = ZeroDisplay
	metrics.CountdownRemaining.Set(0)
	e.write(e.cfg.InlineExpiredLabel+ZeroDisplay, ZeroDisplay)

	if err := e.store.Remove(scope.Ctx, e.cfg.StorageKey); err != nil {
		metrics.StoreErrors.WithLabelValues("remove").Inc()
		scope.TraceError(err)
		scope.Log.Warnf("failed to clear expiry: %v", err)
	}

	e.phase = PhaseExpired
	metrics.CountdownExpirations.Inc()
	scope.Log.Infof("countdown expired, restarting in %v", e.cfg.RestartDelay)

	e.restart = e.sched.AfterFunc(e.cfg.RestartDelay, e.Start)
}

func (e *Engine) write(inline, fixed string) {
	if e.displays.Inline != nil {
		e.displays.Inline.SetText(inline)
	}
	if e.displays.Fixed != nil {
		e.displays.Fixed.SetText(fixed)
	}
}

func (e *Engine) cancelTimersLocked() {
	if e.tick != nil {
		e.tick.Cancel()
		e.tick = nil
	}
	if e.restart != nil {
		e.restart.Cancel()
		e.restart = nil
	}
}
