// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package bootstrap

import (
	"context"

	"github.com/AccelByte/extend-landing-promo/pkg/banner"
	"github.com/AccelByte/extend-landing-promo/pkg/countdown"
	"github.com/AccelByte/extend-landing-promo/pkg/landing"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/popup"
	"github.com/AccelByte/extend-landing-promo/pkg/store"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/sirupsen/logrus"
)

// Behaviors are the page's time-driven components.
type Behaviors struct {
	Countdown *countdown.Engine
	Gate      *banner.Gate
	Popups    *popup.Queue
}

// InitBehaviors wires the countdown, the banner gate and the popup queue
// to the document. Callbacks run on sched; hand it a timing.Loop in
// production so they never overlap.
//
// ============================================================
// DEVELOPER: Start order
// ============================================================
// Nothing runs until Open/Run are called:
//   Gate.Open()  → banner shown after banner.visibility_delay,
//                  then Countdown.Start()
//   Popups.Run() → first popup after popups.initial_delay
// The countdown is only ever started by the gate (and by its own
// restart timer afterwards).
// ============================================================
func InitBehaviors(
	ctx context.Context,
	cfg *landing.Config,
	doc *page.Document,
	clock timing.Clock,
	sched timing.Scheduler,
	st store.Store,
) *Behaviors {
	// Missing elements must stay untyped nils so the behaviors can
	// detect and skip them.
	var displays countdown.Displays
	if el := doc.GetElementByID(page.InlineTimerID); el != nil {
		displays.Inline = el
	}
	if el := doc.GetElementByID(page.FixedTimerID); el != nil {
		displays.Fixed = el
	}
	if displays.Inline == nil && displays.Fixed == nil {
		logrus.Warn("page has no timer display; countdown will run without rendering")
	}

	engine := countdown.NewEngine(ctx, cfg.CountdownSettings(), clock, sched, st, displays)

	gate := banner.NewGate(cfg.Banner.VisibilityDelay, sched, doc.GetElementByID(page.FixedBannerID), engine)

	var container popup.Container
	if el := doc.GetElementByID(page.PopupContainerID); el != nil {
		container = el
	}
	queue := popup.NewQueue(cfg.PopupSettings(), sched, container)

	logrus.Infof("initialized countdown (%v, restart after %v), banner gate (%v) and popup queue (%d names)",
		cfg.Countdown.Duration, cfg.Countdown.RestartDelay, cfg.Banner.VisibilityDelay, len(cfg.Popups.Names))

	return &Behaviors{
		Countdown: engine,
		Gate:      gate,
		Popups:    queue,
	}
}

// Open starts the gate and the popup loop. It must run on the
// scheduler's thread.
func (b *Behaviors) Open() {
	b.Gate.Open()
	b.Popups.Run()
}

// Stop cancels every pending timer. The persisted expiry is kept.
func (b *Behaviors) Stop() {
	b.Popups.Stop()
	b.Countdown.Stop()
}
