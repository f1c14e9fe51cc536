// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package banner reveals the floating call-to-action banner after a delay
// and hands control to the countdown.
package banner

import (
	"sync"
	"time"

	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/sirupsen/logrus"
)

// Starter is what the gate triggers once the banner is shown.
type Starter interface {
	Start()
}

// Gate is a one-shot delay. It never retries and is never cancelled.
type Gate struct {
	delay   time.Duration
	sched   timing.Scheduler
	banner  *page.Element
	starter Starter

	once sync.Once
}

// NewGate creates a gate. banner may be nil when the page has no floating
// banner; the countdown still starts.
func NewGate(delay time.Duration, sched timing.Scheduler, banner *page.Element, starter Starter) *Gate {
	return &Gate{
		delay:   delay,
		sched:   sched,
		banner:  banner,
		starter: starter,
	}
}

// Open schedules the reveal. Only the first call has any effect.
func (g *Gate) Open() {
	g.once.Do(func() {
		logrus.Debugf("banner reveal scheduled in %v", g.delay)
		g.sched.AfterFunc(g.delay, g.fire)
	})
}

func (g *Gate) fire() {
	if g.banner != nil {
		g.banner.RemoveClass(page.BannerHiddenClass)
		g.banner.AddClass(page.BannerShownClass)
	}
	logrus.Info("floating banner shown, starting countdown")
	g.starter.Start()
}
