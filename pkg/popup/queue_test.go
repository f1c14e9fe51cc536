// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package popup

import (
	"testing"
	"time"

	"github.com/AccelByte/extend-landing-promo/pkg/metrics"
	"github.com/AccelByte/extend-landing-promo/pkg/page"
	"github.com/AccelByte/extend-landing-promo/pkg/timing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func sequencePicker(indexes ...int) func(int) int {
	i := 0
	return func(n int) int {
		idx := indexes[i%len(indexes)] % n
		i++
		return idx
	}
}

func TestQueue_ShowHideCycle(t *testing.T) {
	clock := timing.NewManualUnix(0)
	container := page.NewElement(page.PopupContainerID)
	q := NewQueue(DefaultConfig(), clock, container, WithPicker(sequencePicker(0, 1)))

	q.Run()

	clock.Advance(3999 * time.Millisecond)
	if got := len(container.Children()); got != 0 {
		t.Fatalf("children before initial delay = %d, expected 0", got)
	}

	clock.Advance(time.Millisecond)
	children := container.Children()
	if len(children) != 1 {
		t.Fatalf("children at 4000ms = %d, expected 1", len(children))
	}
	first := children[0]
	if got := first.Text(); got != "Arif just registered" {
		t.Errorf("popup text = %q, expected \"Arif just registered\"", got)
	}
	if !first.HasClass(PopupClass) || !first.HasClass(ShowClass) {
		t.Errorf("popup classes = %v, expected %s and %s", first.Classes(), PopupClass, ShowClass)
	}

	clock.Advance(2999 * time.Millisecond)
	if !first.HasClass(ShowClass) {
		t.Error("popup hidden before display duration elapsed")
	}

	clock.Advance(time.Millisecond)
	if first.HasClass(ShowClass) || !first.HasClass(HideClass) {
		t.Errorf("popup classes at 7000ms = %v, expected %s", first.Classes(), HideClass)
	}
	if !container.Contains(first) {
		t.Error("popup removed before hide transition finished")
	}

	clock.Advance(499 * time.Millisecond)
	if !container.Contains(first) {
		t.Error("popup removed before hide transition finished")
	}

	// The next popup appears in the same instant the previous one is removed.
	clock.Advance(time.Millisecond)
	children = container.Children()
	if len(children) != 1 {
		t.Fatalf("children at 7500ms = %d, expected 1", len(children))
	}
	if children[0] == first {
		t.Fatal("first popup still attached at 7500ms")
	}
	if got := children[0].Text(); got != "Suma just registered" {
		t.Errorf("second popup text = %q, expected \"Suma just registered\"", got)
	}
	if !children[0].HasClass(ShowClass) {
		t.Error("second popup not shown")
	}
	if q.Shown() != 2 {
		t.Errorf("Shown() = %d, expected 2", q.Shown())
	}
}

func TestQueue_AtMostOneVisible(t *testing.T) {
	clock := timing.NewManualUnix(0)
	container := page.NewElement(page.PopupContainerID)
	q := NewQueue(DefaultConfig(), clock, container)
	q.Run()

	for i := 0; i < 200; i++ {
		clock.Advance(250 * time.Millisecond)
		if got := len(container.Children()); got > 1 {
			t.Fatalf("step %d: %d popups attached, expected at most 1", i, got)
		}
		if got := clock.Pending(); got != 1 {
			t.Fatalf("step %d: Pending() = %d, expected 1", i, got)
		}
	}

	// 50s total: first popup at 4s, then one every 3.5s.
	if got := q.Shown(); got != 14 {
		t.Errorf("Shown() = %d, expected 14", got)
	}
}

func TestQueue_MissingContainer(t *testing.T) {
	clock := timing.NewManualUnix(0)
	q := NewQueue(DefaultConfig(), clock, nil)

	q.Run()
	if got := clock.Pending(); got != 0 {
		t.Errorf("Pending() = %d, expected 0", got)
	}
	clock.AdvanceSeconds(60)
	if q.Shown() != 0 {
		t.Errorf("Shown() = %d, expected 0", q.Shown())
	}
}

func TestQueue_EmptyNamePool(t *testing.T) {
	clock := timing.NewManualUnix(0)
	cfg := DefaultConfig()
	cfg.Names = nil

	NewQueue(cfg, clock, page.NewElement(page.PopupContainerID)).Run()
	if got := clock.Pending(); got != 0 {
		t.Errorf("Pending() = %d, expected 0", got)
	}
}

func TestQueue_RunTwice(t *testing.T) {
	clock := timing.NewManualUnix(0)
	q := NewQueue(DefaultConfig(), clock, page.NewElement(page.PopupContainerID))

	q.Run()
	q.Run()
	if got := clock.Pending(); got != 1 {
		t.Errorf("Pending() = %d, expected 1", got)
	}
}

func TestQueue_Stop(t *testing.T) {
	clock := timing.NewManualUnix(0)
	container := page.NewElement(page.PopupContainerID)
	q := NewQueue(DefaultConfig(), clock, container)

	q.Run()
	clock.AdvanceSeconds(5)
	if q.Current() == nil {
		t.Fatal("Current() = nil, expected a popup on screen")
	}

	q.Stop()
	if got := len(container.Children()); got != 0 {
		t.Errorf("children after Stop = %d, expected 0", got)
	}
	if got := clock.Pending(); got != 0 {
		t.Errorf("Pending() after Stop = %d, expected 0", got)
	}
	if q.Current() != nil {
		t.Error("Current() != nil after Stop")
	}
}

func TestQueue_Metrics(t *testing.T) {
	before := testutil.ToFloat64(metrics.PopupsShown)

	clock := timing.NewManualUnix(0)
	q := NewQueue(DefaultConfig(), clock, page.NewElement(page.PopupContainerID))
	q.Run()
	clock.Advance(7500 * time.Millisecond)

	if got := testutil.ToFloat64(metrics.PopupsShown); got != before+2 {
		t.Errorf("popups shown = %v, expected %v", got, before+2)
	}
}

func TestDefaultNames(t *testing.T) {
	names := DefaultNames()
	if len(names) != 50 {
		t.Fatalf("len(DefaultNames()) = %d, expected 50", len(names))
	}

	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate name %q", n)
		}
		seen[n] = true
	}

	names[0] = "changed"
	if DefaultNames()[0] != "Arif" {
		t.Error("DefaultNames() exposes the shared pool")
	}
}
