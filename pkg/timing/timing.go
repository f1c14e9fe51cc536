// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package timing provides the clock and the callback scheduler that every
// page behavior runs on. All scheduled callbacks execute on one logical
// thread, so components never need to coordinate with each other.
package timing

import (
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Handle is a scheduled callback that can be cancelled.
// Cancel is idempotent.
type Handle interface {
	Cancel()
}

// Scheduler runs callbacks after a delay or repeatedly.
type Scheduler interface {
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Handle
	// Every runs fn every d until the handle is cancelled.
	Every(d time.Duration, fn func()) Handle
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// UnixSeconds returns the clock's current time as whole seconds since the epoch.
func UnixSeconds(c Clock) int64 {
	return c.Now().Unix()
}
