// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"
)

type Countdown struct {
	source CountdownSource
}

func NewCountdown(source CountdownSource) *Countdown {
	return &Countdown{source: source}
}

// Get returns the engine's current phase, expiry and display.
func (c *Countdown) Get(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, c.source.Snapshot())
}
