// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
}

// Health answers liveness probes with the store's reachability.
type Health struct {
	source HealthSource
}

func NewHealth(source HealthSource) *Health {
	return &Health{source: source}
}

func (h *Health) Get(w http.ResponseWriter, r *http.Request) {
	if !h.source.IsHealthy(r.Context()) {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
