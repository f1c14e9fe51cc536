// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package handler serves the landing page state over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AccelByte/extend-landing-promo/pkg/countdown"
	"github.com/AccelByte/extend-landing-promo/pkg/page"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// CountdownSource exposes the countdown state. *countdown.Engine satisfies it.
type CountdownSource interface {
	Snapshot() countdown.Snapshot
}

// HealthSource reports whether the durable store is reachable.
// *store.HealthChecker satisfies it.
type HealthSource interface {
	IsHealthy(ctx context.Context) bool
}

// errorResponse is the body of every non-2xx JSON reply.
type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter wires every endpoint onto a fresh router.
func NewRouter(doc *page.Document, cd CountdownSource, health HealthSource) *mux.Router {
	r := mux.NewRouter()

	pages := NewPage(doc)
	r.HandleFunc("/api/v1/page", pages.List).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/page/elements/{id}", pages.Element).Methods(http.MethodGet)

	r.HandleFunc("/api/v1/countdown", NewCountdown(cd).Get).Methods(http.MethodGet)
	r.HandleFunc("/healthz", NewHealth(health).Get).Methods(http.MethodGet)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
