// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package metrics defines the Prometheus collectors for page behaviors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a countdown start, used as the "outcome" label.
const (
	OutcomeFresh       = "fresh"
	OutcomeResumed     = "resumed"
	OutcomeStale       = "stale"
	OutcomeMalformed   = "malformed"
	OutcomeUnavailable = "unavailable"
)

var (
	CountdownRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "landing_countdown_remaining_seconds",
		Help: "Seconds left on the current offer countdown",
	})

	CountdownStarts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_countdown_starts_total",
			Help: "Countdown starts by how the expiry was reconciled",
		},
		[]string{"outcome"},
	)

	CountdownExpirations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landing_countdown_expirations_total",
		Help: "Number of countdowns that reached zero",
	})

	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_store_errors_total",
			Help: "Durable store failures by operation",
		},
		[]string{"op"},
	)

	PopupsShown = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "landing_popups_shown_total",
		Help: "Number of social proof popups shown",
	})
)

// Collectors returns every collector defined here, for registration.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		CountdownRemaining,
		CountdownStarts,
		CountdownExpirations,
		StoreErrors,
		PopupsShown,
	}
}
