package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentMatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_agent_intent_matches_total",
			Help: "Utterances routed, by route and whether the fallback was used",
		},
		[]string{"route", "fallback"},
	)

	DispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_agent_dispatch_total",
			Help: "Data Service dispatches by route and outcome",
		},
		[]string{"route", "outcome"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hr_agent_dispatch_duration_seconds",
			Help:    "Duration of Data Service dispatches in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hr_agent_http_requests_total",
			Help: "HTTP requests by method, route template and status",
		},
		[]string{"method", "path", "status"},
	)
)

// Dispatch outcomes
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)
