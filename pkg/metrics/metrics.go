// Package metrics exposes Prometheus collectors for the scheduling service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interview_scheduler",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests processed.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "interview_scheduler",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	// SchedulingDecisions counts validator outcomes by decision code.
	SchedulingDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "interview_scheduler",
		Subsystem: "scheduling",
		Name:      "decisions_total",
		Help:      "Scheduling validator decisions by outcome.",
	}, []string{"decision"})
)
