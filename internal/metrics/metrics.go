package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Preparation Metrics
var (
	PreparationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePreparationsTotal,
			Help: HelpTextPreparationsTotal,
		},
		[]string{LabelScope, LabelMode},
	)

	PreparationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePreparationDuration,
			Help:    HelpTextPreparationDuration,
			Buckets: PreparationLatencyBuckets,
		},
	)

	ShortagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShortagesTotal,
			Help: HelpTextShortagesTotal,
		},
		[]string{LabelReason},
	)

	ConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameConflictsTotal,
			Help: HelpTextConflictsTotal,
		},
		[]string{LabelOperation},
	)
)

// Pantry Metrics
var (
	PantryMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePantryMutationsTotal,
			Help: HelpTextPantryMutationsTotal,
		},
		[]string{LabelAction},
	)
)

// Activity Metrics
var (
	UserActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUserActionsTotal,
			Help: HelpTextUserActionsTotal,
		},
		[]string{LabelAction, LabelOutcome},
	)
)

// Security Metrics
var (
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAuthFailuresTotal,
			Help: HelpTextAuthFailuresTotal,
		},
	)

	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRateLimitedTotal,
			Help: HelpTextRateLimitedTotal,
		},
	)

	IdempotentReplaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameIdempotentReplaysTotal,
			Help: HelpTextIdempotentReplaysTotal,
		},
	)
)
