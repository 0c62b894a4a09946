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

// Planner Metrics
var (
	PlannerQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlannerQueries,
			Help: HelpTextPlannerQueries,
		},
		[]string{LabelQuery},
	)

	PlannerQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNamePlannerQueryDuration,
			Help:    HelpTextPlannerQueryDuration,
			Buckets: PlannerLatencyBuckets,
		},
		[]string{LabelQuery},
	)

	CycleGuardHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCycleGuardHits,
			Help: HelpTextCycleGuardHits,
		},
	)

	UnknownItems = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnknownItems,
			Help: HelpTextUnknownItems,
		},
	)

	BuildingCorrections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBuildingCorrections,
			Help: HelpTextBuildingCorrections,
		},
	)
)

// Catalog and Session Metrics
var (
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsEvicted,
			Help: HelpTextSessionsEvicted,
		},
	)
)
