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

// Ingestion Metrics
var (
	IngestRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIngestRunsTotal,
			Help: HelpTextIngestRunsTotal,
		},
		[]string{LabelResult},
	)

	IngestRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameIngestRunDuration,
			Help:    HelpTextIngestRunDuration,
			Buckets: PipelineLatencyBuckets,
		},
	)

	SnapshotsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsIngested,
			Help: HelpTextSnapshotsIngested,
		},
	)

	SnapshotsPruned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsPruned,
			Help: HelpTextSnapshotsPruned,
		},
	)

	ScrapeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScrapeFailures,
			Help: HelpTextScrapeFailures,
		},
	)
)

// Scoring Metrics
var (
	ScoringPassesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScoringPassesTotal,
			Help: HelpTextScoringPassesTotal,
		},
		[]string{LabelResult},
	)

	ScoringPassDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameScoringPassDuration,
			Help:    HelpTextScoringPassDuration,
			Buckets: PipelineLatencyBuckets,
		},
	)

	PredictionsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsScored,
			Help: HelpTextPredictionsScored,
		},
		[]string{LabelOutcome},
	)

	PredictionsQuarantined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsQuarantined,
			Help: HelpTextPredictionsQuarantined,
		},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	CoinsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsAwarded,
			Help: HelpTextCoinsAwarded,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	LeaseContention = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLeaseContention,
			Help: HelpTextLeaseContention,
		},
		[]string{LabelLease},
	)
)

// Business Metrics
var (
	PredictionsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePredictionsSubmitted,
			Help: HelpTextPredictionsSubmitted,
		},
	)

	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersCreated,
			Help: HelpTextUsersCreated,
		},
	)
)
