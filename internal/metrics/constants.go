package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Pipeline metric names
const (
	MetricNameIngestRunsTotal         = "ingest_runs_total"
	MetricNameIngestRunDuration       = "ingest_run_duration_seconds"
	MetricNameSnapshotsIngested       = "snapshots_ingested_total"
	MetricNameSnapshotsPruned         = "snapshots_pruned_total"
	MetricNameScrapeFailures          = "scrape_failures_total"
	MetricNameScoringPassesTotal      = "scoring_passes_total"
	MetricNameScoringPassDuration     = "scoring_pass_duration_seconds"
	MetricNamePredictionsScored       = "predictions_scored_total"
	MetricNamePredictionsQuarantined  = "predictions_quarantined_total"
	MetricNamePointsAwarded           = "points_awarded_total"
	MetricNameCoinsAwarded            = "coins_awarded_total"
	MetricNameLevelUps                = "level_ups_total"
	MetricNameLeaseContention         = "lease_contention_total"
)

// Business metric names
const (
	MetricNamePredictionsSubmitted = "predictions_submitted_total"
	MetricNameUsersCreated         = "users_created_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Pipeline metric help text
const (
	HelpTextIngestRunsTotal        = "Total number of ingestion runs by result"
	HelpTextIngestRunDuration      = "Ingestion run latency in seconds"
	HelpTextSnapshotsIngested      = "Total number of subscriber snapshots written"
	HelpTextSnapshotsPruned        = "Total number of snapshots deleted by retention"
	HelpTextScrapeFailures         = "Total number of failed streamer scrapes"
	HelpTextScoringPassesTotal     = "Total number of scoring passes by result"
	HelpTextScoringPassDuration    = "Scoring pass latency in seconds"
	HelpTextPredictionsScored      = "Total number of predictions scored by outcome"
	HelpTextPredictionsQuarantined = "Total number of predictions quarantined after repeated misses"
	HelpTextPointsAwarded          = "Total points awarded by scoring"
	HelpTextCoinsAwarded           = "Total coins awarded by scoring"
	HelpTextLevelUps               = "Total number of user level-ups"
	HelpTextLeaseContention        = "Total number of runs skipped because a lease was held"
)

// Business metric help text
const (
	HelpTextPredictionsSubmitted = "Total number of predictions submitted"
	HelpTextUsersCreated         = "Total number of users created"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelOutcome = "outcome"
	LabelLease   = "lease"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultBusy    = "busy"
	ResultEmpty   = "empty"

	OutcomeCorrect   = "correct"
	OutcomeIncorrect = "incorrect"
)

// HTTPLatencyBuckets are histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// PipelineLatencyBuckets are histogram buckets for batch runs
var PipelineLatencyBuckets = []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}
