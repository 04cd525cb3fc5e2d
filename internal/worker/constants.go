package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for pool operations
const (
	LogMsgWorkerJobFailed  = "Worker job failed"
	LogMsgWorkerQueueFull  = "Worker queue full, dropping job"
	LogMsgWorkerJobSkipped = "Worker job skipped, run already in progress"
)

// ============================================================================
// Log Messages - Pipeline Jobs
// ============================================================================

// Log messages for ingest and scoring jobs
const (
	LogMsgIngestJobCompleted  = "Ingest job completed"
	LogMsgScoringJobCompleted = "Scoring job completed"
)

// ============================================================================
// Log Messages - Daily Scoring Worker
// ============================================================================

// Log messages for daily scoring worker operations
const (
	LogMsgDailyScoringStandby   = "Daily scoring standby"
	LogMsgDailyScoringApproach  = "Daily scoring scheduled"
	LogMsgDailyScoringEnqueued  = "Daily scoring enqueued"
	LogMsgDailyScoringEarlyWake = "Daily scoring timer fired early, rescheduling"
)

// Two-stage timer tuning
const (
	standbyThreshold = 1 * time.Hour
	standbyLead      = 45 * time.Minute
	earlyFireSlack   = 10 * time.Second
	lateFireWindow   = 23 * time.Hour
)

// DailyScoringWorkerName is used in shutdown logs
const DailyScoringWorkerName = "daily scoring worker"

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
