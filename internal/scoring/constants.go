package scoring

import "time"

// Defaults
const (
	DefaultMaxAttempts = 7
	DefaultLeaseTTL    = 10 * time.Minute

	leaseKeyPrefix = "scoring:"
	dayKeyLayout   = "2006-01-02"
)

// Log messages
const (
	LogMsgPassStarted        = "Scoring pass started"
	LogMsgPassCompleted      = "Scoring pass completed"
	LogMsgNoPredictions      = "No predictions to score"
	LogMsgLeaseHeld          = "Scoring pass skipped, lease held"
	LogMsgGroundTruth        = "Determined ground truth"
	LogMsgPredictionScored   = "Prediction scored"
	LogMsgPredictionSkipped  = "Prediction already scored, skipping"
	LogMsgUserMissing        = "User for prediction not found"
	LogMsgQuarantined        = "Prediction quarantined after repeated misses"
	LogMsgLeaseReleaseFailed = "Failed to release scoring lease"
	LogMsgNotifyFailed       = "Failed to announce scoring results"
)
