package ingest

import "time"

const (
	// LeaseKey guards ingestion runs
	LeaseKey        = "ingest"
	DefaultLeaseTTL = 5 * time.Minute
)

// Log messages
const (
	LogMsgRunStarted       = "Ingestion run started"
	LogMsgRunCompleted     = "Ingestion run completed"
	LogMsgLeaseHeld        = "Ingestion skipped, lease held"
	LogMsgProfileSyncFail  = "Failed to sync streamer profiles"
	LogMsgUnmatchedHandle  = "Scraped handle has no matching streamer"
	LogMsgLeaseReleaseFail = "Failed to release ingestion lease"
)
