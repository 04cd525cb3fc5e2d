package sse

import (
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// SubsUpdatedPayload announces a finished ingestion run
type SubsUpdatedPayload struct {
	ScrapedCount int                       `json:"scrapedCount"`
	Streamers    []domain.IngestedStreamer `json:"streamers"`
	Timestamp    time.Time                 `json:"timestamp"`
}

// ScoringCompletedPayload announces a finished scoring pass
type ScoringCompletedPayload struct {
	Day         string `json:"day"`
	Winner      string `json:"winner"`
	Scored      int    `json:"scored"`
	Quarantined int    `json:"quarantined,omitempty"`
}
