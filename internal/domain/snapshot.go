package domain

import "time"

// Snapshot is one subscriber-count reading for a streamer
type Snapshot struct {
	ID         string    `json:"id" csv:"id"`
	StreamerID string    `json:"streamerId" csv:"streamer_id"`
	TakenAt    time.Time `json:"timestamp" csv:"timestamp"`
	TotalSubs  int64     `json:"totalSubs" csv:"total_subs"`
	PaidSubs   int64     `json:"paidSubs" csv:"paid_subs"`
	GiftedSubs int64     `json:"giftedSubs" csv:"gifted_subs"`
	PrimeSubs  int64     `json:"primeSubs" csv:"prime_subs"`
	Tier1Subs  int64     `json:"tier1Subs" csv:"tier1_subs"`
	Tier2Subs  int64     `json:"tier2Subs" csv:"tier2_subs"`
	Tier3Subs  int64     `json:"tier3Subs" csv:"tier3_subs"`
	Growth     int64     `json:"growth" csv:"growth"`
}

// ScrapedSubs is a single scraper reading for a platform handle
type ScrapedSubs struct {
	Handle     string
	TotalSubs  int64
	PaidSubs   int64
	GiftedSubs int64
	PrimeSubs  int64
	Tier1Subs  int64
	Tier2Subs  int64
	Tier3Subs  int64
}

// IngestedStreamer is one row of an ingestion summary
type IngestedStreamer struct {
	Streamer  string `json:"streamer"`
	TotalSubs int64  `json:"totalSubs"`
	Growth    int64  `json:"growth"`
}

// IngestSummary is returned by an ingestion run
type IngestSummary struct {
	Success      bool               `json:"success"`
	ScrapedCount int                `json:"scrapedCount"`
	Data         []IngestedStreamer `json:"data"`
	Pruned       int64              `json:"pruned"`
	Timestamp    time.Time          `json:"timestamp"`
}

// StreamerSubs pairs a streamer with its latest snapshot
type StreamerSubs struct {
	Streamer Streamer  `json:"streamer"`
	Snapshot *Snapshot `json:"snapshot"`
}

// LatestSubs is the current subscriber board
type LatestSubs struct {
	Streamers     []StreamerSubs `json:"streamers"`
	CombinedTotal int64          `json:"combinedTotal"`
	Timestamp     time.Time      `json:"timestamp"`
}
