package subs

import "time"

const (
	DefaultLatestTTL = 30 * time.Second
	latestKey        = "latest"
)
