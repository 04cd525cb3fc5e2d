package scraper

import "time"

const (
	DefaultBaseURL           = "https://twitchtracker.com"
	DefaultTimeout           = 15 * time.Second
	DefaultRequestsPerSecond = 1.0
	DefaultBurst             = 2

	subscribersPath = "/subscribers"
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	acceptHeader    = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Page labels on the subscribers page
const (
	labelActiveSubs = "Active Subscriptions"
	labelPaidSubs   = "Active Paid Subscriptions"
	labelGiftedSubs = "Active Gifted Subscriptions"
)

// Log messages
const (
	LogMsgScrapeFailed   = "Failed to scrape subscriber page"
	LogMsgScrapeComplete = "Scrape complete"
)
