package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/metrics"
)

// Scraper reads current subscriber counts for platform handles
type Scraper interface {
	Scrape(ctx context.Context, handle string) (*domain.ScrapedSubs, error)
	// ScrapeAll returns the handles that could be scraped. Failures are
	// logged and left out, so the result may be a subset.
	ScrapeAll(ctx context.Context, handles []string) []domain.ScrapedSubs
}

// Config configures the HTTP scraper
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// TrackerScraper scrapes twitchtracker subscriber pages
type TrackerScraper struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a TrackerScraper. Requests across all handles share one limiter.
func New(cfg Config) *TrackerScraper {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultRequestsPerSecond
	}
	return &TrackerScraper{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), DefaultBurst),
	}
}

// Scrape fetches and parses one handle's subscribers page
func (s *TrackerScraper) Scrape(ctx context.Context, handle string) (*domain.ScrapedSubs, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	pageURL := s.baseURL + "/" + url.PathEscape(handle) + subscribersPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", handle, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", handle, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", handle, resp.StatusCode)
	}

	return ParseSubscribersPage(handle, resp.Body)
}

// ScrapeAll scrapes handles concurrently and keeps input order
func (s *TrackerScraper) ScrapeAll(ctx context.Context, handles []string) []domain.ScrapedSubs {
	log := logger.FromContext(ctx)

	results := make([]*domain.ScrapedSubs, len(handles))
	var wg sync.WaitGroup
	for i, handle := range handles {
		wg.Add(1)
		go func(i int, handle string) {
			defer wg.Done()
			subs, err := s.Scrape(ctx, handle)
			if err != nil {
				log.Warn(LogMsgScrapeFailed, "handle", handle, "error", err)
				metrics.ScrapeFailures.Inc()
				return
			}
			results[i] = subs
		}(i, handle)
	}
	wg.Wait()

	out := make([]domain.ScrapedSubs, 0, len(handles))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	log.Info(LogMsgScrapeComplete, "requested", len(handles), "scraped", len(out))
	return out
}
