package sse

import (
	"context"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/ingest"
)

// IngestBroadcaster decorates an ingest.Service and announces each
// successful run on the hub
type IngestBroadcaster struct {
	ingest.Service
	hub *Hub
}

// WrapIngest returns svc with subs.updated broadcasting
func WrapIngest(svc ingest.Service, hub *Hub) *IngestBroadcaster {
	return &IngestBroadcaster{Service: svc, hub: hub}
}

// Run delegates and broadcasts when snapshots were stored
func (b *IngestBroadcaster) Run(ctx context.Context) (*domain.IngestSummary, error) {
	summary, err := b.Service.Run(ctx)
	if err != nil {
		return nil, err
	}
	if summary.ScrapedCount > 0 {
		b.hub.Broadcast(EventTypeSubsUpdated, SubsUpdatedPayload{
			ScrapedCount: summary.ScrapedCount,
			Streamers:    summary.Data,
			Timestamp:    summary.Timestamp,
		})
	}
	return summary, nil
}

// ScoringNotifier announces scoring passes on the hub. It satisfies
// scoring.Notifier.
type ScoringNotifier struct {
	hub *Hub
}

// NewScoringNotifier creates a notifier broadcasting scoring.completed
func NewScoringNotifier(hub *Hub) *ScoringNotifier {
	return &ScoringNotifier{hub: hub}
}

func (n *ScoringNotifier) AnnounceScoring(ctx context.Context, day time.Time, summary *domain.ScoringSummary) error {
	n.hub.Broadcast(EventTypeScoringCompleted, ScoringCompletedPayload{
		Day:         day.Format(time.DateOnly),
		Winner:      summary.Winner,
		Scored:      summary.Scored,
		Quarantined: summary.Quarantined,
	})
	return nil
}
