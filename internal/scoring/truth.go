package scoring

import (
	"sort"

	"github.com/osse101/SubRace_Go/internal/domain"
)

// GroundTruth is what actually happened on a scored day
type GroundTruth struct {
	WinnerID      string
	WinnerName    string
	WinnerGrowth  int64
	CombinedTotal int64

	snapshots map[string]*domain.Snapshot
}

// SnapshotFor returns the day's snapshot for a streamer, or nil
func (g *GroundTruth) SnapshotFor(streamerID string) *domain.Snapshot {
	if streamerID == "" {
		return nil
	}
	return g.snapshots[streamerID]
}

// DetermineGroundTruth picks the day's winner and combined total from the
// latest snapshot per streamer. Streamers without a snapshot count as zero
// growth. Only roster streamers count toward the winner and the combined
// total. Ties go to the smallest streamer ID so the result does not depend
// on input order.
func DetermineGroundTruth(streamers []domain.Streamer, snapshots []domain.Snapshot) *GroundTruth {
	truth := &GroundTruth{snapshots: make(map[string]*domain.Snapshot, len(snapshots))}

	for i := range snapshots {
		s := &snapshots[i]
		if prev, ok := truth.snapshots[s.StreamerID]; ok && !s.TakenAt.After(prev.TakenAt) {
			continue
		}
		truth.snapshots[s.StreamerID] = s
	}

	ordered := make([]domain.Streamer, len(streamers))
	copy(ordered, streamers)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for i, st := range ordered {
		var growth int64
		if snap := truth.snapshots[st.ID]; snap != nil {
			growth = snap.Growth
			truth.CombinedTotal += snap.TotalSubs
		}
		if i == 0 || growth > truth.WinnerGrowth {
			truth.WinnerID = st.ID
			truth.WinnerName = st.Name
			truth.WinnerGrowth = growth
		}
	}

	return truth
}
