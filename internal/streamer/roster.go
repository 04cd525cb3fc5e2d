package streamer

import "github.com/osse101/SubRace_Go/internal/domain"

const defaultDescription = "Faze Clan member"

// DefaultRoster is the set of tracked streamers seeded on startup
func DefaultRoster() []domain.Streamer {
	return []domain.Streamer{
		{Name: "JasonTheWeen", Handle: "jasontheween", Color: "#FF6B6B", Description: defaultDescription},
		{Name: "Silky", Handle: "silky", Color: "#4ECDC4", Description: defaultDescription},
		{Name: "StableRonaldo", Handle: "stableronaldo", Color: "#95E1D3", Description: defaultDescription},
		{Name: "Lacy", Handle: "lacy", Color: "#FFE66D", Description: defaultDescription},
		{Name: "Adapt", Handle: "adapt", Color: "#A8E6CF", Description: defaultDescription},
		{Name: "Kaysan", Handle: "kaysan", Color: "#C7CEEA", Description: defaultDescription},
	}
}
