package handler

import (
	"net/http"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/streamer"
)

// StreamersResponse lists tracked streamers
type StreamersResponse struct {
	Success   bool              `json:"success"`
	Streamers []domain.Streamer `json:"streamers"`
}

// HandleListStreamers returns the roster sorted by name
// @Summary List streamers
// @Tags streamers
// @Produce json
// @Success 200 {object} StreamersResponse
// @Router /api/v1/streamers [get]
func HandleListStreamers(service streamer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		streamers, err := service.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "List streamers", err)
			return
		}
		respondJSON(w, http.StatusOK, StreamersResponse{Success: true, Streamers: streamers})
	}
}
