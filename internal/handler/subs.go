package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/subs"
)

// LatestSubsResponse is the current subscriber board
type LatestSubsResponse struct {
	Success bool `json:"success"`
	*domain.LatestSubs
}

// SubsHistoryResponse is a snapshot series
type SubsHistoryResponse struct {
	Success bool              `json:"success"`
	Data    []domain.Snapshot `json:"data"`
	Days    int               `json:"days"`
}

// SubsHandlers handles subscriber read requests
type SubsHandlers struct {
	service subs.Service
}

// NewSubsHandlers creates a new subs handlers instance
func NewSubsHandlers(service subs.Service) *SubsHandlers {
	return &SubsHandlers{service: service}
}

// HandleLatest returns the latest snapshot per streamer
// @Summary Latest subscriber counts
// @Tags subs
// @Produce json
// @Success 200 {object} LatestSubsResponse
// @Router /api/v1/subs/latest [get]
func (h *SubsHandlers) HandleLatest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		latest, err := h.service.Latest(r.Context())
		if err != nil {
			respondServiceError(w, r, "Latest subs", err)
			return
		}
		respondJSON(w, http.StatusOK, LatestSubsResponse{Success: true, LatestSubs: latest})
	}
}

// HandleHistory returns snapshots for the last days
// @Summary Subscriber history
// @Tags subs
// @Produce json
// @Param streamerId query string false "Streamer id, all streamers when empty"
// @Param days query int false "Days of history (default 7, max 30)"
// @Success 200 {object} SubsHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/subs/history [get]
func (h *SubsHandlers) HandleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := getDaysParam(r, w)
		if !ok {
			return
		}
		streamerID := GetOptionalQueryParam(r, ParamStreamerID, "")

		history, err := h.service.History(r.Context(), streamerID, days)
		if err != nil {
			respondServiceError(w, r, "Subs history", err)
			return
		}
		respondJSON(w, http.StatusOK, SubsHistoryResponse{Success: true, Data: history, Days: subs.ClampDays(days)})
	}
}

// HandleHistoryCSV streams the history as CSV
// @Summary Subscriber history export
// @Tags subs
// @Produce text/csv
// @Param streamerId query string false "Streamer id, all streamers when empty"
// @Param days query int false "Days of history (default 7, max 30)"
// @Success 200 {string} string "CSV"
// @Router /api/v1/subs/history.csv [get]
func (h *SubsHandlers) HandleHistoryCSV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := getDaysParam(r, w)
		if !ok {
			return
		}
		streamerID := GetOptionalQueryParam(r, ParamStreamerID, "")

		buf := bufferPool.Get().(*bytes.Buffer)
		defer func() {
			buf.Reset()
			bufferPool.Put(buf)
		}()

		if err := h.service.ExportHistoryCSV(r.Context(), buf, streamerID, days); err != nil {
			respondServiceError(w, r, "Subs history export", err)
			return
		}

		filename := fmt.Sprintf("subs-history-%s.csv", time.Now().UTC().Format(time.DateOnly))
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logger.FromContext(r.Context()).Error("Failed to write csv response", "error", err)
		}
	}
}
