package handler

import (
	"net/http"

	"github.com/osse101/SubRace_Go/internal/ingest"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/scoring"
)

// CronHandlers exposes the pipeline steps to external schedulers
type CronHandlers struct {
	ingest  ingest.Service
	scoring scoring.Service
}

// NewCronHandlers creates the trigger endpoints
func NewCronHandlers(ingestSvc ingest.Service, scoringSvc scoring.Service) *CronHandlers {
	return &CronHandlers{ingest: ingestSvc, scoring: scoringSvc}
}

// HandleScrape runs one ingestion step
// @Summary Run subscriber ingestion
// @Description Scrapes every tracked streamer, stores snapshots with growth and prunes old snapshots
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.IngestSummary
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cron/scrape [post]
func (h *CronHandlers) HandleScrape() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.ingest.Run(logger.WithRun(r.Context(), logger.TriggerCron))
		if err != nil {
			respondServiceError(w, r, "Ingestion", err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}

// HandleScore runs the daily scoring pass for yesterday
// @Summary Score yesterday's predictions
// @Tags cron
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.ScoringSummary
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cron/score [post]
func (h *CronHandlers) HandleScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.scoring.RunDailyPass(logger.WithRun(r.Context(), logger.TriggerCron))
		if err != nil {
			respondServiceError(w, r, "Scoring pass", err)
			return
		}
		respondJSON(w, http.StatusOK, summary)
	}
}
