package handler

import (
	"net/http"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/prediction"
)

// SubmitPredictionResponse is returned after a prediction is locked in
type SubmitPredictionResponse struct {
	Success     bool               `json:"success"`
	Prediction  *domain.Prediction `json:"prediction"`
	CoinsEarned int64              `json:"coinsEarned"`
}

// TodayPredictionsResponse is the community view for today
type TodayPredictionsResponse struct {
	Success          bool                   `json:"success"`
	UserPrediction   *domain.Prediction     `json:"userPrediction"`
	CommunityStats   []domain.StreamerVotes `json:"communityStats"`
	TotalPredictions int                    `json:"totalPredictions"`
}

// PredictionHistoryResponse lists a user's recent predictions
type PredictionHistoryResponse struct {
	Success     bool                `json:"success"`
	Predictions []domain.Prediction `json:"predictions"`
}

// PredictionHandlers handles prediction-related HTTP requests
type PredictionHandlers struct {
	service prediction.Service
}

// NewPredictionHandlers creates a new prediction handlers instance
func NewPredictionHandlers(service prediction.Service) *PredictionHandlers {
	return &PredictionHandlers{service: service}
}

// HandleSubmit locks in today's prediction
// @Summary Submit today's prediction
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body domain.SubmitPredictionRequest true "Prediction"
// @Success 200 {object} SubmitPredictionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/predictions/submit [post]
func (h *PredictionHandlers) HandleSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SubmitPredictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
			return
		}

		p, err := h.service.Submit(r.Context(), req)
		if err != nil {
			respondServiceError(w, r, "Submit prediction", err)
			return
		}
		respondJSON(w, http.StatusOK, SubmitPredictionResponse{
			Success:     true,
			Prediction:  p,
			CoinsEarned: domain.PredictionSubmitCoins,
		})
	}
}

// HandleToday returns community stats and the caller's prediction
// @Summary Today's predictions
// @Tags prediction
// @Produce json
// @Param anonymousId query string false "Device id"
// @Success 200 {object} TodayPredictionsResponse
// @Router /api/v1/predictions/today [get]
func (h *PredictionHandlers) HandleToday() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		anonymousID := GetOptionalQueryParam(r, ParamAnonymousID, "")

		today, err := h.service.Today(r.Context(), anonymousID)
		if err != nil {
			respondServiceError(w, r, "Today predictions", err)
			return
		}
		respondJSON(w, http.StatusOK, TodayPredictionsResponse{
			Success:          true,
			UserPrediction:   today.UserPrediction,
			CommunityStats:   today.CommunityStats.Streamers,
			TotalPredictions: today.CommunityStats.TotalPredictions,
		})
	}
}

// HandleHistory returns the caller's last predictions
// @Summary Prediction history
// @Tags prediction
// @Produce json
// @Param anonymousId query string true "Device id"
// @Success 200 {object} PredictionHistoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/predictions/history [get]
func (h *PredictionHandlers) HandleHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		anonymousID, ok := GetQueryParam(r, w, ParamAnonymousID)
		if !ok {
			return
		}

		history, err := h.service.History(r.Context(), anonymousID)
		if err != nil {
			respondServiceError(w, r, "Prediction history", err)
			return
		}
		respondJSON(w, http.StatusOK, PredictionHistoryResponse{Success: true, Predictions: history})
	}
}
