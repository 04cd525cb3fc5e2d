package handler

import (
	"net/http"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/leaderboard"
)

// LeaderboardResponse is the ranked view
type LeaderboardResponse struct {
	Success bool `json:"success"`
	*domain.Leaderboard
}

// HandleGetLeaderboard returns the top users and team stats
// @Summary Leaderboard
// @Tags leaderboard
// @Produce json
// @Param teamId query string false "Only users of this team"
// @Success 200 {object} LeaderboardResponse
// @Router /api/v1/leaderboard [get]
func HandleGetLeaderboard(service leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := GetOptionalQueryParam(r, ParamTeamID, "")

		board, err := service.Get(r.Context(), teamID)
		if err != nil {
			respondServiceError(w, r, "Leaderboard", err)
			return
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Success: true, Leaderboard: board})
	}
}
