package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-facing HTTP responses.
// Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgInternalServerError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundHTTP
	case errors.Is(err, domain.ErrStreamerNotFound):
		return http.StatusNotFound, ErrMsgStreamerNotFoundHTTP
	case errors.Is(err, domain.ErrNoStreamers):
		return http.StatusNotFound, ErrMsgNoStreamersHTTP
	case errors.Is(err, domain.ErrTeamRequired):
		return http.StatusBadRequest, ErrMsgTeamRequiredHTTP
	case errors.Is(err, domain.ErrPredictionExists):
		return http.StatusBadRequest, domain.ErrMsgPredictionExists
	case errors.Is(err, domain.ErrInvalidUsername):
		return http.StatusBadRequest, ErrMsgInvalidUsernameHTTP
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestSummary
	case errors.Is(err, domain.ErrScoringInProgress):
		return http.StatusConflict, domain.ErrMsgScoringInProgress
	case errors.Is(err, domain.ErrIngestInProgress):
		return http.StatusConflict, domain.ErrMsgIngestInProgress
	default:
		return http.StatusInternalServerError, ErrMsgInternalServerError
	}
}
