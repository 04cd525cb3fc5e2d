package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/SubRace_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If this function returns an error, the HTTP response has already been
// written and the handler should return.
//
// Example usage:
//
//	var req SubmitPredictionRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter. If it is missing the
// error response has been written and ok is false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getDaysParam parses the optional days parameter; 0 means "use the default"
func getDaysParam(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := r.URL.Query().Get(ParamDays)
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidDays)
		return 0, false
	}
	return days, true
}
