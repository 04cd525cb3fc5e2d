package handler

import (
	"net/http"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/user"
)

// CreateUserRequest registers a device
type CreateUserRequest struct {
	AnonymousID string `json:"anonymousId" validate:"required,max=128,anonid"`
	ReferredBy  string `json:"referredBy" validate:"omitempty,max=32"`
}

// UpdateUserRequest changes a user's profile
type UpdateUserRequest struct {
	AnonymousID string          `json:"anonymousId" validate:"required,max=128,anonid"`
	Updates     UserUpdateTypes `json:"updates"`
}

// UserUpdateTypes are the optional profile fields
type UserUpdateTypes struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=64"`
	TeamID   *string `json:"teamId,omitempty" validate:"omitempty,uuid"`
}

// UserResponse wraps a user
type UserResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
	IsNew   *bool        `json:"isNew,omitempty"`
}

// UserHandlers handles user HTTP requests
type UserHandlers struct {
	service user.Service
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(service user.Service) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleCreate registers a device or returns its existing user
// @Summary Create or fetch a user
// @Tags user
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "Device id and optional referral code"
// @Success 201 {object} UserResponse
// @Success 200 {object} UserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/user [post]
func (h *UserHandlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create user"); err != nil {
			return
		}

		u, isNew, err := h.service.Create(r.Context(), req.AnonymousID, req.ReferredBy)
		if err != nil {
			respondServiceError(w, r, "Create user", err)
			return
		}

		status := http.StatusOK
		if isNew {
			status = http.StatusCreated
		}
		respondJSON(w, status, UserResponse{Success: true, User: u, IsNew: &isNew})
	}
}

// HandleGet returns the caller's user
// @Summary Get a user
// @Tags user
// @Produce json
// @Param anonymousId query string true "Device id"
// @Success 200 {object} UserResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/user [get]
func (h *UserHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		anonymousID, ok := GetQueryParam(r, w, ParamAnonymousID)
		if !ok {
			return
		}

		u, err := h.service.Get(r.Context(), anonymousID)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}
		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: u})
	}
}

// HandleUpdate changes username and team
// @Summary Update a user
// @Tags user
// @Accept json
// @Produce json
// @Param request body UpdateUserRequest true "Profile changes"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/user [patch]
func (h *UserHandlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update user"); err != nil {
			return
		}

		u, err := h.service.Update(r.Context(), req.AnonymousID, domain.UserUpdate{
			Username: req.Updates.Username,
			TeamID:   req.Updates.TeamID,
		})
		if err != nil {
			respondServiceError(w, r, "Update user", err)
			return
		}
		respondJSON(w, http.StatusOK, UserResponse{Success: true, User: u})
	}
}
