package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound        = "user not found"
	ErrMsgUserExists          = "user already exists"
	ErrMsgTeamRequired        = "you must select a team first"
	ErrMsgInvalidUsername     = "invalid username"
	ErrMsgReferralCodeUnknown = "referral code not found"

	// Streamer errors
	ErrMsgStreamerNotFound = "streamer not found"
	ErrMsgNoStreamers      = "no streamers found"

	// Prediction errors
	ErrMsgPredictionExists   = "You have already made a prediction for today"
	ErrMsgPredictionNotFound = "prediction not found"

	// Pipeline errors
	ErrMsgScoringInProgress = "a scoring pass is already running"
	ErrMsgIngestInProgress  = "an ingestion run is already running"
	ErrMsgNoSubscriberData  = "no subscriber data"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound        = errors.New(ErrMsgUserNotFound)
	ErrUserExists          = errors.New(ErrMsgUserExists)
	ErrTeamRequired        = errors.New(ErrMsgTeamRequired)
	ErrInvalidUsername     = errors.New(ErrMsgInvalidUsername)
	ErrReferralCodeUnknown = errors.New(ErrMsgReferralCodeUnknown)

	ErrStreamerNotFound = errors.New(ErrMsgStreamerNotFound)
	ErrNoStreamers      = errors.New(ErrMsgNoStreamers)

	ErrPredictionExists   = errors.New(ErrMsgPredictionExists)
	ErrPredictionNotFound = errors.New(ErrMsgPredictionNotFound)

	ErrScoringInProgress = errors.New(ErrMsgScoringInProgress)
	ErrIngestInProgress  = errors.New(ErrMsgIngestInProgress)
	ErrNoSubscriberData  = errors.New(ErrMsgNoSubscriberData)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
)
