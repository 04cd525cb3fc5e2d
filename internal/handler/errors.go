package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInternalServerError   = "Internal server error"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "%s is required"
	ErrMsgInvalidDays       = "days must be a positive integer"

	ErrMsgUserNotFoundHTTP     = "User not found"
	ErrMsgStreamerNotFoundHTTP = "Streamer not found"
	ErrMsgNoStreamersHTTP      = "No streamers found"
	ErrMsgTeamRequiredHTTP     = "Must select a team before making predictions"
	ErrMsgInvalidUsernameHTTP  = "Username must be 3-20 characters"
)

// Query parameter names
const (
	ParamAnonymousID = "anonymousId"
	ParamStreamerID  = "streamerId"
	ParamTeamID      = "teamId"
	ParamDays        = "days"
)
