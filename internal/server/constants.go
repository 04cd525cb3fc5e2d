package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed cron authentication attempts"
	SecurityAlertRateLimit  = "⚠️ SECURITY ALERT: Rate limiting client"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Cron authentication failed"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderRetryAfter     = "Retry-After"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// BearerPrefix precedes the cron secret in the Authorization header
const BearerPrefix = "Bearer "

// Paths that skip request logging
var QuietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)

// Limits
const (
	MaxRequestBodyBytes   = 1 << 20
	DefaultRequestsPerSec = 10
	DefaultBurst          = 30
	limiterCacheSize      = 10000
	limiterIdleTTL        = 10 * time.Minute
	failedAuthWindow      = 5 * time.Minute
	failedAuthAlertCount  = 5
	readHeaderTimeout     = 5 * time.Second
)
