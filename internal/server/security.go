package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/SubRace_Go/internal/logger"
)

// CronAuthMiddleware requires "Authorization: Bearer <secret>" on trigger
// endpoints. An empty secret leaves them open.
func CronAuthMiddleware(secret string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get(HeaderAuthorization)
			provided := strings.TrimPrefix(header, BearerPrefix)

			// Use constant time comparison to prevent timing attacks
			if !strings.HasPrefix(header, BearerPrefix) ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_token", header != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks repeated authentication failures
type SuspiciousActivityDetector struct {
	mu             sync.Mutex
	failedAuthByIP map[string]int
	lastResetTime  time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		failedAuthByIP: make(map[string]int),
		lastResetTime:  time.Now(),
	}
}

// RecordFailedAuth records a failed authentication attempt and returns the
// count for ip in the current window
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastResetTime) > failedAuthWindow {
		s.failedAuthByIP = make(map[string]int)
		s.lastResetTime = time.Now()
	}
	s.failedAuthByIP[ip]++

	count := s.failedAuthByIP[ip]
	if count >= failedAuthAlertCount {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// RateLimiter hands out one token bucket per client IP. Idle buckets expire.
type RateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter creates a per-IP limiter allowing perSecond sustained
// requests with the given burst
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](limiterCacheSize, nil, limiterIdleTTL),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

// Allow reports whether ip may make a request now
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	lim, ok := l.limiters.Get(ip)
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters.Add(ip, lim)
	}
	l.mu.Unlock()
	return lim.Allow()
}

// RateLimitMiddleware rejects clients that exhaust their token bucket
func RateLimitMiddleware(limiter *RateLimiter, trustedProxies []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !limiter.Allow(ip) {
				logger.FromContext(r.Context()).Debug(SecurityAlertRateLimit, "ip", ip, "path", r.URL.Path)
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(1))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// It only trusts X-Forwarded-For if the request comes from a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	isTrusted := false
	for _, proxy := range trustedProxies {
		if proxy == remoteIP {
			isTrusted = true
			break
		}
	}

	if isTrusted {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our trusted proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
