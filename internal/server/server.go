package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SubRace_Go/internal/handler"
	"github.com/osse101/SubRace_Go/internal/ingest"
	"github.com/osse101/SubRace_Go/internal/leaderboard"
	"github.com/osse101/SubRace_Go/internal/logger"
	"github.com/osse101/SubRace_Go/internal/metrics"
	"github.com/osse101/SubRace_Go/internal/prediction"
	"github.com/osse101/SubRace_Go/internal/scoring"
	"github.com/osse101/SubRace_Go/internal/sse"
	"github.com/osse101/SubRace_Go/internal/streamer"
	"github.com/osse101/SubRace_Go/internal/subs"
	"github.com/osse101/SubRace_Go/internal/user"
)

// Services groups the application services exposed over HTTP
type Services struct {
	Ingest      ingest.Service
	Scoring     scoring.Service
	Streamer    streamer.Service
	Subs        subs.Service
	User        user.Service
	Prediction  prediction.Service
	Leaderboard leaderboard.Service
	// Events is optional; /api/v1/events is only mounted when set
	Events *sse.Hub
}

// Options configures middleware behaviour
type Options struct {
	Port           int
	CronSecret     string
	TrustedProxies []string
	// Zero values fall back to DefaultRequestsPerSec and DefaultBurst
	RequestsPerSec float64
	Burst          int
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. db may be nil when running on
// in-memory storage.
func NewServer(opts Options, db handler.Pinger, svc Services) *Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts, db, svc),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	if svc.Events != nil {
		// Open event streams would otherwise hold Shutdown until its deadline
		srv.RegisterOnShutdown(svc.Events.Stop)
	}
	return &Server{httpServer: srv}
}

// NewRouter builds the HTTP route tree
func NewRouter(opts Options, db handler.Pinger, svc Services) http.Handler {
	handler.InitValidator()

	perSec, burst := opts.RequestsPerSec, opts.Burst
	if perSec <= 0 {
		perSec = DefaultRequestsPerSec
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	detector := NewSuspiciousActivityDetector()

	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(NewRateLimiter(perSec, burst), opts.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// Pipeline triggers for external schedulers
	cron := handler.NewCronHandlers(svc.Ingest, svc.Scoring)
	r.Route("/api/cron", func(r chi.Router) {
		r.Use(CronAuthMiddleware(opts.CronSecret, opts.TrustedProxies, detector))
		r.Get("/scrape", cron.HandleScrape())
		r.Post("/scrape", cron.HandleScrape())
		r.Get("/score", cron.HandleScore())
		r.Post("/score", cron.HandleScore())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/streamers", handler.HandleListStreamers(svc.Streamer))

		subsHandlers := handler.NewSubsHandlers(svc.Subs)
		r.Route("/subs", func(r chi.Router) {
			r.Get("/latest", subsHandlers.HandleLatest())
			r.Get("/history", subsHandlers.HandleHistory())
			r.Get("/history.csv", subsHandlers.HandleHistoryCSV())
		})

		userHandlers := handler.NewUserHandlers(svc.User)
		r.Post("/user", userHandlers.HandleCreate())
		r.Get("/user", userHandlers.HandleGet())
		r.Patch("/user", userHandlers.HandleUpdate())

		predictionHandlers := handler.NewPredictionHandlers(svc.Prediction)
		r.Route("/predictions", func(r chi.Router) {
			r.Post("/submit", predictionHandlers.HandleSubmit())
			r.Get("/today", predictionHandlers.HandleToday())
			r.Get("/history", predictionHandlers.HandleHistory())
		})

		r.Get("/leaderboard", handler.HandleGetLeaderboard(svc.Leaderboard))

		if svc.Events != nil {
			r.Get("/events", sse.Handler(svc.Events))
		}
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
