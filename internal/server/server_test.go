package server

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/sse"
	"github.com/osse101/SubRace_Go/mocks"
)

type testServices struct {
	ingest      *mocks.MockIngestService
	scoring     *mocks.MockScoringService
	streamer    *mocks.MockStreamerService
	subs        *mocks.MockSubsService
	user        *mocks.MockUserService
	prediction  *mocks.MockPredictionService
	leaderboard *mocks.MockLeaderboardService
}

func newTestRouter(t *testing.T, opts Options) (http.Handler, testServices) {
	t.Helper()
	m := testServices{
		ingest:      mocks.NewMockIngestService(t),
		scoring:     mocks.NewMockScoringService(t),
		streamer:    mocks.NewMockStreamerService(t),
		subs:        mocks.NewMockSubsService(t),
		user:        mocks.NewMockUserService(t),
		prediction:  mocks.NewMockPredictionService(t),
		leaderboard: mocks.NewMockLeaderboardService(t),
	}
	r := NewRouter(opts, nil, Services{
		Ingest:      m.ingest,
		Scoring:     m.scoring,
		Streamer:    m.streamer,
		Subs:        m.subs,
		User:        m.user,
		Prediction:  m.prediction,
		Leaderboard: m.leaderboard,
	})
	return r, m
}

func TestRouter_PublicRoutes(t *testing.T) {
	r, m := newTestRouter(t, Options{})
	m.streamer.On("List", mock.Anything).Return([]domain.Streamer{{ID: "s1", Name: "Lacy"}}, nil)
	m.leaderboard.On("Get", mock.Anything, "").Return(&domain.Leaderboard{}, nil)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/api/v1/streamers", "/api/v1/leaderboard"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType), path)
	}
}

func TestRouter_EventsMountedOnlyWithHub(t *testing.T) {
	r, _ := newTestRouter(t, Options{})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A stopped hub answers immediately instead of holding the stream open
	hub := sse.NewHub()
	hub.Start()
	hub.Stop()
	withEvents := NewRouter(Options{}, nil, Services{Events: hub})
	rec = httptest.NewRecorder()
	withEvents.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_UserMethods(t *testing.T) {
	r, m := newTestRouter(t, Options{})
	m.user.On("Get", mock.Anything, "anon_1").Return(&domain.User{ID: "u1", AnonymousID: "anon_1"}, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/user?anonymousId=anon_1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/user", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_CronRequiresSecret(t *testing.T) {
	r, m := newTestRouter(t, Options{CronSecret: "s3cret"})
	m.scoring.On("RunDailyPass", mock.Anything).Return(&domain.ScoringSummary{Success: true, Message: domain.MsgNoPredictionsToScore}, nil).Once()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/cron/score", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/cron/score", nil)
	req.Header.Set(HeaderAuthorization, "Bearer s3cret")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.MsgNoPredictionsToScore)
}

func TestRouter_RequestBodyLimit(t *testing.T) {
	r, _ := newTestRouter(t, Options{})

	body := `{"anonymousId":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/user", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest(http.MethodGet, "/api/cron/score", nil)
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, RedactedValue)
}

func TestLoggingMiddleware_SkipsHealthChecks(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	loggingMiddleware(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())
}

func TestServer_StopClosesEventStreams(t *testing.T) {
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()

	srv := NewServer(Options{Port: 0}, nil, Services{Events: hub})
	require.NoError(t, srv.Stop(context.Background()))

	assert.Eventually(t, func() bool {
		return hub.Register(nil) == nil
	}, time.Second, 5*time.Millisecond)
}
