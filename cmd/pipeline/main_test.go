package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/config"
	"github.com/osse101/SubRace_Go/internal/domain"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Storage:            config.StorageMemory,
		Location:           time.UTC,
		ScoringMaxAttempts: config.DefaultScoringMaxAttempts,
	}
}

func TestRun_UnknownStep(t *testing.T) {
	_, err := run(context.Background(), memoryConfig(), "explode")
	assert.ErrorContains(t, err, `unknown step "explode"`)
}

func TestRun_MigrateNeedsPostgres(t *testing.T) {
	_, err := run(context.Background(), memoryConfig(), stepMigrate)
	assert.ErrorContains(t, err, "requires STORAGE=postgres")
}

func TestRun_ScoreOnEmptyStore(t *testing.T) {
	result, err := run(context.Background(), memoryConfig(), stepScore)
	require.NoError(t, err)
	summary, ok := result.(*domain.ScoringSummary)
	require.True(t, ok)
	assert.Equal(t, domain.MsgNoPredictionsToScore, summary.Message)
}

func TestWrapBusy(t *testing.T) {
	assert.ErrorIs(t, wrapBusy(domain.ErrScoringInProgress), errBusy)
	assert.ErrorIs(t, wrapBusy(domain.ErrIngestInProgress), domain.ErrIngestInProgress)
	assert.NotErrorIs(t, wrapBusy(domain.ErrNoStreamers), errBusy)
	assert.NoError(t, wrapBusy(nil))
}
