package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SubRace_Go/internal/config"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-03-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.Contains(t, names, "session_2026-03-12_00-00-00.log")
	assert.NotContains(t, names, "session_2026-03-03_00-00-00.log")
	assert.Contains(t, names, "session_2026-03-04_00-00-00.log")
}

func TestSetupLogger_CreatesSessionFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := &config.Config{
		LogDir:      filepath.Join(t.TempDir(), "logs"),
		LogLevel:    "debug",
		LogFormat:   "json",
		Environment: "test",
		Location:    time.UTC,
	}

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	slog.Info("hello from test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from test"`)
	assert.Contains(t, string(data), `"service":"subrace"`)
}
