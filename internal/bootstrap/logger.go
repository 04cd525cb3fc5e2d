package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/SubRace_Go/internal/config"
	"github.com/osse101/SubRace_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, prunes old session files, and installs a
// slog default writing to both.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev" || cfg.Environment == "development",
	)
	logger.Init(loggerConfig, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"storage", cfg.Storage,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"timezone", cfg.Location.String(),
		"scheduler", cfg.EnableScheduler)

	return logFile, nil
}

// cleanupLogs removes the oldest session files so that at most keep remain.
// Session names embed a sortable timestamp.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= keep {
		return
	}

	sort.Strings(logFiles)
	for _, name := range logFiles[:len(logFiles)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
