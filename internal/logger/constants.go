package logger

// Log level names accepted by LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyRunID       = "run_id"
	AttrKeyTrigger     = "trigger"
)

// Pipeline run triggers
const (
	TriggerScheduler = "scheduler"
	TriggerCron      = "cron"
	TriggerCLI       = "cli"
)
