package scheduler

// LogMsgJobEnqueued is logged each time a scheduled job is queued
const LogMsgJobEnqueued = "Scheduled job enqueued"
