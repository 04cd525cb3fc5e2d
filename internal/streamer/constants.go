package streamer

const (
	LogMsgProfilesSynced = "Streamer profiles synced"
)
