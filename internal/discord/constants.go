package discord

// Embed styling
const (
	EmbedColorResults = 0x9146FF
	TopEarnersLimit   = 3
	dayLayout         = "Monday, Jan 2"
)

const (
	webhookHost       = "discord.com"
	webhookPathPrefix = "/api/webhooks/"
)

// Log messages
const (
	LogMsgAnnounced = "Scoring results announced"
)
