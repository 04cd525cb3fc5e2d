package user

// Username rules
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MaxUsernameNumber = 9998
)

// createAttempts bounds retries when a generated referral code collides
const createAttempts = 5

const referralAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var usernameAdjectives = []string{
	"Swift", "Bold", "Silent", "Fierce", "Cosmic", "Neon", "Shadow", "Thunder",
	"Crystal", "Phantom", "Blazing", "Mystic", "Elite", "Rapid", "Stellar",
}

var usernameNouns = []string{
	"Wolf", "Tiger", "Eagle", "Dragon", "Phoenix", "Viper", "Falcon", "Panther",
	"Hawk", "Lion", "Warrior", "Knight", "Hunter", "Champion", "Legend",
}

// Log messages
const (
	LogMsgUserCreated          = "User created"
	LogMsgReferralCredited     = "Referral bonus credited"
	LogMsgReferralUnknown      = "Referral code not found, ignoring"
	LogMsgReferralCreditFailed = "Failed to credit referral bonus"
	LogMsgTouchFailed          = "Failed to update last active"
)
