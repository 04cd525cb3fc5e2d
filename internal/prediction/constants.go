package prediction

// Log messages
const (
	LogMsgPredictionSubmitted = "Prediction submitted"
	LogMsgTouchFailed         = "Failed to update last active"
)
