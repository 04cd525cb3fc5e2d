package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Unique constraint names used to tell conflicts apart
const (
	constraintPredictionUserDate = "idx_predictions_user_date"
)
