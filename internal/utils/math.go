package utils

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
)

// SecureRandomInt returns a random integer between min and max (inclusive) using crypto/rand
func SecureRandomInt(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("min cannot be greater than max")
	}
	diff := big.NewInt(int64(max - min + 1))
	n, err := crand.Int(crand.Reader, diff)
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + min, nil
}

// AbsInt64 returns the absolute value of v
func AbsInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// WithinPercent reports whether |predicted-actual|/actual <= percent/100.
// An actual value of zero or less never matches, nor does a negative
// prediction. The bound is floor(actual*percent/100), split so no
// intermediate product overflows for any prediction.
func WithinPercent(predicted, actual, percent int64) bool {
	if actual <= 0 || predicted < 0 || percent < 0 {
		return false
	}
	limit := (actual/100)*percent + (actual%100)*percent/100
	return AbsInt64(predicted-actual) <= limit
}

// Percentage returns part/total as a whole percent rounded half up, 0 when
// total is 0
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (part*200 + total) / (2 * total)
}

// RoundedAverage returns sum/count rounded half up, 0 when count is 0
func RoundedAverage(sum int64, count int) int64 {
	if count <= 0 {
		return 0
	}
	return (2*sum + int64(count)) / (2 * int64(count))
}
