package user

import (
	"fmt"
	"strings"

	"github.com/osse101/SubRace_Go/internal/domain"
	"github.com/osse101/SubRace_Go/internal/utils"
)

// GenerateUsername returns adjective + noun + number, e.g. "SwiftWolf42"
func GenerateUsername() (string, error) {
	adj, err := pick(usernameAdjectives)
	if err != nil {
		return "", err
	}
	noun, err := pick(usernameNouns)
	if err != nil {
		return "", err
	}
	num, err := utils.SecureRandomInt(0, MaxUsernameNumber)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%s%d", adj, noun, num), nil
}

// GenerateReferralCode returns an upper-case alphanumeric code
func GenerateReferralCode() (string, error) {
	var sb strings.Builder
	sb.Grow(domain.ReferralCodeLength)
	for i := 0; i < domain.ReferralCodeLength; i++ {
		idx, err := utils.SecureRandomInt(0, len(referralAlphabet)-1)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referralAlphabet[idx])
	}
	return sb.String(), nil
}

// ValidateUsername trims and checks the username length
func ValidateUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	n := len([]rune(trimmed))
	if n < MinUsernameLength || n > MaxUsernameLength {
		return "", fmt.Errorf("%w: must be %d-%d characters", domain.ErrInvalidUsername, MinUsernameLength, MaxUsernameLength)
	}
	return trimmed, nil
}

func pick(options []string) (string, error) {
	idx, err := utils.SecureRandomInt(0, len(options)-1)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}
