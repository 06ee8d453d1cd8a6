package errors

import (
	"strings"
	"unicode"
)

// Limits on request input.
const (
	MaxIDLength  = 128
	MaxWaypoints = 1024
)

// ValidateHallID rejects hall ids that are empty, too long, or contain
// control characters or commas (commas separate ids on the command line).
func ValidateHallID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "hall id cannot be empty")
	}
	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidInput, "hall id too long (max %d characters)", MaxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "hall id %q contains control characters", id)
		}
	}
	if strings.ContainsRune(id, ',') {
		return New(ErrCodeInvalidInput, "hall id %q contains a comma", id)
	}
	return nil
}

// ValidateWaypoints checks every id and the total count.
func ValidateWaypoints(ids []string) error {
	if len(ids) > MaxWaypoints {
		return New(ErrCodeInvalidInput, "too many waypoints (max %d)", MaxWaypoints)
	}
	for _, id := range ids {
		if err := ValidateHallID(id); err != nil {
			return err
		}
	}
	return nil
}
