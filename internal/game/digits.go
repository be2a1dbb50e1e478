package game

import (
	"fmt"
	"strings"

	"mastermind_reach/internal/domain"
)

// ParseDigits decodes the wire form of a code or guess: one ASCII digit
// per position, no separators. Rejects empty input and characters
// outside [0,7].
func ParseDigits(s string) ([]int, error) {
	if s == "" {
		return nil, domain.NewValidationError("guess must not be empty")
	}
	digits := make([]int, 0, len(s))
	for _, r := range s {
		d := int(r - '0')
		if d < domain.DigitMin || d > domain.DigitMax {
			return nil, domain.NewValidationError(
				fmt.Sprintf("invalid digit %q: must be %d-%d", r, domain.DigitMin, domain.DigitMax))
		}
		digits = append(digits, d)
	}
	return digits, nil
}

// DigitsToString encodes digits back to the wire form.
func DigitsToString(digits []int) string {
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteByte(byte('0' + d))
	}
	return sb.String()
}
