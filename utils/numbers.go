package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotPositive = errors.New("value must be a positive integer")

// ParsePositiveInt parses user-typed text into a positive integer.
func ParsePositiveInt(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// ParseNonNegativeInt parses user-typed text into an integer ≥ 0 (daily
// activity minutes may legitimately be zero).
func ParseNonNegativeInt(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrNotPositive
	}
	return v, nil
}

// FormatKcal renders kilocalories with one decimal, the way the bot displays
// consumed calories. Storage keeps full precision; this is display only.
func FormatKcal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
