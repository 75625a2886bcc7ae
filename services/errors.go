package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotOnboarded means the operation needs a profile that was never set up.
	ErrNotOnboarded = errors.New("profile is not set up")

	// ErrInvalidAmount is returned for non-positive logged amounts. The bot's
	// parse step should already reject these; the tracker guards anyway so a
	// bad value never corrupts state.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrFoodNotFound covers every food-lookup failure: unknown product,
	// missing API key, or an unavailable Spoonacular. There is no safe
	// default calorie density, so the lookup degrades to "not found".
	ErrFoodNotFound = errors.New("food not found")
)

// InvalidInputError names the onboarding field that failed validation.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
