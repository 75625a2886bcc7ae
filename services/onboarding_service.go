package services

import (
	"context"
	"strings"

	"github.com/VShilovich/fitness-bot/models"
)

// TemperatureProvider resolves the current temperature for a city. It must
// not fail outward; implementations fall back internally so onboarding is
// never blocked by weather-service unavailability.
type TemperatureProvider interface {
	Temperature(ctx context.Context, city string) float64
}

// OnboardingService validates collected profile answers, derives goals and
// commits a fresh user record.
type OnboardingService struct {
	users   UserStore
	weather TemperatureProvider
}

func NewOnboardingService(users UserStore, weather TemperatureProvider) *OnboardingService {
	return &OnboardingService{users: users, weather: weather}
}

// Finalize commits a new record with all counters at zero, replacing any
// previous record for the user wholesale — re-onboarding discards logged
// progress. The weather lookup runs before the store commit, so no per-user
// lock is ever held while waiting on the network.
func (s *OnboardingService) Finalize(ctx context.Context, userID int64, p models.Profile) (models.UserRecord, error) {
	if err := validateProfile(p); err != nil {
		return models.UserRecord{}, err
	}

	temperature := s.weather.Temperature(ctx, p.City)
	waterGoal, calorieGoal := ComputeGoals(p, temperature)

	rec := models.UserRecord{
		Profile:      p,
		TemperatureC: temperature,
		WaterGoalML:  waterGoal,
		CalorieGoal:  calorieGoal,
	}
	s.users.Put(userID, rec)
	return rec, nil
}

func validateProfile(p models.Profile) error {
	switch {
	case p.WeightKg <= 0:
		return &InvalidInputError{Field: "weight", Reason: "must be positive"}
	case p.HeightCm <= 0:
		return &InvalidInputError{Field: "height", Reason: "must be positive"}
	case p.AgeYears <= 0:
		return &InvalidInputError{Field: "age", Reason: "must be positive"}
	case p.ActivityMinutes < 0:
		return &InvalidInputError{Field: "activity", Reason: "must not be negative"}
	case strings.TrimSpace(p.City) == "":
		return &InvalidInputError{Field: "city", Reason: "must not be empty"}
	}
	return nil
}
