package services

import (
	"math"

	"github.com/VShilovich/fitness-bot/models"
)

const (
	waterPerKgML       = 30
	waterPerBlockML    = 500 // per full 30-minute activity block
	hotWeatherLimitC   = 25.0
	hotWeatherBonusML  = 500
	kcalPerActivityMin = 3
)

// ComputeGoals derives the daily water and calorie targets from the profile
// and the temperature captured at onboarding. Pure and deterministic; inputs
// are assumed pre-validated. The bonus for heat applies strictly above 25°C.
// An implausible profile can yield a negative calorie goal, which is
// accepted as-is rather than clamped.
func ComputeGoals(p models.Profile, temperatureC float64) (waterGoalML, calorieGoal int) {
	waterGoalML = p.WeightKg*waterPerKgML + p.ActivityMinutes/30*waterPerBlockML
	if temperatureC > hotWeatherLimitC {
		waterGoalML += hotWeatherBonusML
	}

	calorieGoal = int(math.Round(
		10*float64(p.WeightKg) +
			6.25*float64(p.HeightCm) -
			5*float64(p.AgeYears) +
			kcalPerActivityMin*float64(p.ActivityMinutes),
	))
	return waterGoalML, calorieGoal
}
