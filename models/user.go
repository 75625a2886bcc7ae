package models

// Profile holds the onboarding answers describing the user. Immutable after
// onboarding; a fresh /set_profile run replaces the whole UserRecord.
type Profile struct {
	WeightKg        int    `json:"weight_kg"`
	HeightCm        int    `json:"height_cm"`
	AgeYears        int    `json:"age_years"`
	ActivityMinutes int    `json:"activity_minutes"` // self-reported daily activity
	City            string `json:"city"`
}

// UserRecord is the per-user tracking state, one per Telegram user id.
type UserRecord struct {
	Profile

	// Captured once at onboarding and used only for the initial water goal,
	// never refreshed afterwards.
	TemperatureC float64 `json:"temperature_c"`

	WaterGoalML int `json:"water_goal_ml"` // grows with workout bonuses, never shrinks
	CalorieGoal int `json:"calorie_goal"`  // fixed at onboarding

	LoggedWaterML  int     `json:"logged_water_ml"`
	LoggedCalories float64 `json:"logged_calories"`
	BurnedCalories int     `json:"burned_calories"`
}
