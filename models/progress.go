package models

// ProgressSnapshot is a read-only projection of a UserRecord at a point in
// time, consumed by the recommender, the chart renderer and the HTTP surface.
type ProgressSnapshot struct {
	LoggedWaterML    int `json:"logged_water_ml"`
	WaterGoalML      int `json:"water_goal_ml"`
	WaterRemainingML int `json:"water_remaining_ml"` // clamped at 0

	LoggedCalories float64 `json:"logged_calories"`
	BurnedCalories int     `json:"burned_calories"`
	CalorieBalance float64 `json:"calorie_balance"` // logged - burned
	CalorieGoal    int     `json:"calorie_goal"`
}

// PendingFoodLog holds a resolved food lookup between /log_food and the
// follow-up gram answer. One slot per user, overwritten on the next attempt.
type PendingFoodLog struct {
	Name            string
	CaloriesPer100g float64
}
