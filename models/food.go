package models

// FoodInfo is the combined result of the two-step Spoonacular lookup:
// the resolved product name and its calorie density per 100 g.
type FoodInfo struct {
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
}
