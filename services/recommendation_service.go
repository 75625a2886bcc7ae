package services

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/VShilovich/fitness-bot/models"
)

const (
	waterLagThresholdML  = 500
	calorieComfortMargin = 300
)

var cardioSuggestions = []string{
	"быструю прогулку (30 мин)",
	"легкий бег (20 мин)",
	"йогу или растяжку",
	"приседания (3 подхода по 15 раз)",
}

var lowCalorieSnacks = []string{
	"Огурец",
	"Сельдерей",
	"Листовой салат",
	"Зеленое яблоко",
}

// RecommendationService turns a progress snapshot into an ordered list of
// advisory messages. The selector for randomized suggestions is injectable
// so tests can make the choice deterministic.
type RecommendationService struct {
	pick func(n int) int
}

func NewRecommendationService() *RecommendationService {
	return &RecommendationService{pick: rand.Intn}
}

// Recommend evaluates the water rule and exactly one calorie branch.
// The water check is independent of the calorie branches, not merged with
// them. An empty result means everything is on track; the caller substitutes
// its own all-clear message.
func (s *RecommendationService) Recommend(snap models.ProgressSnapshot) []string {
	var recs []string

	if lag := snap.WaterGoalML - snap.LoggedWaterML; lag > waterLagThresholdML {
		recs = append(recs, fmt.Sprintf("Вы отстаете по воде на %d мл.", lag))
	}

	// Exactly one of the three branches fires; 0 falls into the snack range,
	// 300 into the comfortable one.
	remaining := float64(snap.CalorieGoal) - snap.CalorieBalance
	switch {
	case remaining < 0:
		advice := cardioSuggestions[s.pick(len(cardioSuggestions))]
		recs = append(recs, fmt.Sprintf(
			"Вы превысили норму калорий на %d ккал.\nРекомендую сделать %s, чтобы сжечь лишнее.",
			int(math.Abs(math.Round(remaining))), advice,
		))
	case remaining < calorieComfortMargin:
		snack := lowCalorieSnacks[s.pick(len(lowCalorieSnacks))]
		recs = append(recs, fmt.Sprintf(
			"Вы почти у цели. Если голодны, перекусите чем-то легким:\nНапример: %s.",
			snack,
		))
	default:
		recs = append(recs, fmt.Sprintf(
			"У вас хороший запас калорий (%d ккал).\nМожете позволить себе полноценный обед с белками и сложными углеводами.",
			int(math.Round(remaining)),
		))
	}

	return recs
}
