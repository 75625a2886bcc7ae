package services

import (
	"strings"
	"testing"

	"github.com/VShilovich/fitness-bot/models"
)

func fixedRecommender(choice int) *RecommendationService {
	return &RecommendationService{pick: func(int) int { return choice }}
}

func TestRecommendWaterLagOverThreshold(t *testing.T) {
	recs := fixedRecommender(0).Recommend(models.ProgressSnapshot{
		WaterGoalML:   2500,
		LoggedWaterML: 1000,
		CalorieGoal:   2000,
	})

	if len(recs) != 2 {
		t.Fatalf("Recommend() returned %d messages, want 2 (water + calories)", len(recs))
	}
	if !strings.Contains(recs[0], "1500 мл") {
		t.Fatalf("water message = %q, want lag of 1500 мл", recs[0])
	}
}

func TestRecommendWaterLagAtThresholdIsSilent(t *testing.T) {
	recs := fixedRecommender(0).Recommend(models.ProgressSnapshot{
		WaterGoalML:   2000,
		LoggedWaterML: 1500, // lag is exactly 500, not over it
		CalorieGoal:   2000,
	})

	for _, r := range recs {
		if strings.Contains(r, "по воде") {
			t.Fatalf("unexpected water message for lag of exactly 500: %q", r)
		}
	}
}

func TestRecommendCalorieOverage(t *testing.T) {
	recs := fixedRecommender(2).Recommend(models.ProgressSnapshot{
		WaterGoalML:    2000,
		LoggedWaterML:  2000,
		CalorieGoal:    1500,
		LoggedCalories: 1800,
		CalorieBalance: 1800,
	})

	if len(recs) != 1 {
		t.Fatalf("Recommend() returned %d messages, want 1", len(recs))
	}
	if !strings.Contains(recs[0], "превысили норму калорий на 300 ккал") {
		t.Fatalf("overage message = %q, want 300 ккал overage", recs[0])
	}
	if !strings.Contains(recs[0], cardioSuggestions[2]) {
		t.Fatalf("overage message = %q, want chosen cardio %q", recs[0], cardioSuggestions[2])
	}
}

func TestRecommendBoundaryZeroFallsIntoSnackBranch(t *testing.T) {
	// calorieRemaining == 0 belongs to [0, 300), not to the overage branch.
	recs := fixedRecommender(1).Recommend(models.ProgressSnapshot{
		CalorieGoal:    1500,
		CalorieBalance: 1500,
	})

	if len(recs) != 1 {
		t.Fatalf("Recommend() returned %d messages, want 1", len(recs))
	}
	if !strings.Contains(recs[0], lowCalorieSnacks[1]) {
		t.Fatalf("boundary-0 message = %q, want snack suggestion %q", recs[0], lowCalorieSnacks[1])
	}
}

func TestRecommendBoundary300FallsIntoComfortableBranch(t *testing.T) {
	// calorieRemaining == 300 belongs to the "comfortable surplus" branch.
	recs := fixedRecommender(0).Recommend(models.ProgressSnapshot{
		CalorieGoal:    1800,
		CalorieBalance: 1500,
	})

	if len(recs) != 1 {
		t.Fatalf("Recommend() returned %d messages, want 1", len(recs))
	}
	if !strings.Contains(recs[0], "хороший запас калорий (300 ккал)") {
		t.Fatalf("boundary-300 message = %q, want comfortable-surplus wording", recs[0])
	}
}

func TestRecommendPickStaysInRange(t *testing.T) {
	// The default selector must receive the slice length, never more.
	var gotN int
	svc := &RecommendationService{pick: func(n int) int {
		gotN = n
		return n - 1
	}}

	svc.Recommend(models.ProgressSnapshot{CalorieGoal: 0, CalorieBalance: 100})
	if gotN != len(cardioSuggestions) {
		t.Fatalf("pick received n = %d, want %d", gotN, len(cardioSuggestions))
	}
}
