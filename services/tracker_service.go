package services

import (
	"errors"

	"github.com/VShilovich/fitness-bot/models"
	"github.com/VShilovich/fitness-bot/store"
)

const (
	kcalBurnedPerMinute = 10
	workoutWaterBonusML = 200 // per full 30-minute block
)

// UserStore is the slice of the store the services need.
type UserStore interface {
	Get(userID int64) (models.UserRecord, error)
	Put(userID int64, rec models.UserRecord)
	Update(userID int64, mutate func(*models.UserRecord)) (models.UserRecord, error)
}

// TrackerService accumulates logged water, food and workouts against the
// goals fixed at onboarding. All mutations go through the store's per-key
// atomic update, so concurrent logs for the same user never lose increments.
type TrackerService struct {
	users UserStore
}

func NewTrackerService(users UserStore) *TrackerService {
	return &TrackerService{users: users}
}

// LogWater adds amountML to the user's logged water and returns how much is
// still left to drink today, clamped at zero.
func (s *TrackerService) LogWater(userID int64, amountML int) (remainingML int, err error) {
	if amountML <= 0 {
		return 0, ErrInvalidAmount
	}
	rec, err := s.users.Update(userID, func(r *models.UserRecord) {
		r.LoggedWaterML += amountML
	})
	if err != nil {
		return 0, notOnboarded(err)
	}
	return clampNonNegative(rec.WaterGoalML - rec.LoggedWaterML), nil
}

// LogFood records grams of a product with the given calorie density and
// returns the consumed kilocalories (caloriesPer100g × grams / 100).
func (s *TrackerService) LogFood(userID int64, caloriesPer100g float64, grams int) (consumedKcal float64, err error) {
	if grams <= 0 || caloriesPer100g <= 0 {
		return 0, ErrInvalidAmount
	}
	consumedKcal = caloriesPer100g * float64(grams) / 100
	if _, err := s.users.Update(userID, func(r *models.UserRecord) {
		r.LoggedCalories += consumedKcal
	}); err != nil {
		return 0, notOnboarded(err)
	}
	return consumedKcal, nil
}

// LogWorkout credits burned calories at a fixed 10 kcal/min and raises the
// water goal by 200 ml per full 30 minutes. The goal increase is uncapped:
// every logged workout adds its bonus, repeated ones included.
func (s *TrackerService) LogWorkout(userID int64, minutes int) (burnedKcal, waterBonusML int, err error) {
	if minutes <= 0 {
		return 0, 0, ErrInvalidAmount
	}
	burnedKcal = minutes * kcalBurnedPerMinute
	waterBonusML = minutes / 30 * workoutWaterBonusML
	if _, err := s.users.Update(userID, func(r *models.UserRecord) {
		r.BurnedCalories += burnedKcal
		r.WaterGoalML += waterBonusML
	}); err != nil {
		return 0, 0, notOnboarded(err)
	}
	return burnedKcal, waterBonusML, nil
}

// Snapshot returns the read-only progress projection for the user.
func (s *TrackerService) Snapshot(userID int64) (models.ProgressSnapshot, error) {
	rec, err := s.users.Get(userID)
	if err != nil {
		return models.ProgressSnapshot{}, notOnboarded(err)
	}
	return models.ProgressSnapshot{
		LoggedWaterML:    rec.LoggedWaterML,
		WaterGoalML:      rec.WaterGoalML,
		WaterRemainingML: clampNonNegative(rec.WaterGoalML - rec.LoggedWaterML),
		LoggedCalories:   rec.LoggedCalories,
		BurnedCalories:   rec.BurnedCalories,
		CalorieBalance:   rec.LoggedCalories - float64(rec.BurnedCalories),
		CalorieGoal:      rec.CalorieGoal,
	}, nil
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func notOnboarded(err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrNotOnboarded
	}
	return err
}
