package services

import (
	"context"
	"errors"
	"testing"

	"github.com/VShilovich/fitness-bot/models"
	"github.com/VShilovich/fitness-bot/store"
)

type stubWeather struct {
	temperature float64
	calledCity  string
}

func (s *stubWeather) Temperature(_ context.Context, city string) float64 {
	s.calledCity = city
	return s.temperature
}

func validProfile() models.Profile {
	return models.Profile{
		WeightKg:        70,
		HeightCm:        175,
		AgeYears:        30,
		ActivityMinutes: 30,
		City:            "Москва",
	}
}

func TestFinalizeCreatesRecordWithDerivedGoals(t *testing.T) {
	users := store.NewMemory()
	weather := &stubWeather{temperature: 28}
	svc := NewOnboardingService(users, weather)

	rec, err := svc.Finalize(context.Background(), 1, validProfile())
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if weather.calledCity != "Москва" {
		t.Fatalf("weather called with city %q, want Москва", weather.calledCity)
	}
	// 70*30 + 500 (activity) + 500 (heat above 25°C)
	if rec.WaterGoalML != 3100 {
		t.Fatalf("Finalize() water goal = %d, want 3100", rec.WaterGoalML)
	}
	if rec.CalorieGoal != 1734 {
		t.Fatalf("Finalize() calorie goal = %d, want 1734", rec.CalorieGoal)
	}
	if rec.TemperatureC != 28 {
		t.Fatalf("Finalize() temperature = %v, want 28", rec.TemperatureC)
	}

	stored, err := users.Get(1)
	if err != nil {
		t.Fatalf("Get() after finalize error = %v", err)
	}
	if stored != rec {
		t.Fatalf("stored record = %+v, want %+v", stored, rec)
	}
}

func TestFinalizeValidationNamesTheField(t *testing.T) {
	svc := NewOnboardingService(store.NewMemory(), &stubWeather{temperature: 20})

	cases := []struct {
		name   string
		mutate func(*models.Profile)
		field  string
	}{
		{"weight", func(p *models.Profile) { p.WeightKg = 0 }, "weight"},
		{"height", func(p *models.Profile) { p.HeightCm = -170 }, "height"},
		{"age", func(p *models.Profile) { p.AgeYears = 0 }, "age"},
		{"activity", func(p *models.Profile) { p.ActivityMinutes = -1 }, "activity"},
		{"city", func(p *models.Profile) { p.City = "   " }, "city"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			tc.mutate(&p)

			_, err := svc.Finalize(context.Background(), 1, p)
			var invalid *InvalidInputError
			if !errors.As(err, &invalid) {
				t.Fatalf("Finalize() error = %v, want InvalidInputError", err)
			}
			if invalid.Field != tc.field {
				t.Fatalf("InvalidInputError.Field = %q, want %q", invalid.Field, tc.field)
			}
		})
	}
}

func TestFinalizeValidationDoesNotTouchStore(t *testing.T) {
	users := store.NewMemory()
	svc := NewOnboardingService(users, &stubWeather{temperature: 20})

	p := validProfile()
	p.WeightKg = -1
	if _, err := svc.Finalize(context.Background(), 7, p); err == nil {
		t.Fatal("Finalize() with bad profile succeeded, want error")
	}
	if _, err := users.Get(7); !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("Get() after failed finalize error = %v, want ErrUserNotFound", err)
	}
}

func TestReonboardingReplacesRecordWholesale(t *testing.T) {
	users := store.NewMemory()
	svc := NewOnboardingService(users, &stubWeather{temperature: 20})
	tracker := NewTrackerService(users)

	if _, err := svc.Finalize(context.Background(), 1, validProfile()); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if _, err := tracker.LogWater(1, 700); err != nil {
		t.Fatalf("LogWater() error = %v", err)
	}
	if _, _, err := tracker.LogWorkout(1, 60); err != nil {
		t.Fatalf("LogWorkout() error = %v", err)
	}

	rec, err := svc.Finalize(context.Background(), 1, validProfile())
	if err != nil {
		t.Fatalf("re-Finalize() error = %v", err)
	}
	if rec.LoggedWaterML != 0 || rec.LoggedCalories != 0 || rec.BurnedCalories != 0 {
		t.Fatalf("re-onboarded record keeps progress: %+v", rec)
	}
	// The workout's water-goal bonus is gone too: goals start from the formula.
	if rec.WaterGoalML != 2600 {
		t.Fatalf("re-onboarded water goal = %d, want 2600", rec.WaterGoalML)
	}
}
