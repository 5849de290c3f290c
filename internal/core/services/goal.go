package services

import (
	"context"
	"math"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/config"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// DailyGoal computes the target intake in ml from body weight, ambient
// conditions and season. Pure; always in [MinGoalMl, MaxGoalMl].
func DailyGoal(h config.Hydration, weightKg, tempC, humidityPct float64, season string) int {
	if weightKg <= 0 {
		weightKg = h.DefaultWeight
	}

	goal := weightKg*h.BaseMultiplier + tempC*h.TempFactor + humidityPct*h.HumidityFactor

	switch season {
	case timeutil.SeasonSummer:
		goal *= 1.25
	case timeutil.SeasonMonsoon:
		goal *= 0.90
	}

	rounded := int(math.Round(goal))
	if rounded < h.MinGoalMl {
		return h.MinGoalMl
	}
	if rounded > h.MaxGoalMl {
		return h.MaxGoalMl
	}
	return rounded
}

// CurrentGoal returns today's goal, computing and caching it from the
// stored profile and weather cache. Missing weather falls back to the
// configured defaults; this never fails into an unusable goal.
func (e *Engine) CurrentGoal(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentGoalLocked(ctx)
}

func (e *Engine) currentGoalLocked(ctx context.Context) (int, error) {
	if e.goalMl > 0 {
		return e.goalMl, nil
	}

	profile, err := e.store.Profile(ctx)
	if err != nil {
		return 0, err
	}

	temp, humidity := e.ambient(ctx)
	season := timeutil.Season(e.clock.Now())

	e.goalMl = DailyGoal(e.cfg.Hydration, profile.WeightKg, temp, humidity, season)
	return e.goalMl, nil
}

// ambient reads the weather cache, substituting fallbacks when the
// cache is absent or unreadable.
func (e *Engine) ambient(ctx context.Context) (tempC, humidityPct float64) {
	snapshot, err := e.store.Weather(ctx)
	if err != nil || snapshot == nil {
		return e.cfg.FallbackTempC, e.cfg.FallbackHumidity
	}
	return snapshot.TempC, snapshot.HumidityPct
}

// SaveWeather stores a fresh snapshot and invalidates the cached goal so
// the next read reflects the new conditions.
func (e *Engine) SaveWeather(ctx context.Context, snapshot *domain.WeatherSnapshot) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.SaveWeather(ctx, snapshot); err != nil {
		return err
	}
	e.goalMl = 0
	return nil
}

// Weather returns the cached snapshot, or nil when never written.
func (e *Engine) Weather(ctx context.Context) (*domain.WeatherSnapshot, error) {
	return e.store.Weather(ctx)
}

// Progress is the dashboard view of today's hydration.
type Progress struct {
	GoalMl      int    `json:"goal_ml"`
	IntakeMl    int    `json:"intake_ml"`
	Percent     int    `json:"percent"`
	BubbleState string `json:"bubble_state"`
}

// TodayProgress derives intake, percentage and bubble state for today.
func (e *Engine) TodayProgress(ctx context.Context) (*Progress, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	goal, err := e.currentGoalLocked(ctx)
	if err != nil {
		return nil, err
	}

	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return nil, err
	}

	total := intake.TotalFor(timeutil.DateKey(e.clock.Now()))
	percent := domain.Percentage(total, goal)

	return &Progress{
		GoalMl:      goal,
		IntakeMl:    total,
		Percent:     percent,
		BubbleState: domain.BubbleState(percent),
	}, nil
}
