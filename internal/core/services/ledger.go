package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// DayTotal is one day of the trailing week view.
type DayTotal struct {
	Date    string `json:"date"`
	Label   string `json:"label"`
	TotalMl int    `json:"total_ml"`
}

// LogDrink appends a drink to today's log, updates the running stats,
// awards points, evaluates achievements and resets reminder escalation.
// Crossing 100% of the daily goal awards the goal bonus once.
func (e *Engine) LogDrink(ctx context.Context, amountMl int, drinkType string) (*domain.DrinkEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()

	entry, err := domain.NewDrinkEntry(amountMl, drinkType, now)
	if err != nil {
		return nil, err
	}

	goal, err := e.currentGoalLocked(ctx)
	if err != nil {
		return nil, err
	}

	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := e.store.Stats(ctx)
	if err != nil {
		return nil, err
	}
	unlocks, err := e.store.Unlocks(ctx)
	if err != nil {
		return nil, err
	}

	today := timeutil.DateKey(now)
	totalBefore := intake.TotalFor(today)

	intake.Append(entry)
	stats.TotalIntakeMl += entry.AmountMl
	stats.TotalDrinks++
	stats.Touch(now)

	e.applyPoints(stats, unlocks, e.cfg.Points.DrinkOnTime, "Drank water! 💧")

	percentBefore := domain.Percentage(totalBefore, goal)
	percentAfter := domain.Percentage(totalBefore+entry.AmountMl, goal)
	if percentBefore < 100 && percentAfter >= 100 {
		e.applyPoints(stats, unlocks, e.cfg.Points.DailyGoal, "Daily goal reached! 🎯")
		e.unlockAchievement(unlocks, domain.AchPerfectDay)
		e.notifier.Notify("🎉 Daily goal reached!", "You're a hydration hero!")
		e.notifier.PlaySound("celebration", 0.7)
	}

	e.scanAchievements(ctx, stats, unlocks, now)

	if err := e.store.SaveIntakeLog(ctx, intake); err != nil {
		return nil, err
	}
	if err := e.store.SaveStats(ctx, stats); err != nil {
		return nil, err
	}
	if err := e.store.SaveUnlocks(ctx, unlocks); err != nil {
		return nil, err
	}

	if e.reminders != nil {
		e.reminders.Reset()
	}

	log.Printf("Logged %dml %s (today: %dml of %dml)", entry.AmountMl, entry.Type, totalBefore+entry.AmountMl, goal)
	return entry, nil
}

// DeleteDrink removes an entry from today's log by id and compensates the
// running stats. An unknown id is a benign no-op, not an error.
func (e *Engine) DeleteDrink(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()

	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return false, err
	}

	entry, ok := intake.Remove(timeutil.DateKey(now), id)
	if !ok {
		return false, nil
	}

	stats, err := e.store.Stats(ctx)
	if err != nil {
		return false, err
	}
	stats.TotalIntakeMl -= entry.AmountMl
	stats.TotalDrinks--
	stats.Touch(now)

	if err := e.store.SaveIntakeLog(ctx, intake); err != nil {
		return false, err
	}
	if err := e.store.SaveStats(ctx, stats); err != nil {
		return false, err
	}

	return true, nil
}

// TodayLog returns today's entries in insertion (chronological) order.
func (e *Engine) TodayLog(ctx context.Context) ([]*domain.DrinkEntry, error) {
	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return nil, err
	}
	entries := intake[timeutil.DateKey(e.clock.Now())]
	if entries == nil {
		entries = []*domain.DrinkEntry{}
	}
	return entries, nil
}

// TotalForDay sums the amounts logged on the given day.
func (e *Engine) TotalForDay(ctx context.Context, dateKey string) (int, error) {
	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return 0, err
	}
	return intake.TotalFor(dateKey), nil
}

// HourlyBreakdown buckets a day's intake into 24 reference-timezone hours.
func (e *Engine) HourlyBreakdown(ctx context.Context, dateKey string) ([]int, error) {
	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return nil, err
	}

	hourly := make([]int, 24)
	for _, entry := range intake[dateKey] {
		hourly[timeutil.HourOf(entry.Time())] += entry.AmountMl
	}
	return hourly, nil
}

// WeekHistory returns the trailing 7 days including today, oldest first.
func (e *Engine) WeekHistory(ctx context.Context) ([]DayTotal, error) {
	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return nil, err
	}

	now := e.clock.Now().In(timeutil.IST)
	history := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := timeutil.DateKey(day)
		history = append(history, DayTotal{
			Date:    key,
			Label:   day.Format("Mon"),
			TotalMl: intake.TotalFor(key),
		})
	}
	return history, nil
}

// WeeklyAverage is the mean daily intake over the trailing week.
func (e *Engine) WeeklyAverage(ctx context.Context) (int, error) {
	history, err := e.WeekHistory(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, day := range history {
		total += day.TotalMl
	}
	return int(float64(total)/7 + 0.5), nil
}

// scanAchievements evaluates the fixed predicate set after a drink event.
// Predicates are independent; each unlocks at most once.
func (e *Engine) scanAchievements(ctx context.Context, stats *domain.Stats, unlocks *domain.Unlocks, now time.Time) {
	if stats.TotalDrinks >= 1 {
		e.unlockAchievement(unlocks, domain.AchFirstDrop)
	}

	if stats.CurrentStreakDays >= 7 {
		e.unlockAchievement(unlocks, domain.AchWeekStreak)
	}
	if stats.CurrentStreakDays >= 30 {
		e.unlockAchievement(unlocks, domain.AchMonthStreak)
	}
	if stats.CurrentStreakDays >= 100 {
		e.unlockAchievement(unlocks, domain.AchCenturyStreak)
	}

	hour := timeutil.HourOf(now)
	if hour < 8 {
		e.unlockAchievement(unlocks, domain.AchEarlyBird)
	}
	if hour >= 22 {
		e.unlockAchievement(unlocks, domain.AchNightOwl)
	}

	if temp, _ := e.ambient(ctx); temp >= 35 {
		e.unlockAchievement(unlocks, domain.AchSummerSurvivor)
	}

	if stats.TotalDrinks >= 50 {
		e.unlockAchievement(unlocks, domain.AchHydrationHero)
	}

	if stats.Points >= 100 {
		e.unlockAchievement(unlocks, domain.AchPoints100)
	}
	if stats.Points >= 500 {
		e.unlockAchievement(unlocks, domain.AchPoints500)
	}
	if stats.Points >= 1000 {
		e.unlockAchievement(unlocks, domain.AchPoints1000)
	}
}

// unlockAchievement flips the flag and emits the one-time celebration.
// Unlocking an already-unlocked id is a no-op.
func (e *Engine) unlockAchievement(unlocks *domain.Unlocks, id string) {
	if !unlocks.AddAchievement(id) {
		return
	}

	achievement, ok := domain.AchievementByID(id)
	if !ok {
		// Unknown ids are tolerated but never celebrated.
		return
	}

	e.notifier.Notify("🏆 Achievement Unlocked", fmt.Sprintf("%s %s", achievement.Icon, achievement.Name))
	e.notifier.PlaySound("gentle-chime", 0.6)
}
