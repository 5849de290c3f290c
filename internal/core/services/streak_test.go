package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/stretchr/testify/assert"
)

func TestCheckStreakSameDayIsNoOp(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	streak, err := f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak)

	f.clock.Advance(5 * time.Hour)
	streak, err = f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestCheckStreakConsecutiveDrinkingDays(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	_, err := f.engine.LogDrink(ctx, 200, "water")
	assert.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	streak, err := f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, streak)

	_, err = f.engine.LogDrink(ctx, 200, "water")
	assert.NoError(t, err)

	f.clock.Advance(24 * time.Hour)
	streak, err = f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, streak)

	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 2, stats.LongestStreakDays)
	// 10 per drink, 5 streak points on day one, 10 on day two.
	assert.Equal(t, 35, stats.Points)
}

func TestCheckStreakRolloverWithoutDrinkBreaksStreak(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := f.engine.LogDrink(ctx, 200, "water")
		assert.NoError(t, err)
		f.clock.Advance(24 * time.Hour)
		_, err = f.engine.CheckStreak(ctx)
		assert.NoError(t, err)
	}
	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 2, stats.CurrentStreakDays)

	// Midnight passes with nothing logged the previous day: the streak
	// breaks even though the process never went down.
	f.clock.Advance(24 * time.Hour)
	streak, err := f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak)
	assert.Equal(t, 1, f.notifier.countNotifications("Streak broken"))
}

func TestCheckStreakBreaksAfterGap(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.engine.LogDrink(ctx, 200, "water")
		assert.NoError(t, err)
		f.clock.Advance(24 * time.Hour)
		_, err = f.engine.CheckStreak(ctx)
		assert.NoError(t, err)
	}
	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 3, stats.CurrentStreakDays)
	pointsBefore := stats.Points

	f.clock.Advance(3 * 24 * time.Hour)
	streak, err := f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak)

	stats, _ = f.engine.Stats(ctx)
	assert.Equal(t, 0, stats.CurrentStreakDays)
	assert.Equal(t, 3, stats.LongestStreakDays, "high water mark survives the break")
	assert.Equal(t, pointsBefore-20, stats.Points)
	assert.Equal(t, 1, f.notifier.countNotifications("Streak broken"))
}

func TestCheckStreakGapWithoutStreakHasNoPenalty(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	f.clock.Advance(5 * 24 * time.Hour)
	streak, err := f.engine.CheckStreak(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, streak)

	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 0, stats.Points)
	assert.Equal(t, 0, f.notifier.countNotifications("Streak broken"))
}

func TestCheckStreakUnlocksWeekAchievementThroughDrink(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := f.engine.LogDrink(ctx, 200, "water")
		assert.NoError(t, err)
		f.clock.Advance(24 * time.Hour)
		_, err = f.engine.CheckStreak(ctx)
		assert.NoError(t, err)
	}

	// The streak achievement scan runs on drink events.
	_, err := f.engine.LogDrink(ctx, 200, "water")
	assert.NoError(t, err)

	unlocks, _ := f.engine.Unlocks(ctx)
	assert.True(t, unlocks.HasAchievement("streak-7"))
}