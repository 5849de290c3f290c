package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestAwardPoints(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	balance, err := f.engine.AwardPoints(ctx, 30, "bonus")
	assert.NoError(t, err)
	assert.Equal(t, 30, balance)

	balance, err = f.engine.AwardPoints(ctx, 15, "bonus")
	assert.NoError(t, err)
	assert.Equal(t, 45, balance)
}

func TestDeductPointsFloorsAtZero(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	_, err := f.engine.AwardPoints(ctx, 10, "bonus")
	assert.NoError(t, err)

	balance, err := f.engine.DeductPoints(ctx, 50, "penalty")
	assert.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestPointsRejectNonPositiveAmounts(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	_, err := f.engine.AwardPoints(ctx, 0, "nope")
	assert.ErrorIs(t, err, services.ErrInvalidPoints)

	_, err = f.engine.DeductPoints(ctx, -5, "nope")
	assert.ErrorIs(t, err, services.ErrInvalidPoints)
}

func TestThemeUnlocksAtThresholds(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	unlocked, err := f.engine.IsThemeUnlocked(ctx, "forest")
	assert.NoError(t, err)
	assert.False(t, unlocked)

	_, err = f.engine.AwardPoints(ctx, 100, "grind")
	assert.NoError(t, err)

	unlocked, err = f.engine.IsThemeUnlocked(ctx, "forest")
	assert.NoError(t, err)
	assert.True(t, unlocked)
	assert.Equal(t, 1, f.notifier.countNotifications("New theme unlocked"))

	// Crossing the same threshold again stays silent.
	_, err = f.engine.AwardPoints(ctx, 10, "more")
	assert.NoError(t, err)
	assert.Equal(t, 1, f.notifier.countNotifications("New theme unlocked"))
}

func TestThemeUnlockSurvivesFallingBalance(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	_, err := f.engine.AwardPoints(ctx, 120, "grind")
	assert.NoError(t, err)
	_, err = f.engine.DeductPoints(ctx, 100, "spend")
	assert.NoError(t, err)

	unlocked, err := f.engine.IsThemeUnlocked(ctx, "forest")
	assert.NoError(t, err)
	assert.True(t, unlocked, "unlocks never regress")
}

func TestPointsAchievementsUnlockThroughDrinks(t *testing.T) {
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	ctx := context.Background()

	_, err := f.engine.AwardPoints(ctx, 95, "grind")
	assert.NoError(t, err)

	// The achievement scan runs on drink events; this drink lifts the
	// balance past 100.
	_, err = f.engine.LogDrink(ctx, 200, "water")
	assert.NoError(t, err)

	unlocks, _ := f.engine.Unlocks(ctx)
	assert.True(t, unlocks.HasAchievement("points-100"))
}
