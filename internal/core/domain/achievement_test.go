package domain_test

import (
	"testing"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestAchievementByID(t *testing.T) {
	a, ok := domain.AchievementByID(domain.AchFirstDrop)
	assert.True(t, ok)
	assert.Equal(t, "First Drop", a.Name)

	_, ok = domain.AchievementByID("no-such-achievement")
	assert.False(t, ok)
}

func TestUnlocksAddAchievementIsIdempotent(t *testing.T) {
	u := domain.DefaultUnlocks()

	assert.True(t, u.AddAchievement(domain.AchFirstDrop))
	assert.False(t, u.AddAchievement(domain.AchFirstDrop), "second unlock is a no-op")
	assert.True(t, u.HasAchievement(domain.AchFirstDrop))
	assert.Len(t, u.Achievements, 1)
}

func TestUnlocksThemes(t *testing.T) {
	u := domain.DefaultUnlocks()

	assert.True(t, u.HasTheme(domain.DefaultTheme), "default theme always unlocked")
	assert.False(t, u.HasTheme("forest"))

	assert.True(t, u.AddTheme("forest"))
	assert.False(t, u.AddTheme("forest"))
	assert.True(t, u.HasTheme("forest"))
}

func TestThemeThresholdsAscending(t *testing.T) {
	prev := -1
	for _, threshold := range domain.ThemeThresholds {
		assert.Greater(t, threshold.Points, prev)
		prev = threshold.Points
	}
}
