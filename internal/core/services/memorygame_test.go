package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
	"github.com/sippyapp/sippy-engine/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func newGameFixture(t *testing.T) (*fixture, *services.MemoryGame) {
	t.Helper()
	f := newFixture(time.Date(2026, 1, 15, 10, 0, 0, 0, timeutil.IST))
	game := services.NewMemoryGame(f.engine, f.clock, f.notifier, 4*time.Hour)
	return f, game
}

func TestMemoryGameRoundLifecycle(t *testing.T) {
	f, game := newGameFixture(t)

	word := game.Start()
	assert.NotEmpty(t, word)
	assert.Equal(t, "", game.Start(), "second start is a no-op while a round is in flight")

	assert.False(t, game.Due(), "recall is not due before the deferral")
	f.clock.Advance(4 * time.Hour)
	assert.True(t, game.Due())

	game.Ask()
	assert.False(t, game.Due(), "asking closes the due window")
}

func TestMemoryGameCorrectAnswer(t *testing.T) {
	f, game := newGameFixture(t)
	ctx := context.Background()

	word := game.Start()
	f.clock.Advance(4 * time.Hour)
	game.Ask()

	// Case and surrounding whitespace are forgiven.
	correct, err := game.Answer(ctx, "  "+strings.ToUpper(word)+" ")
	assert.NoError(t, err)
	assert.True(t, correct)

	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 20, stats.Points)
	assert.Equal(t, 1, stats.MemoryGamesWon)
}

func TestMemoryGameWrongAnswerRevealsWord(t *testing.T) {
	f, game := newGameFixture(t)
	ctx := context.Background()

	word := game.Start()
	f.clock.Advance(4 * time.Hour)
	game.Ask()

	correct, err := game.Answer(ctx, "definitely-wrong")
	assert.NoError(t, err)
	assert.False(t, correct)
	assert.Equal(t, 1, f.notifier.countNotifications("The word was: "+word))

	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 0, stats.Points)
	assert.Equal(t, 0, stats.MemoryGamesWon)

	// The round is resolved either way.
	_, err = game.Answer(ctx, word)
	assert.ErrorIs(t, err, services.ErrNoActiveRound)
}

func TestMemoryGameAnswerWithoutRound(t *testing.T) {
	_, game := newGameFixture(t)

	_, err := game.Answer(context.Background(), "anything")
	assert.ErrorIs(t, err, services.ErrNoActiveRound)
}

func TestMemoryMasterAchievement(t *testing.T) {
	f, _ := newGameFixture(t)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		assert.NoError(t, f.engine.RecordMemoryWin(ctx))
	}

	unlocks, _ := f.engine.Unlocks(ctx)
	assert.True(t, unlocks.HasAchievement(domain.AchMemoryMaster))

	stats, _ := f.engine.Stats(ctx)
	assert.Equal(t, 10, stats.MemoryGamesWon)
	assert.Equal(t, 200, stats.Points)
}
