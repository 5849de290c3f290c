package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

var (
	ErrNoActiveRound = errors.New("no memory round is waiting for an answer")
)

// MemoryGame is the deferred recall mini-game: a word is shown, then
// recalled hours later for points. Round state is in-memory only; a
// restart simply forfeits the pending round.
type MemoryGame struct {
	mu sync.Mutex

	engine   *Engine
	clock    clock.Clock
	notifier domain.Notifier
	deferral time.Duration
	pick     func(n int) int

	word     string
	askedAt  time.Time
	awaiting bool
}

func NewMemoryGame(engine *Engine, clk clock.Clock, notifier domain.Notifier, deferral time.Duration) *MemoryGame {
	return &MemoryGame{
		engine:   engine,
		clock:    clk,
		notifier: notifier,
		deferral: deferral,
		pick:     rand.Intn,
	}
}

// Start shows a new word unless a round is already in flight. Returns the
// word shown, empty when nothing started.
func (g *MemoryGame) Start() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.word != "" {
		return ""
	}

	g.word = domain.MemoryWords[g.pick(len(domain.MemoryWords))]
	g.askedAt = g.clock.Now()
	g.awaiting = false

	g.notifier.Notify("🧠 Memory round", fmt.Sprintf("Remember this word: %s", g.word))
	return g.word
}

// Due reports whether the deferral has elapsed and the recall question
// should be asked.
func (g *MemoryGame) Due() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.word != "" && !g.awaiting && g.clock.Now().Sub(g.askedAt) >= g.deferral
}

// Ask emits the recall prompt and opens the answer window.
func (g *MemoryGame) Ask() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.word == "" || g.awaiting {
		return
	}
	g.awaiting = true
	g.notifier.Notify("🧠 Memory Test", "What word were you shown earlier?")
}

// Answer resolves the open round. A correct answer (case-insensitive)
// awards the game bonus, bumps the win counter, and unlocks the mastery
// achievement at ten wins.
func (g *MemoryGame) Answer(ctx context.Context, answer string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.awaiting {
		return false, ErrNoActiveRound
	}

	word := g.word
	g.word = ""
	g.awaiting = false

	if !strings.EqualFold(strings.TrimSpace(answer), word) {
		g.notifier.Notify("❌ Wrong answer", fmt.Sprintf("The word was: %s", word))
		return false, nil
	}

	if err := g.engine.RecordMemoryWin(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// RecordMemoryWin credits a memory-game win: bonus points, win counter,
// and the mastery achievement once ten wins accumulate.
func (e *Engine) RecordMemoryWin(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	stats, err := e.store.Stats(ctx)
	if err != nil {
		return err
	}
	unlocks, err := e.store.Unlocks(ctx)
	if err != nil {
		return err
	}

	stats.MemoryGamesWon++
	e.applyPoints(stats, unlocks, e.cfg.Points.MemoryGame, "Memory game win!")

	if stats.MemoryGamesWon >= 10 {
		e.unlockAchievement(unlocks, domain.AchMemoryMaster)
	}

	if err := e.store.SaveStats(ctx, stats); err != nil {
		return err
	}
	return e.store.SaveUnlocks(ctx, unlocks)
}
