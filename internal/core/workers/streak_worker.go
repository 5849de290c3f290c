package workers

import (
	"context"
	"log"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
)

// StreakEngine runs the day-boundary streak transition.
type StreakEngine interface {
	CheckStreak(ctx context.Context) (int, error)
}

// StreakWorker re-runs the streak transition when the reference-timezone
// date changes while the process stays up. Without it a long-running
// engine would only ever evaluate streaks at startup.
type StreakWorker struct {
	engine  StreakEngine
	clock   clock.Clock
	lastDay string
}

func NewStreakWorker(engine StreakEngine, clk clock.Clock) *StreakWorker {
	return &StreakWorker{
		engine:  engine,
		clock:   clk,
		lastDay: timeutil.DateKey(clk.Now()),
	}
}

// Start polls for a day rollover until ctx is cancelled.
func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak worker started in background...")
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Tick(ctx)
			case <-ctx.Done():
				log.Println("Streak worker shutting down...")
				return
			}
		}
	}()
}

// Tick runs the transition once when the date key has changed.
func (w *StreakWorker) Tick(ctx context.Context) {
	today := timeutil.DateKey(w.clock.Now())
	if today == w.lastDay {
		return
	}
	w.lastDay = today

	streak, err := w.engine.CheckStreak(ctx)
	if err != nil {
		log.Printf("Day-rollover streak check failed: %v", err)
		return
	}
	log.Printf("Day rolled over to %s, streak is now %d days", today, streak)
}
