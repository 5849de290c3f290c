package workers

import (
	"context"
	"log"
	"time"
)

// MemoryRound is the slice of the mini-game the worker drives.
type MemoryRound interface {
	Start() string
	Due() bool
	Ask()
}

// MemoryWorker paces the recall mini-game: it starts a round when none is
// in flight and asks the recall question once the deferral elapses.
type MemoryWorker struct {
	interval time.Duration
	game     MemoryRound
	activity ActivitySource
}

func NewMemoryWorker(interval time.Duration, game MemoryRound, activity ActivitySource) *MemoryWorker {
	return &MemoryWorker{
		interval: interval,
		game:     game,
		activity: activity,
	}
}

// Start runs the pacing loop until ctx is cancelled.
func (w *MemoryWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Memory game worker started in background...")
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Tick()
			case <-ctx.Done():
				log.Println("Memory game worker shutting down...")
				return
			}
		}
	}()
}

// Tick advances the round: recall first when due, otherwise try to start
// a fresh round. Absent users get neither.
func (w *MemoryWorker) Tick() {
	if w.activity != nil && (!w.activity.Active() || w.activity.InMeeting()) {
		return
	}

	if w.game.Due() {
		w.game.Ask()
		return
	}
	w.game.Start()
}
