package workers

import (
	"context"
	"log"
	"time"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// PromptEngine supplies the proactive message text and the notification
// toggle.
type PromptEngine interface {
	Profile(ctx context.Context) (*domain.UserProfile, error)
	MotivationalMessage(ctx context.Context) (string, error)
}

// PromptWorker sends an unsolicited motivational message on a long
// cadence. It respects the same presence guards as reminders so an
// absent user never accumulates prompts.
type PromptWorker struct {
	interval time.Duration
	engine   PromptEngine
	activity ActivitySource
	notifier domain.Notifier
}

func NewPromptWorker(interval time.Duration, engine PromptEngine, activity ActivitySource, notifier domain.Notifier) *PromptWorker {
	return &PromptWorker{
		interval: interval,
		engine:   engine,
		activity: activity,
		notifier: notifier,
	}
}

// Start emits a prompt every interval until ctx is cancelled.
func (w *PromptWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Prompt worker started in background...")
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Tick(ctx)
			case <-ctx.Done():
				log.Println("Prompt worker shutting down...")
				return
			}
		}
	}()
}

// Tick sends one prompt if the user is present and notifications are on.
func (w *PromptWorker) Tick(ctx context.Context) {
	profile, err := w.engine.Profile(ctx)
	if err != nil {
		log.Printf("Prompt skipped, profile unavailable: %v", err)
		return
	}
	if !profile.NotificationsEnabled {
		return
	}
	if profile.ActivityTrackingEnabled && w.activity != nil &&
		(!w.activity.Active() || w.activity.InMeeting()) {
		return
	}

	message, err := w.engine.MotivationalMessage(ctx)
	if err != nil {
		log.Printf("Prompt skipped, message unavailable: %v", err)
		return
	}

	w.notifier.Notify("💧 Sippy", message)
}
