package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/config"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// ReminderEngine is the slice of the engine the machine needs: the
// profile for guard and volume settings, message rendering, and the
// tier-5 penalty.
type ReminderEngine interface {
	Profile(ctx context.Context) (*domain.UserProfile, error)
	ReminderMessage(ctx context.Context, tier int) (string, error)
	DeductPoints(ctx context.Context, points int, reason string) (int, error)
}

// ActivitySource gates reminders on inferred user presence.
type ActivitySource interface {
	Active() bool
	InMeeting() bool
}

// ReminderMachine is the five-tier escalation state machine. It polls
// minutes-since-last-drink against ascending thresholds and enters the
// highest satisfied tier; it never regresses on its own. Re-entering the
// stored tier is a no-op, so each escalation's side effects fire once.
// State is process-lifetime only: a restart begins at tier 0.
type ReminderMachine struct {
	mu sync.Mutex

	cfg      config.Reminders
	penalty  int
	engine   ReminderEngine
	activity ActivitySource
	notifier domain.Notifier
	clock    clock.Clock

	lastDrink    time.Time
	tier         int
	snoozedUntil time.Time

	restart chan struct{}
}

func NewReminderMachine(cfg config.Reminders, penalty int, engine ReminderEngine, activity ActivitySource, notifier domain.Notifier, clk clock.Clock) *ReminderMachine {
	return &ReminderMachine{
		cfg:       cfg,
		penalty:   penalty,
		engine:    engine,
		activity:  activity,
		notifier:  notifier,
		clock:     clk,
		lastDrink: clk.Now(),
		restart:   make(chan struct{}, 1),
	}
}

// Start runs the periodic check loop until ctx is cancelled.
func (m *ReminderMachine) Start(ctx context.Context) {
	go func() {
		log.Println("Reminder machine started in background...")
		ticker := time.NewTicker(m.cfg.CheckInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				m.Tick(ctx)
			case <-m.restart:
				ticker.Reset(m.cfg.CheckInterval)
			case <-ctx.Done():
				log.Println("Reminder machine shutting down...")
				return
			}
		}
	}()
}

// Restart re-arms the check loop after a frequency change. Escalation
// state and the last-drink mark are deliberately untouched.
func (m *ReminderMachine) Restart() {
	select {
	case m.restart <- struct{}{}:
	default:
	}
}

// Tick runs one check. Guards are evaluated first; any of them skips the
// whole check so the machine fails safe toward silence.
//
// m.mu is never held across an engine call: the engine invokes Reset and
// Restart while holding its own lock, so taking both here in the other
// order would block the tick and the caller against each other.
func (m *ReminderMachine) Tick(ctx context.Context) {
	now := m.clock.Now()

	m.mu.Lock()
	snoozed := now.Before(m.snoozedUntil)
	m.mu.Unlock()
	if snoozed {
		return
	}

	profile, err := m.engine.Profile(ctx)
	if err != nil {
		log.Printf("Reminder check skipped, profile unavailable: %v", err)
		return
	}
	if !profile.NotificationsEnabled {
		return
	}

	// With tracking disabled the user is always treated as present.
	if profile.ActivityTrackingEnabled && m.activity != nil &&
		(!m.activity.Active() || m.activity.InMeeting()) {
		return
	}

	m.mu.Lock()
	minutes := now.Sub(m.lastDrink).Minutes()

	next := 0
	for i, threshold := range m.cfg.TierMinutes {
		if minutes >= float64(threshold) {
			next = i + 1
		}
	}

	if next == 0 || next == m.tier {
		m.mu.Unlock()
		return
	}
	m.tier = next
	m.mu.Unlock()

	m.fire(ctx, next, profile)
}

// fire dispatches the side effects for a newly entered tier.
func (m *ReminderMachine) fire(ctx context.Context, tier int, profile *domain.UserProfile) {
	message, err := m.engine.ReminderMessage(ctx, tier)
	if err != nil {
		message = "Time for a sip! 💧"
	}

	volume := float64(profile.SoundVolume) / 100

	switch tier {
	case 1:
		m.notifier.Animate("pulse")

	case 2:
		m.notifier.PlaySound("water-drip", volume*0.5)

	case 3:
		m.notifier.Notify("Time to Hydrate! 💧", message)

	case 4:
		m.notifier.Animate("grow")
		m.notifier.Notify("💧 Sippy", message)
		m.notifier.PlaySound("gentle-chime", 0.6)

	case 5:
		m.notifier.Notify("⚠️ Hydration Alert!", message)
		m.notifier.PlaySound("urgent-alert", 0.7)

		// The only tier with an economic consequence, applied once
		// per entry, not per tick.
		if _, err := m.engine.DeductPoints(ctx, m.penalty, "Reminder ignored"); err != nil {
			log.Printf("Failed to apply reminder penalty: %v", err)
		}
	}

	log.Printf("Reminder escalated to tier %d", tier)
}

// Reset returns the machine to tier 0 and restarts the elapsed-time
// window. Called whenever a drink is logged.
func (m *ReminderMachine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastDrink = m.clock.Now()
	m.tier = 0
	m.notifier.Animate("idle")
}

// Snooze suppresses all tier entry until the deadline passes and drops
// back to tier 0. Takes effect on the next tick, not retroactively.
func (m *ReminderMachine) Snooze(minutes int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.snoozedUntil = m.clock.Now().Add(time.Duration(minutes) * time.Minute)
	m.tier = 0
	log.Printf("Reminders snoozed for %d minutes", minutes)
}

// Tier returns the current escalation tier.
func (m *ReminderMachine) Tier() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tier
}
