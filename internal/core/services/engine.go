package services

import (
	"context"
	"sync"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/config"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// ReminderControl is the slice of the reminder machine the engine drives:
// logging a drink resets escalation, changing the configured frequency
// restarts the check loop.
type ReminderControl interface {
	Reset()
	Restart()
}

// Engine is the single state-owning component. Every mutating operation
// is a short read-modify-write over the persisted records, serialized by
// one mutex so timer callbacks and API calls never interleave.
type Engine struct {
	mu sync.Mutex

	cfg       *config.Config
	store     domain.Store
	clock     clock.Clock
	notifier  domain.Notifier
	messenger *Messenger

	reminders ReminderControl

	// Cached daily goal, recomputed lazily after profile or weather
	// changes. Zero means not computed yet.
	goalMl int
}

func NewEngine(cfg *config.Config, store domain.Store, clk clock.Clock, notifier domain.Notifier) *Engine {
	return &Engine{
		cfg:       cfg,
		store:     store,
		clock:     clk,
		notifier:  notifier,
		messenger: NewMessenger(clk),
	}
}

// AttachReminders wires the reminder machine in after construction; the
// machine itself depends on the engine for guards and penalties.
func (e *Engine) AttachReminders(r ReminderControl) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reminders = r
}

// Profile returns the stored profile, defaults applied on first read.
func (e *Engine) Profile(ctx context.Context) (*domain.UserProfile, error) {
	return e.store.Profile(ctx)
}

// UpdateProfile applies the update, enforcing theme gating: a theme may
// only be selected once its unlock flag is set. Weight or theme changes
// invalidate the cached goal; frequency changes restart the reminder loop.
func (e *Engine) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile, err := e.store.Profile(ctx)
	if err != nil {
		return nil, err
	}

	if update.Theme != nil {
		unlocks, err := e.store.Unlocks(ctx)
		if err != nil {
			return nil, err
		}
		if !unlocks.HasTheme(*update.Theme) && knownThemeRequested(*update.Theme) {
			return nil, domain.ErrThemeLocked
		}
	}

	frequencyChanged := update.ReminderFrequencyMinutes != nil &&
		*update.ReminderFrequencyMinutes != profile.ReminderFrequencyMinutes

	if err := profile.Apply(update); err != nil {
		return nil, err
	}

	if err := e.store.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	e.goalMl = 0

	if frequencyChanged && e.reminders != nil {
		e.reminders.Restart()
	}

	return profile, nil
}

// Stats returns the aggregate stats record.
func (e *Engine) Stats(ctx context.Context) (*domain.Stats, error) {
	return e.store.Stats(ctx)
}

// Unlocks returns the unlocked achievement ids and themes.
func (e *Engine) Unlocks(ctx context.Context) (*domain.Unlocks, error) {
	return e.store.Unlocks(ctx)
}

// Export assembles the user-initiated backup snapshot.
func (e *Engine) Export(ctx context.Context) (*domain.ExportSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	profile, err := e.store.Profile(ctx)
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

	return &domain.ExportSnapshot{
		SchemaVersion: domain.SchemaVersion,
		ExportedAt:    e.clock.Now().UTC(),
		Profile:       profile,
		IntakeLog:     intake,
		Stats:         stats,
		Achievements:  unlocks.Achievements,
	}, nil
}

// WipeAll clears every persisted record and resets the engine to its
// first-run state. The only operation that shrinks the unlock sets.
func (e *Engine) WipeAll(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Wipe(ctx); err != nil {
		return err
	}

	e.goalMl = 0
	if e.reminders != nil {
		e.reminders.Reset()
	}
	return nil
}

// knownThemeRequested keeps unknown themes flowing into Apply's own
// validation error instead of reporting them as locked.
func knownThemeRequested(theme string) bool {
	for _, t := range domain.Themes {
		if t == theme {
			return true
		}
	}
	return false
}
