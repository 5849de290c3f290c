package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

var ErrInvalidPoints = errors.New("points must be positive")

// AwardPoints adds to the balance and returns the new total. Every change
// runs the theme-unlock scan.
func (e *Engine) AwardPoints(ctx context.Context, points int, reason string) (int, error) {
	if points <= 0 {
		return 0, ErrInvalidPoints
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.changePoints(ctx, points, reason)
}

// DeductPoints subtracts from the balance, flooring at zero.
func (e *Engine) DeductPoints(ctx context.Context, points int, reason string) (int, error) {
	if points <= 0 {
		return 0, ErrInvalidPoints
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.changePoints(ctx, -points, reason)
}

func (e *Engine) changePoints(ctx context.Context, delta int, reason string) (int, error) {
	stats, err := e.store.Stats(ctx)
	if err != nil {
		return 0, err
	}
	unlocks, err := e.store.Unlocks(ctx)
	if err != nil {
		return 0, err
	}

	balance := e.applyPoints(stats, unlocks, delta, reason)

	if err := e.store.SaveStats(ctx, stats); err != nil {
		return 0, err
	}
	if err := e.store.SaveUnlocks(ctx, unlocks); err != nil {
		return 0, err
	}

	return balance, nil
}

// applyPoints mutates the in-memory records; the caller persists them.
// Balance never goes negative. Newly reachable theme thresholds unlock
// exactly once, each with a one-time notification.
func (e *Engine) applyPoints(stats *domain.Stats, unlocks *domain.Unlocks, delta int, reason string) int {
	stats.Points += delta
	if stats.Points < 0 {
		stats.Points = 0
	}

	for _, threshold := range domain.ThemeThresholds {
		if stats.Points >= threshold.Points && unlocks.AddTheme(threshold.Theme) {
			e.notifier.Notify("🎨 New theme unlocked", threshold.Theme)
		}
	}

	if reason != "" {
		if delta >= 0 {
			e.notifier.Notify(fmt.Sprintf("+%d points", delta), reason)
		} else {
			e.notifier.Notify(fmt.Sprintf("%d points", delta), reason)
		}
	}

	return stats.Points
}

// IsThemeUnlocked reports whether the theme can be selected.
func (e *Engine) IsThemeUnlocked(ctx context.Context, theme string) (bool, error) {
	unlocks, err := e.store.Unlocks(ctx)
	if err != nil {
		return false, err
	}
	return unlocks.HasTheme(theme), nil
}
