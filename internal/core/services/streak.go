package services

import (
	"context"
	"fmt"
	"log"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
)

// CheckStreak runs the day-boundary transition, invoked at startup and on
// every rollover of the reference-timezone day. Same day: no-op. Exactly
// one day gap with a drink logged on the day being closed out: the streak
// increments and earns streak points. Anything else breaks the streak,
// with a one-time penalty when there was a streak to lose. A drink-free
// day is never a streak day, no matter how long the process stays up.
// The longest-streak high water mark is maintained after every transition.
func (e *Engine) CheckStreak(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()

	stats, err := e.store.Stats(ctx)
	if err != nil {
		return 0, err
	}

	lastActive := stats.LastActiveTime()
	if timeutil.SameDay(lastActive, now) {
		return stats.CurrentStreakDays, nil
	}

	intake, err := e.store.IntakeLog(ctx)
	if err != nil {
		return 0, err
	}
	unlocks, err := e.store.Unlocks(ctx)
	if err != nil {
		return 0, err
	}

	gap := timeutil.DaysBetween(lastActive, now)
	yesterday := timeutil.DateKey(now.In(timeutil.IST).AddDate(0, 0, -1))

	if gap == 1 && intake.TotalFor(yesterday) > 0 {
		stats.CurrentStreakDays++
		reward := e.cfg.Points.StreakDaily * stats.CurrentStreakDays
		e.applyPoints(stats, unlocks, reward, fmt.Sprintf("%d day streak! 🔥", stats.CurrentStreakDays))
	} else {
		if stats.CurrentStreakDays > 0 {
			e.applyPoints(stats, unlocks, -e.cfg.Points.BreakStreak, "Streak broken 😢")
			log.Printf("Streak of %d days broken after %d day gap", stats.CurrentStreakDays, gap)
		}
		stats.CurrentStreakDays = 0
	}

	if stats.CurrentStreakDays > stats.LongestStreakDays {
		stats.LongestStreakDays = stats.CurrentStreakDays
	}
	stats.Touch(now)

	if err := e.store.SaveStats(ctx, stats); err != nil {
		return 0, err
	}
	if err := e.store.SaveUnlocks(ctx, unlocks); err != nil {
		return 0, err
	}

	return stats.CurrentStreakDays, nil
}
