package domain

import "time"

// Stats is the single persisted aggregate record. TotalIntakeMl and
// TotalDrinks are running sums kept consistent with the intake log:
// deletions subtract, they never just remove.
type Stats struct {
	SchemaVersion     int   `json:"schema_version"`
	TotalIntakeMl     int   `json:"total_intake_ml"`
	TotalDrinks       int   `json:"total_drinks"`
	CurrentStreakDays int   `json:"current_streak_days"`
	LongestStreakDays int   `json:"longest_streak_days"`
	Points            int   `json:"points"`
	MemoryGamesWon    int   `json:"memory_games_won"`
	LastActive        int64 `json:"last_active"`
}

func DefaultStats(now time.Time) *Stats {
	return &Stats{
		SchemaVersion: SchemaVersion,
		LastActive:    now.UnixMilli(),
	}
}

// Touch records activity at the given time.
func (s *Stats) Touch(now time.Time) {
	s.LastActive = now.UnixMilli()
}

// LastActiveTime returns the last-active timestamp as a time.Time.
func (s *Stats) LastActiveTime() time.Time {
	return time.UnixMilli(s.LastActive)
}

// Bubble states, keyed by the lowest goal percentage of the band.
const (
	BubbleHydrated   = "hydrated"
	BubbleGood       = "good"
	BubbleModerate   = "moderate"
	BubbleDehydrated = "dehydrated"
	BubbleCritical   = "critical"
)

// BubbleState maps a goal percentage to the widget state. The 20% boundary
// is inclusive: exactly 20% is dehydrated, not critical.
func BubbleState(percent int) string {
	switch {
	case percent >= 80:
		return BubbleHydrated
	case percent >= 60:
		return BubbleGood
	case percent >= 40:
		return BubbleModerate
	case percent >= 20:
		return BubbleDehydrated
	default:
		return BubbleCritical
	}
}

// Percentage returns intake as a share of goal, rounded and capped at 100.
func Percentage(intakeMl, goalMl int) int {
	if goalMl <= 0 {
		return 0
	}
	percent := int(float64(intakeMl)/float64(goalMl)*100 + 0.5)
	if percent > 100 {
		return 100
	}
	return percent
}
