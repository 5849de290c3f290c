package timeutil

import "time"

// All day bucketing uses a single fixed reference timezone (IST, UTC+5:30).
// Every consumer that derives a date key must go through this package or
// streak and achievement bookkeeping desync at day boundaries.
var IST = time.FixedZone("IST", 5*3600+30*60)

const dateKeyLayout = "2006-01-02"

const (
	SeasonSummer  = "summer"
	SeasonMonsoon = "monsoon"
	SeasonNormal  = "normal"
)

const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
	Night     = "night"
)

// DateKey returns the calendar-day identifier (YYYY-MM-DD) of t in the
// reference timezone.
func DateKey(t time.Time) string {
	return t.In(IST).Format(dateKeyLayout)
}

// ParseDateKey converts a date key back to midnight IST of that day.
func ParseDateKey(key string) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, IST)
}

// HourOf returns the hour of day (0-23) of t in the reference timezone.
func HourOf(t time.Time) int {
	return t.In(IST).Hour()
}

// DaysBetween returns the number of whole calendar days from a to b.
// Same day is 0, b on the day after a is 1. The result is negative when
// b precedes a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(IST).Date()
	by, bm, bd := b.In(IST).Date()

	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)

	return int(end.Sub(start).Hours() / 24)
}

// SameDay reports whether a and b fall on the same reference-timezone day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}

// TimeOfDay classifies t into morning/afternoon/evening/night.
func TimeOfDay(t time.Time) string {
	hour := HourOf(t)
	switch {
	case hour < 12:
		return Morning
	case hour < 17:
		return Afternoon
	case hour < 21:
		return Evening
	default:
		return Night
	}
}

// Season maps the calendar month to a coarse label driving the goal
// adjustment: April-June is summer, October-December is monsoon.
func Season(t time.Time) string {
	switch t.In(IST).Month() {
	case time.April, time.May, time.June:
		return SeasonSummer
	case time.October, time.November, time.December:
		return SeasonMonsoon
	default:
		return SeasonNormal
	}
}
