package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
)

var (
	ErrInvalidAmount = errors.New("drink amount must be positive")
)

const DefaultDrinkType = "water"

// DrinkEntry is a single logged drink. Entries are immutable once created;
// the only lifecycle operation after creation is deletion by id.
type DrinkEntry struct {
	ID          string `json:"id"`
	AmountMl    int    `json:"amount_ml"`
	Type        string `json:"type"`
	Timestamp   int64  `json:"timestamp"`
	DisplayTime string `json:"display_time"`
}

func NewDrinkEntry(amountMl int, drinkType string, at time.Time) (*DrinkEntry, error) {
	if amountMl <= 0 {
		return nil, ErrInvalidAmount
	}

	if strings.TrimSpace(drinkType) == "" {
		drinkType = DefaultDrinkType
	}

	return &DrinkEntry{
		ID:          uuid.New().String(),
		AmountMl:    amountMl,
		Type:        drinkType,
		Timestamp:   at.UnixMilli(),
		DisplayTime: at.In(timeutil.IST).Format("15:04"),
	}, nil
}

// Time returns the entry's creation time.
func (e *DrinkEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// IntakeLog maps a date key (YYYY-MM-DD, reference timezone) to the
// chronologically ordered drinks of that day.
type IntakeLog map[string][]*DrinkEntry

// Append adds an entry to the day bucket derived from the entry timestamp.
func (l IntakeLog) Append(entry *DrinkEntry) {
	key := timeutil.DateKey(entry.Time())
	l[key] = append(l[key], entry)
}

// Remove deletes the entry with the given id from the day bucket and
// returns it. The second return is false when no such entry exists.
func (l IntakeLog) Remove(dateKey, id string) (*DrinkEntry, bool) {
	day := l[dateKey]
	for i, e := range day {
		if e.ID == id {
			l[dateKey] = append(day[:i], day[i+1:]...)
			return e, true
		}
	}
	return nil, false
}

// TotalFor sums the amounts logged on the given day. A day with no
// entries totals zero.
func (l IntakeLog) TotalFor(dateKey string) int {
	total := 0
	for _, e := range l[dateKey] {
		total += e.AmountMl
	}
	return total
}

// TotalAll sums the amounts of every entry across all days.
func (l IntakeLog) TotalAll() int {
	total := 0
	for key := range l {
		total += l.TotalFor(key)
	}
	return total
}
