package services

import (
	"context"
	"math/rand"
	"strconv"
	"strings"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// Messenger selects and formats motivational messages. Stateless except
// for its random source, which is injectable for deterministic tests.
type Messenger struct {
	clock clock.Clock
	pick  func(n int) int
}

func NewMessenger(clk clock.Clock) *Messenger {
	return &Messenger{
		clock: clk,
		pick:  rand.Intn,
	}
}

// NewMessengerWithPicker overrides the random selection, for tests.
func NewMessengerWithPicker(clk clock.Clock, pick func(n int) int) *Messenger {
	return &Messenger{clock: clk, pick: pick}
}

// Select returns a template from the named category with placeholders
// substituted. Unknown categories fall back to encouragement; unknown
// placeholders stay verbatim.
func (m *Messenger) Select(category string, vars map[string]string) string {
	templates, ok := domain.Messages[category]
	if !ok || len(templates) == 0 {
		templates = domain.Messages["encouragement"]
	}
	return Format(templates[m.pick(len(templates))], vars)
}

// ReminderLine returns the per-tier reminder text. Night hours share the
// morning pool cutoff used everywhere else.
func (m *Messenger) ReminderLine(tier int, vars map[string]string) string {
	if tier < 1 || tier > 5 {
		tier = 1
	}
	// Tier 3 carries the ambient-conditions message.
	if tier == 3 {
		return m.Select("weather", vars)
	}
	return Format(domain.ReminderMessages[tier-1], vars)
}

// Format substitutes {name} placeholders from vars.
func Format(template string, vars map[string]string) string {
	out := template
	for key, value := range vars {
		out = strings.ReplaceAll(out, "{"+key+"}", value)
	}
	return out
}

// MotivationalMessage picks a time-of-day message with live stats and
// weather substituted, used by the proactive prompt loop.
func (e *Engine) MotivationalMessage(ctx context.Context) (string, error) {
	vars, err := e.messageVars(ctx)
	if err != nil {
		return "", err
	}

	category := timeutil.TimeOfDay(e.clock.Now())
	if category == timeutil.Night {
		category = "encouragement"
	}
	return e.messenger.Select(category, vars), nil
}

// ReminderMessage returns the text for a reminder tier with live values.
func (e *Engine) ReminderMessage(ctx context.Context, tier int) (string, error) {
	vars, err := e.messageVars(ctx)
	if err != nil {
		return "", err
	}
	return e.messenger.ReminderLine(tier, vars), nil
}

func (e *Engine) messageVars(ctx context.Context) (map[string]string, error) {
	stats, err := e.store.Stats(ctx)
	if err != nil {
		return nil, err
	}

	temp, humidity := e.ambient(ctx)

	return map[string]string{
		"streak":   strconv.Itoa(stats.CurrentStreakDays),
		"points":   strconv.Itoa(stats.Points),
		"temp":     strconv.Itoa(int(temp + 0.5)),
		"humidity": strconv.Itoa(int(humidity + 0.5)),
	}, nil
}
