package services_test

import (
	"strings"
	"sync"
	"time"

	"github.com/sippyapp/sippy-engine/internal/adapters/storage"
	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/config"
	"github.com/sippyapp/sippy-engine/internal/core/services"
)

func ptr[T any](v T) *T {
	return &v
}

// notifierRecorder captures every delivery so tests can assert on side
// effects without a real notification channel.
type notifierRecorder struct {
	mu            sync.Mutex
	notifications []string
	sounds        []string
	effects       []string
}

func (n *notifierRecorder) Notify(title, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, title+" "+body)
}

func (n *notifierRecorder) PlaySound(name string, volume float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sounds = append(n.sounds, name)
}

func (n *notifierRecorder) Animate(effect string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.effects = append(n.effects, effect)
}

func (n *notifierRecorder) countNotifications(substr string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	count := 0
	for _, msg := range n.notifications {
		if strings.Contains(msg, substr) {
			count++
		}
	}
	return count
}

func testConfig() *config.Config {
	return &config.Config{
		FallbackTempC:    30,
		FallbackHumidity: 70,
		Hydration: config.Hydration{
			BaseMultiplier: 35,
			TempFactor:     0.5,
			HumidityFactor: 0.1,
			MinGoalMl:      1500,
			MaxGoalMl:      5000,
			DefaultWeight:  70,
		},
		Reminders: config.Reminders{
			TierMinutes:      [5]int{20, 35, 50, 65, 80},
			CheckInterval:    time.Minute,
			DefaultFrequency: 45,
			IdleThreshold:    5 * time.Minute,
			MeetingThreshold: 2 * time.Minute,
		},
		Points: config.Points{
			DrinkOnTime:    10,
			DailyGoal:      50,
			StreakDaily:    5,
			MemoryGame:     20,
			IgnoreReminder: 5,
			BreakStreak:    20,
		},
		PromptInterval:     2 * time.Hour,
		MemoryGameDeferral: 4 * time.Hour,
	}
}

type fixture struct {
	engine   *services.Engine
	store    *storage.MemoryStore
	clock    *clock.Mock
	notifier *notifierRecorder
}

func newFixture(at time.Time) *fixture {
	clk := clock.NewMock(at)
	store := storage.NewMemoryWithClock(clk.Now)
	notifier := &notifierRecorder{}
	engine := services.NewEngine(testConfig(), store, clk, notifier)

	return &fixture{
		engine:   engine,
		store:    store,
		clock:    clk,
		notifier: notifier,
	}
}

// reminderStub counts the control calls the engine makes.
type reminderStub struct {
	resets   int
	restarts int
}

func (r *reminderStub) Reset()   { r.resets++ }
func (r *reminderStub) Restart() { r.restarts++ }
