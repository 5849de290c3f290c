package workers

import (
	"sync"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
)

// ActivityMonitor infers whether the user is present from collaborator
// pings: Touch on any interaction, SetVisible when the client gains or
// loses focus. The reminder machine consults it to stay silent for idle
// or meeting-bound users.
type ActivityMonitor struct {
	mu sync.Mutex

	clock            clock.Clock
	idleThreshold    time.Duration
	meetingThreshold time.Duration

	lastActivity time.Time
	hiddenSince  time.Time // zero while visible
}

func NewActivityMonitor(clk clock.Clock, idleThreshold, meetingThreshold time.Duration) *ActivityMonitor {
	return &ActivityMonitor{
		clock:            clk,
		idleThreshold:    idleThreshold,
		meetingThreshold: meetingThreshold,
		lastActivity:     clk.Now(),
	}
}

// Touch records user interaction.
func (m *ActivityMonitor) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastActivity = m.clock.Now()
}

// SetVisible records client visibility. Becoming visible also counts as
// activity and ends any inferred meeting.
func (m *ActivityMonitor) SetVisible(visible bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if visible {
		m.hiddenSince = time.Time{}
		m.lastActivity = m.clock.Now()
		return
	}
	if m.hiddenSince.IsZero() {
		m.hiddenSince = m.clock.Now()
	}
}

// Active reports whether interaction was seen within the idle threshold.
func (m *ActivityMonitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clock.Now().Sub(m.lastActivity) < m.idleThreshold
}

// InMeeting reports whether the client has been hidden long enough to
// infer a meeting.
func (m *ActivityMonitor) InMeeting() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hiddenSince.IsZero() {
		return false
	}
	return m.clock.Now().Sub(m.hiddenSince) >= m.meetingThreshold
}
