package clock

import "time"

// Clock abstracts time.Now so streak and reminder logic can be tested
// against a controlled time source.
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Mock is a manually advanced clock for tests.
type Mock struct {
	Current time.Time
}

func NewMock(t time.Time) *Mock {
	return &Mock{Current: t}
}

func (m *Mock) Now() time.Time {
	return m.Current
}

// Advance moves the mock clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.Current = m.Current.Add(d)
}

// Set pins the mock clock to t.
func (m *Mock) Set(t time.Time) {
	m.Current = t
}
