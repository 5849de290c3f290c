package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// MemoryStore is an in-process implementation of domain.Store, used in
// tests and for offline runs without Redis. Records are deep-copied
// through JSON so callers never share mutable state with the store.
type MemoryStore struct {
	mu sync.RWMutex

	profile *domain.UserProfile
	intake  domain.IntakeLog
	stats   *domain.Stats
	unlocks *domain.Unlocks
	weather *domain.WeatherSnapshot

	now func() time.Time
}

var _ domain.Store = (*MemoryStore)(nil)

func NewMemory() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// NewMemoryWithClock pins the store's notion of now, for tests.
func NewMemoryWithClock(now func() time.Time) *MemoryStore {
	return &MemoryStore{now: now}
}

func clone[T any](src, dst T) {
	data, _ := json.Marshal(src)
	_ = json.Unmarshal(data, dst)
}

func (s *MemoryStore) Profile(ctx context.Context) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return domain.DefaultProfile(), nil
	}
	out := &domain.UserProfile{}
	clone(s.profile, out)
	return out, nil
}

func (s *MemoryStore) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &domain.UserProfile{}
	clone(profile, stored)
	s.profile = stored
	return nil
}

func (s *MemoryStore) IntakeLog(ctx context.Context) (domain.IntakeLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.intake == nil {
		return domain.IntakeLog{}, nil
	}
	out := domain.IntakeLog{}
	clone(&s.intake, &out)
	return out, nil
}

func (s *MemoryStore) SaveIntakeLog(ctx context.Context, intake domain.IntakeLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := domain.IntakeLog{}
	clone(&intake, &stored)
	s.intake = stored
	return nil
}

func (s *MemoryStore) Stats(ctx context.Context) (*domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stats == nil {
		return domain.DefaultStats(s.now()), nil
	}
	out := &domain.Stats{}
	clone(s.stats, out)
	return out, nil
}

func (s *MemoryStore) SaveStats(ctx context.Context, stats *domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &domain.Stats{}
	clone(stats, stored)
	s.stats = stored
	return nil
}

func (s *MemoryStore) Unlocks(ctx context.Context) (*domain.Unlocks, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.unlocks == nil {
		return domain.DefaultUnlocks(), nil
	}
	out := &domain.Unlocks{}
	clone(s.unlocks, out)
	return out, nil
}

func (s *MemoryStore) SaveUnlocks(ctx context.Context, unlocks *domain.Unlocks) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &domain.Unlocks{}
	clone(unlocks, stored)
	s.unlocks = stored
	return nil
}

func (s *MemoryStore) Weather(ctx context.Context) (*domain.WeatherSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.weather == nil {
		return nil, nil
	}
	out := &domain.WeatherSnapshot{}
	clone(s.weather, out)
	return out, nil
}

func (s *MemoryStore) SaveWeather(ctx context.Context, snapshot *domain.WeatherSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &domain.WeatherSnapshot{}
	clone(snapshot, stored)
	s.weather = stored
	return nil
}

func (s *MemoryStore) Wipe(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = nil
	s.intake = nil
	s.stats = nil
	s.unlocks = nil
	s.weather = nil
	return nil
}
