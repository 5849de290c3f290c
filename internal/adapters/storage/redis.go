package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// Record keys. One keyed blob per logical entity, written as a full
// replace, never a partial update.
const (
	keyProfile = "sippy:profile"
	keyLog     = "sippy:intake_log"
	keyStats   = "sippy:stats"
	keyUnlocks = "sippy:unlocks"
	keyWeather = "sippy:weather"
)

var recordKeys = []string{keyProfile, keyLog, keyStats, keyUnlocks, keyWeather}

// Config holds configuration for the Redis store
type Config struct {
	RedisClient *redis.Client
}

// RedisStore persists the engine's records as JSON blobs in Redis.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ domain.Store = (*RedisStore)(nil)

// NewRedis creates a Redis-backed store and verifies connectivity.
func NewRedis(cfg *Config) (*RedisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: cfg.RedisClient,
		now:    time.Now,
	}, nil
}

// NewClient builds a go-redis client for the store.
func NewClient(host, port, password string, dbIndex int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", host, port),
		Password:     password,
		DB:           dbIndex,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
}

// get reads the key into out. Returns false when the record is absent or
// malformed; corrupted blobs are logged and treated as absent so the
// caller substitutes the default.
func (s *RedisStore) get(ctx context.Context, key string, out any) (bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), out); err != nil {
		log.Printf("[STORE] Corrupted record at %s, substituting defaults: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Profile(ctx context.Context) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	ok, err := s.get(ctx, keyProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.DefaultProfile(), nil
	}
	fillProfileDefaults(&profile)
	return &profile, nil
}

func (s *RedisStore) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	return s.set(ctx, keyProfile, profile)
}

func (s *RedisStore) IntakeLog(ctx context.Context) (domain.IntakeLog, error) {
	var intake domain.IntakeLog
	ok, err := s.get(ctx, keyLog, &intake)
	if err != nil {
		return nil, err
	}
	if !ok || intake == nil {
		return domain.IntakeLog{}, nil
	}
	return intake, nil
}

func (s *RedisStore) SaveIntakeLog(ctx context.Context, intake domain.IntakeLog) error {
	return s.set(ctx, keyLog, intake)
}

func (s *RedisStore) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	ok, err := s.get(ctx, keyStats, &stats)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.DefaultStats(s.now()), nil
	}
	return &stats, nil
}

func (s *RedisStore) SaveStats(ctx context.Context, stats *domain.Stats) error {
	return s.set(ctx, keyStats, stats)
}

func (s *RedisStore) Unlocks(ctx context.Context) (*domain.Unlocks, error) {
	var unlocks domain.Unlocks
	ok, err := s.get(ctx, keyUnlocks, &unlocks)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.DefaultUnlocks(), nil
	}
	fillUnlockDefaults(&unlocks)
	return &unlocks, nil
}

func (s *RedisStore) SaveUnlocks(ctx context.Context, unlocks *domain.Unlocks) error {
	return s.set(ctx, keyUnlocks, unlocks)
}

func (s *RedisStore) Weather(ctx context.Context) (*domain.WeatherSnapshot, error) {
	var snapshot domain.WeatherSnapshot
	ok, err := s.get(ctx, keyWeather, &snapshot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &snapshot, nil
}

func (s *RedisStore) SaveWeather(ctx context.Context, snapshot *domain.WeatherSnapshot) error {
	return s.set(ctx, keyWeather, snapshot)
}

// Wipe deletes every record in one pipeline so the reset is atomic from
// the caller's perspective. Subsequent reads rebuild defaults.
func (s *RedisStore) Wipe(ctx context.Context) error {
	pipe := s.client.TxPipeline()
	for _, key := range recordKeys {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe records: %w", err)
	}
	return nil
}

// Older blobs may predate fields added later; fill the documented
// defaults for anything missing rather than surfacing zero values.
func fillProfileDefaults(p *domain.UserProfile) {
	def := domain.DefaultProfile()
	if p.WeightKg <= 0 {
		p.WeightKg = def.WeightKg
	}
	if p.ReminderFrequencyMinutes <= 0 {
		p.ReminderFrequencyMinutes = def.ReminderFrequencyMinutes
	}
	if p.Theme == "" {
		p.Theme = def.Theme
	}
	if p.BubbleSize == "" {
		p.BubbleSize = def.BubbleSize
	}
	if p.Language == "" {
		p.Language = def.Language
	}
	if p.SchemaVersion == 0 {
		p.SchemaVersion = domain.SchemaVersion
	}
}

func fillUnlockDefaults(u *domain.Unlocks) {
	if u.Achievements == nil {
		u.Achievements = []string{}
	}
	if len(u.Themes) == 0 {
		u.Themes = []string{domain.DefaultTheme}
	}
	if u.SchemaVersion == 0 {
		u.SchemaVersion = domain.SchemaVersion
	}
}
