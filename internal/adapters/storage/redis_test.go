package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/sippyapp/sippy-engine/internal/adapters/storage"
	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mini   *miniredis.Miniredis
	client *redis.Client
	store  *storage.RedisStore
	ctx    context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	mini, err := miniredis.Run()
	s.Require().NoError(err)
	s.mini = mini

	s.client = redis.NewClient(&redis.Options{Addr: mini.Addr()})
	store, err := storage.NewRedis(&storage.Config{RedisClient: s.client})
	s.Require().NoError(err)

	s.store = store
	s.ctx = context.Background()
}

func (s *RedisStoreTestSuite) TearDownTest() {
	s.client.Close()
	s.mini.Close()
}

func (s *RedisStoreTestSuite) TestNewRedisValidation() {
	_, err := storage.NewRedis(nil)
	s.Error(err)

	_, err = storage.NewRedis(&storage.Config{})
	s.Error(err)
}

func (s *RedisStoreTestSuite) TestProfileDefaultsWhenMissing() {
	profile, err := s.store.Profile(s.ctx)
	s.NoError(err)
	s.Equal(domain.DefaultProfile(), profile)
}

func (s *RedisStoreTestSuite) TestProfileRoundTrip() {
	profile := domain.DefaultProfile()
	profile.Name = "Priya"
	profile.WeightKg = 62.5
	profile.Theme = "forest"

	s.NoError(s.store.SaveProfile(s.ctx, profile))

	loaded, err := s.store.Profile(s.ctx)
	s.NoError(err)
	s.Equal(profile, loaded)
}

func (s *RedisStoreTestSuite) TestCorruptedRecordFallsBackToDefaults() {
	s.Require().NoError(s.mini.Set("sippy:profile", "{not valid json"))

	profile, err := s.store.Profile(s.ctx)
	s.NoError(err)
	s.Equal(domain.DefaultProfile(), profile)
}

func (s *RedisStoreTestSuite) TestIntakeLogRoundTrip() {
	intake, err := s.store.IntakeLog(s.ctx)
	s.NoError(err)
	s.Empty(intake)

	at := time.Date(2026, 1, 15, 9, 0, 0, 0, timeutil.IST)
	entry, err := domain.NewDrinkEntry(250, "water", at)
	s.Require().NoError(err)
	intake.Append(entry)

	s.NoError(s.store.SaveIntakeLog(s.ctx, intake))

	loaded, err := s.store.IntakeLog(s.ctx)
	s.NoError(err)
	s.Equal(250, loaded.TotalFor("2026-01-15"))
	s.Equal(entry.ID, loaded["2026-01-15"][0].ID)
}

func (s *RedisStoreTestSuite) TestStatsRoundTrip() {
	stats, err := s.store.Stats(s.ctx)
	s.NoError(err)
	s.Equal(0, stats.TotalDrinks)

	stats.TotalDrinks = 3
	stats.Points = 40
	s.NoError(s.store.SaveStats(s.ctx, stats))

	loaded, err := s.store.Stats(s.ctx)
	s.NoError(err)
	s.Equal(3, loaded.TotalDrinks)
	s.Equal(40, loaded.Points)
}

func (s *RedisStoreTestSuite) TestUnlocksRoundTrip() {
	unlocks, err := s.store.Unlocks(s.ctx)
	s.NoError(err)
	s.Equal(domain.DefaultUnlocks(), unlocks)

	unlocks.AddAchievement(domain.AchFirstDrop)
	unlocks.AddTheme("forest")
	s.NoError(s.store.SaveUnlocks(s.ctx, unlocks))

	loaded, err := s.store.Unlocks(s.ctx)
	s.NoError(err)
	s.True(loaded.HasAchievement(domain.AchFirstDrop))
	s.True(loaded.HasTheme("forest"))
}

func (s *RedisStoreTestSuite) TestWeatherNilUntilWritten() {
	snapshot, err := s.store.Weather(s.ctx)
	s.NoError(err)
	s.Nil(snapshot)

	written := domain.NewWeatherSnapshot(36, 75, "haze", time.Now())
	s.NoError(s.store.SaveWeather(s.ctx, written))

	loaded, err := s.store.Weather(s.ctx)
	s.NoError(err)
	s.Equal(written.TempC, loaded.TempC)
	s.Equal(written.HumidityPct, loaded.HumidityPct)
}

func (s *RedisStoreTestSuite) TestWipeClearsEverything() {
	profile := domain.DefaultProfile()
	profile.Name = "Priya"
	s.NoError(s.store.SaveProfile(s.ctx, profile))

	stats, _ := s.store.Stats(s.ctx)
	stats.Points = 500
	s.NoError(s.store.SaveStats(s.ctx, stats))

	s.NoError(s.store.Wipe(s.ctx))

	loadedProfile, err := s.store.Profile(s.ctx)
	s.NoError(err)
	s.Equal(domain.DefaultProfile(), loadedProfile)

	loadedStats, err := s.store.Stats(s.ctx)
	s.NoError(err)
	s.Equal(0, loadedStats.Points)
}

func TestRedisStoreTestSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}
