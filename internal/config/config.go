package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the engine reads at startup. Values come
// from the environment with in-code fallbacks so the engine stays usable
// with zero configuration.
type Config struct {
	HTTPPort string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	WeatherAPIKey         string
	WeatherUpdateInterval time.Duration
	Latitude              float64
	Longitude             float64
	FallbackTempC         float64
	FallbackHumidity      float64

	Hydration Hydration
	Reminders Reminders
	Points    Points

	PromptInterval     time.Duration
	MemoryGameDeferral time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Hydration holds the daily-goal formula factors.
type Hydration struct {
	BaseMultiplier float64 // ml per kg body weight
	TempFactor     float64 // additional ml per degree Celsius
	HumidityFactor float64 // additional ml per humidity percentage
	MinGoalMl      int
	MaxGoalMl      int
	DefaultWeight  float64
}

// Reminders holds the escalation thresholds, in minutes since last drink.
type Reminders struct {
	TierMinutes      [5]int
	CheckInterval    time.Duration
	DefaultFrequency int
	IdleThreshold    time.Duration
	MeetingThreshold time.Duration
}

// Points holds the economy's award and penalty values.
type Points struct {
	DrinkOnTime    int
	DailyGoal      int
	StreakDaily    int
	MemoryGame     int
	IgnoreReminder int
	BreakStreak    int
}

// Load reads the environment (and a local .env, if present) and returns
// the resolved configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	return &Config{
		HTTPPort: envString("PORT", "8080"),

		RedisHost:     envString("REDIS_HOST", "localhost"),
		RedisPort:     envString("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),

		WeatherAPIKey:         os.Getenv("OPENWEATHER_API_KEY"),
		WeatherUpdateInterval: envDuration("WEATHER_UPDATE_INTERVAL", 30*time.Minute),
		Latitude:              envFloat("LOCATION_LAT", 13.0827),
		Longitude:             envFloat("LOCATION_LON", 80.2707),
		FallbackTempC:         envFloat("WEATHER_FALLBACK_TEMP", 30),
		FallbackHumidity:      envFloat("WEATHER_FALLBACK_HUMIDITY", 70),

		Hydration: Hydration{
			BaseMultiplier: 35,
			TempFactor:     0.5,
			HumidityFactor: 0.1,
			MinGoalMl:      1500,
			MaxGoalMl:      5000,
			DefaultWeight:  70,
		},

		Reminders: Reminders{
			TierMinutes:      [5]int{20, 35, 50, 65, 80},
			CheckInterval:    envDuration("REMINDER_CHECK_INTERVAL", time.Minute),
			DefaultFrequency: 45,
			IdleThreshold:    5 * time.Minute,
			MeetingThreshold: 2 * time.Minute,
		},

		Points: Points{
			DrinkOnTime:    10,
			DailyGoal:      50,
			StreakDaily:    5,
			MemoryGame:     20,
			IgnoreReminder: 5,
			BreakStreak:    20,
		},

		PromptInterval:     envDuration("PROMPT_INTERVAL", 2*time.Hour),
		MemoryGameDeferral: envDuration("MEMORY_GAME_DEFERRAL", 4*time.Hour),

		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   envDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return f
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %v", key, v, fallback)
		return fallback
	}
	return d
}
