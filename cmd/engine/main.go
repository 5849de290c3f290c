package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	adapterHTTP "github.com/sippyapp/sippy-engine/internal/adapters/handler/http"
	"github.com/sippyapp/sippy-engine/internal/adapters/notify"
	"github.com/sippyapp/sippy-engine/internal/adapters/storage"
	"github.com/sippyapp/sippy-engine/internal/adapters/weather"
	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/common/timeutil"
	"github.com/sippyapp/sippy-engine/internal/config"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
	"github.com/sippyapp/sippy-engine/internal/core/services"
	"github.com/sippyapp/sippy-engine/internal/core/workers"
)

func main() {
	startTime := time.Now()
	cfg := config.Load()

	clk := &clock.DefaultClock{}
	notifier := notify.New()

	var store domain.Store
	var redisClient *redis.Client

	client := storage.NewClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	redisStore, err := storage.NewRedis(&storage.Config{RedisClient: client})
	if err != nil {
		log.Printf("Redis unavailable, falling back to in-memory store: %v", err)
		store = storage.NewMemory()
	} else {
		log.Println("Redis connected successfully.")
		store = redisStore
		redisClient = client
	}

	engine := services.NewEngine(cfg, store, clk, notifier)

	activity := workers.NewActivityMonitor(clk, cfg.Reminders.IdleThreshold, cfg.Reminders.MeetingThreshold)
	reminders := workers.NewReminderMachine(cfg.Reminders, cfg.Points.IgnoreReminder, engine, activity, notifier, clk)
	engine.AttachReminders(reminders)

	game := services.NewMemoryGame(engine, clk, notifier, cfg.MemoryGameDeferral)

	weatherClient := weather.NewClient(cfg.WeatherAPIKey)
	weatherWorker := workers.NewWeatherWorker(cfg, weatherClient, engine, clk)
	promptWorker := workers.NewPromptWorker(cfg.PromptInterval, engine, activity, notifier)
	memoryWorker := workers.NewMemoryWorker(cfg.Reminders.CheckInterval, game, activity)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Day-boundary transition before anything else reads the streak.
	if streak, err := engine.CheckStreak(ctx); err != nil {
		log.Printf("Startup streak check failed: %v", err)
	} else {
		log.Printf("Current streak: %d days (today is %s)", streak, timeutil.DateKey(clk.Now()))
	}

	weatherWorker.Start(ctx)
	reminders.Start(ctx)
	workers.NewStreakWorker(engine, clk).Start(ctx)
	promptWorker.Start(ctx)
	memoryWorker.Start(ctx)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		DrinkHandler:      adapterHTTP.NewDrinkHandler(engine),
		ProfileHandler:    adapterHTTP.NewProfileHandler(engine),
		StatsHandler:      adapterHTTP.NewStatsHandler(engine),
		EngagementHandler: adapterHTTP.NewEngagementHandler(reminders, activity, game),
		Redis:             redisClient,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
		StartTime:         startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Sippy Engine running on http://localhost:%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
