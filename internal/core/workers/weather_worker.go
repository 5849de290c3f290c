package workers

import (
	"context"
	"log"
	"time"

	"github.com/sippyapp/sippy-engine/internal/common/clock"
	"github.com/sippyapp/sippy-engine/internal/config"
	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// WeatherFetcher retrieves current conditions for a coordinate pair.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (*domain.WeatherSnapshot, error)
}

// WeatherSink receives fresh snapshots.
type WeatherSink interface {
	SaveWeather(ctx context.Context, snapshot *domain.WeatherSnapshot) error
}

// WeatherWorker refreshes the cached weather on a fixed interval. A
// failed fetch stores the configured fallback conditions instead, so the
// goal computation always has something recent to read.
type WeatherWorker struct {
	cfg     *config.Config
	fetcher WeatherFetcher
	sink    WeatherSink
	clock   clock.Clock
}

func NewWeatherWorker(cfg *config.Config, fetcher WeatherFetcher, sink WeatherSink, clk clock.Clock) *WeatherWorker {
	return &WeatherWorker{
		cfg:     cfg,
		fetcher: fetcher,
		sink:    sink,
		clock:   clk,
	}
}

// Start refreshes immediately, then on every update interval, until ctx
// is cancelled.
func (w *WeatherWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Weather worker started in background...")
		w.Refresh(ctx)

		ticker := time.NewTicker(w.cfg.WeatherUpdateInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.Refresh(ctx)
			case <-ctx.Done():
				log.Println("Weather worker shutting down...")
				return
			}
		}
	}()
}

// Refresh performs one fetch-and-store cycle.
func (w *WeatherWorker) Refresh(ctx context.Context) {
	snapshot, err := w.fetcher.Fetch(ctx, w.cfg.Latitude, w.cfg.Longitude)
	if err != nil {
		log.Printf("Weather fetch failed, using fallback conditions: %v", err)
		snapshot = domain.NewWeatherSnapshot(w.cfg.FallbackTempC, w.cfg.FallbackHumidity, "fallback", w.clock.Now())
	}

	if err := w.sink.SaveWeather(ctx, snapshot); err != nil {
		log.Printf("Failed to store weather snapshot: %v", err)
		return
	}

	log.Printf("Weather updated: %.1f°C, %.0f%% humidity", snapshot.TempC, snapshot.HumidityPct)
}
