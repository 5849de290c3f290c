package domain

import "time"

// WeatherSnapshot is the cached ambient reading consumed by the goal
// calculator. Staleness is tolerated; a missing cache falls back to the
// configured defaults instead of failing.
type WeatherSnapshot struct {
	SchemaVersion int     `json:"schema_version"`
	TempC         float64 `json:"temp_c"`
	HumidityPct   float64 `json:"humidity_pct"`
	Description   string  `json:"description"`
	Timestamp     int64   `json:"timestamp"`
}

func NewWeatherSnapshot(tempC, humidityPct float64, description string, at time.Time) *WeatherSnapshot {
	return &WeatherSnapshot{
		SchemaVersion: SchemaVersion,
		TempC:         tempC,
		HumidityPct:   humidityPct,
		Description:   description,
		Timestamp:     at.UnixMilli(),
	}
}

// Age returns how old the snapshot is relative to now.
func (w *WeatherSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(time.UnixMilli(w.Timestamp))
}
