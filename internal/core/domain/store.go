package domain

import (
	"context"
	"time"
)

// SchemaVersion is stamped on every persisted record and on exports.
const SchemaVersion = 1

// Store is the persistence port: typed get/set over named records, one
// keyed blob per logical entity. Reads substitute the documented default
// when a record is absent or malformed; writes replace the whole blob.
type Store interface {
	// Profile returns the user profile, defaults on first read.
	Profile(ctx context.Context) (*UserProfile, error)
	SaveProfile(ctx context.Context, profile *UserProfile) error

	// IntakeLog returns the full date-keyed drink log.
	IntakeLog(ctx context.Context) (IntakeLog, error)
	SaveIntakeLog(ctx context.Context, log IntakeLog) error

	// Stats returns the aggregate stats record.
	Stats(ctx context.Context) (*Stats, error)
	SaveStats(ctx context.Context, stats *Stats) error

	// Unlocks returns the unlocked achievement and theme sets.
	Unlocks(ctx context.Context) (*Unlocks, error)
	SaveUnlocks(ctx context.Context, unlocks *Unlocks) error

	// Weather returns the cached snapshot, or nil when never written.
	Weather(ctx context.Context) (*WeatherSnapshot, error)
	SaveWeather(ctx context.Context, snapshot *WeatherSnapshot) error

	// Wipe clears every record and reinitializes defaults atomically
	// from the caller's perspective.
	Wipe(ctx context.Context) error
}

// ExportSnapshot is the user-initiated backup payload. Import is out of
// scope; the snapshot is write-only from the engine's point of view.
type ExportSnapshot struct {
	SchemaVersion int          `json:"schema_version"`
	ExportedAt    time.Time    `json:"exported_at"`
	Profile       *UserProfile `json:"profile"`
	IntakeLog     IntakeLog    `json:"intake_log"`
	Stats         *Stats       `json:"stats"`
	Achievements  []string     `json:"achievements"`
}
