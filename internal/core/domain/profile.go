package domain

import (
	"errors"
	"strings"
)

var (
	ErrInvalidWeight     = errors.New("weight must be positive")
	ErrInvalidFrequency  = errors.New("reminder frequency must be positive")
	ErrInvalidVolume     = errors.New("sound volume must be between 0 and 100")
	ErrInvalidBubbleSize = errors.New("invalid bubble size (must be small, medium, or large)")
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrThemeLocked       = errors.New("theme is not unlocked yet")
)

const (
	BubbleSmall  = "small"
	BubbleMedium = "medium"
	BubbleLarge  = "large"
)

// UserProfile holds the user's settings. A single profile exists per
// installation; defaults are applied on first read.
type UserProfile struct {
	SchemaVersion            int     `json:"schema_version"`
	Name                     string  `json:"name"`
	WeightKg                 float64 `json:"weight_kg"`
	ReminderFrequencyMinutes int     `json:"reminder_frequency_minutes"`
	SoundVolume              int     `json:"sound_volume"`
	NotificationsEnabled     bool    `json:"notifications_enabled"`
	ActivityTrackingEnabled  bool    `json:"activity_tracking_enabled"`
	Theme                    string  `json:"theme"`
	BubbleSize               string  `json:"bubble_size"`
	Language                 string  `json:"language"`
}

func DefaultProfile() *UserProfile {
	return &UserProfile{
		SchemaVersion:            SchemaVersion,
		Name:                     "",
		WeightKg:                 70,
		ReminderFrequencyMinutes: 45,
		SoundVolume:              50,
		NotificationsEnabled:     true,
		ActivityTrackingEnabled:  true,
		Theme:                    DefaultTheme,
		BubbleSize:               BubbleMedium,
		Language:                 "en",
	}
}

// ProfileUpdate carries the mutable fields of a profile. Nil fields keep
// their current value.
type ProfileUpdate struct {
	Name                     *string  `json:"name,omitempty"`
	WeightKg                 *float64 `json:"weight_kg,omitempty"`
	ReminderFrequencyMinutes *int     `json:"reminder_frequency_minutes,omitempty"`
	SoundVolume              *int     `json:"sound_volume,omitempty"`
	NotificationsEnabled     *bool    `json:"notifications_enabled,omitempty"`
	ActivityTrackingEnabled  *bool    `json:"activity_tracking_enabled,omitempty"`
	Theme                    *string  `json:"theme,omitempty"`
	BubbleSize               *string  `json:"bubble_size,omitempty"`
	Language                 *string  `json:"language,omitempty"`
}

// Apply validates the update and mutates the profile. Out-of-range values
// reject the whole update without touching the profile. Theme gating is
// the caller's concern; Apply only checks the theme exists.
func (p *UserProfile) Apply(update ProfileUpdate) error {
	if update.WeightKg != nil && *update.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if update.ReminderFrequencyMinutes != nil && *update.ReminderFrequencyMinutes <= 0 {
		return ErrInvalidFrequency
	}
	if update.SoundVolume != nil && (*update.SoundVolume < 0 || *update.SoundVolume > 100) {
		return ErrInvalidVolume
	}
	if update.BubbleSize != nil {
		switch *update.BubbleSize {
		case BubbleSmall, BubbleMedium, BubbleLarge:
		default:
			return ErrInvalidBubbleSize
		}
	}
	if update.Theme != nil && !knownTheme(*update.Theme) {
		return ErrUnknownTheme
	}

	if update.Name != nil {
		p.Name = strings.TrimSpace(*update.Name)
	}
	if update.WeightKg != nil {
		p.WeightKg = *update.WeightKg
	}
	if update.ReminderFrequencyMinutes != nil {
		p.ReminderFrequencyMinutes = *update.ReminderFrequencyMinutes
	}
	if update.SoundVolume != nil {
		p.SoundVolume = *update.SoundVolume
	}
	if update.NotificationsEnabled != nil {
		p.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.ActivityTrackingEnabled != nil {
		p.ActivityTrackingEnabled = *update.ActivityTrackingEnabled
	}
	if update.Theme != nil {
		p.Theme = *update.Theme
	}
	if update.BubbleSize != nil {
		p.BubbleSize = *update.BubbleSize
	}
	if update.Language != nil {
		p.Language = *update.Language
	}

	return nil
}

func knownTheme(theme string) bool {
	for _, t := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}
