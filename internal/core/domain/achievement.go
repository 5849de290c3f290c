package domain

// Achievement is a static catalog entry; unlock state lives in Unlocks.
type Achievement struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Desc string `json:"desc"`
	Icon string `json:"icon"`
}

const (
	AchFirstDrop       = "first-drop"
	AchWeekStreak      = "streak-7"
	AchMonthStreak     = "streak-30"
	AchCenturyStreak   = "streak-100"
	AchPerfectDay      = "perfect-day"
	AchSummerSurvivor  = "chennai-survivor"
	AchEarlyBird       = "early-bird"
	AchNightOwl        = "night-owl"
	AchHydrationHero   = "hydration-hero"
	AchMemoryMaster    = "memory-master"
	AchPoints100       = "points-100"
	AchPoints500       = "points-500"
	AchPoints1000      = "points-1000"
)

// Achievements is the fixed catalog.
var Achievements = []Achievement{
	{ID: AchFirstDrop, Name: "First Drop", Desc: "Log your first glass", Icon: "💧"},
	{ID: AchWeekStreak, Name: "7-Day Champion", Desc: "7 days streak", Icon: "🏅"},
	{ID: AchMonthStreak, Name: "30-Day Champion", Desc: "30 days streak", Icon: "🏆"},
	{ID: AchCenturyStreak, Name: "100-Day Legend", Desc: "100 days streak", Icon: "👑"},
	{ID: AchPerfectDay, Name: "Perfect Day", Desc: "Hit 100% goal", Icon: "🎯"},
	{ID: AchSummerSurvivor, Name: "Chennai Summer Survivor", Desc: "Stay hydrated in 35°C+", Icon: "🔥"},
	{ID: AchEarlyBird, Name: "Early Bird", Desc: "Drink before 8 AM", Icon: "🌅"},
	{ID: AchNightOwl, Name: "Night Owl", Desc: "Drink after 10 PM", Icon: "🌙"},
	{ID: AchHydrationHero, Name: "Hydration Hero", Desc: "Log 50 drinks", Icon: "🦸"},
	{ID: AchMemoryMaster, Name: "Memory Master", Desc: "Win 10 memory games", Icon: "🧠"},
	{ID: AchPoints100, Name: "Century", Desc: "Earn 100 points", Icon: "💯"},
	{ID: AchPoints500, Name: "Points Champion", Desc: "Earn 500 points", Icon: "⭐"},
	{ID: AchPoints1000, Name: "Points Legend", Desc: "Earn 1000 points", Icon: "🌟"},
}

// AchievementByID looks up a catalog entry; ok is false for unknown ids.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

const DefaultTheme = "ocean"

// Themes lists every selectable theme.
var Themes = []string{"ocean", "forest", "sunset", "midnight", "chennai"}

// ThemeThreshold pairs a points balance with the theme it unlocks.
type ThemeThreshold struct {
	Points int
	Theme  string
}

// ThemeThresholds is ascending; any threshold at or below the current
// balance unlocks its theme.
var ThemeThresholds = []ThemeThreshold{
	{Points: 0, Theme: "ocean"},
	{Points: 100, Theme: "forest"},
	{Points: 250, Theme: "sunset"},
	{Points: 500, Theme: "midnight"},
	{Points: 1000, Theme: "chennai"},
}

// Unlocks is the persisted record of unlocked achievement ids and themes.
// Both sets grow monotonically; the wipe operation is the only reset path.
type Unlocks struct {
	SchemaVersion int      `json:"schema_version"`
	Achievements  []string `json:"achievements"`
	Themes        []string `json:"themes"`
}

func DefaultUnlocks() *Unlocks {
	return &Unlocks{
		SchemaVersion: SchemaVersion,
		Achievements:  []string{},
		Themes:        []string{DefaultTheme},
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (u *Unlocks) HasAchievement(id string) bool {
	return contains(u.Achievements, id)
}

// AddAchievement unlocks the id. Returns false when already unlocked,
// making repeat unlocks a no-op.
func (u *Unlocks) AddAchievement(id string) bool {
	if u.HasAchievement(id) {
		return false
	}
	u.Achievements = append(u.Achievements, id)
	return true
}

// HasTheme reports whether the theme is unlocked. The default theme is
// always unlocked.
func (u *Unlocks) HasTheme(theme string) bool {
	if theme == DefaultTheme {
		return true
	}
	return contains(u.Themes, theme)
}

// AddTheme unlocks the theme; false when already unlocked.
func (u *Unlocks) AddTheme(theme string) bool {
	if contains(u.Themes, theme) {
		return false
	}
	u.Themes = append(u.Themes, theme)
	return true
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
