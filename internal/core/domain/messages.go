package domain

// Message catalogs for the motivational messenger. Templates may carry
// {streak}, {temp}, {humidity} and {points} placeholders, substituted
// from live stats and weather at selection time.
var Messages = map[string][]string{
	"morning": {
		"Good morning! Chennai's heating up. Let's hydrate! ☀️",
		"Rise and shine! Start your day with a glass of water 💧",
		"Morning in Chennai! Time for your first sip 🌅",
	},
	"afternoon": {
		"Chennai heat is at its peak! Drink up! 🔥",
		"Midday hydration check! How are you doing? 💧",
		"Traffic was rough, right? Refresh with water! 🚗",
	},
	"evening": {
		"Evening in Chennai! Don't forget to hydrate 🌆",
		"Winding down? Keep that water bottle close! 💧",
		"Marina Beach sunset time! But first, hydrate! 🌊",
	},
	"milestone": {
		"You're crushing it! 💪",
		"Hydration hero! Keep going! 🦸",
		"Amazing progress! You're on fire! 🔥",
		"{streak} days strong! You're unstoppable! 💎",
	},
	"encouragement": {
		"Your body will thank you! 💙",
		"Stay hydrated, stay focused! 🎯",
		"One sip at a time! You got this! 💪",
		"Sippy is proud of you! 😊",
	},
	"weather": {
		"It's {temp}°C in Chennai - hydrate more! 🌞",
		"High humidity today! Drink extra water! 💦",
		"Chennai summer is tough. You're tougher! 🔥",
		"Perfect weather for staying hydrated! ⛅",
	},
}

// ReminderMessages holds the per-tier reminder lines, index = tier - 1.
// Tier 3 is special-cased by the messenger to use a weather line.
var ReminderMessages = [5]string{
	"Time for a sip! 💧",
	"Don't forget to hydrate! 💦",
	"Stay hydrated!",
	"You've been working hard! Take a water break 🚰",
	"⚠️ You haven't hydrated in a while! Your health matters!",
}

// MemoryWords is the pool the mini-game draws from.
var MemoryWords = []string{
	"Water", "Hydrate", "Chennai", "Focus", "Energy",
	"Health", "Wellness", "Marine", "Beach", "Summer",
	"தண்ணீர்", "நீர்", "சென்னை", "கடல்", "வெயில்",
}
