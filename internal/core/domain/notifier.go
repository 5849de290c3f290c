package domain

// Notifier is the fire-and-forget delivery port for reminders,
// celebrations and unlock toasts. Implementations must not block the
// engine; no return value is consumed.
type Notifier interface {
	Notify(title, body string)
	PlaySound(name string, volume float64)
	Animate(effect string)
}
