package notify

import (
	"log"

	"github.com/sippyapp/sippy-engine/internal/core/domain"
)

// LogNotifier writes notifications to the process log. It stands in for
// the platform notification and sound collaborators when the engine runs
// headless.
type LogNotifier struct{}

var _ domain.Notifier = (*LogNotifier)(nil)

func New() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(title, body string) {
	log.Printf("[NOTIFY] %s: %s", title, body)
}

func (n *LogNotifier) PlaySound(name string, volume float64) {
	log.Printf("[SOUND] %s (volume %.2f)", name, volume)
}

func (n *LogNotifier) Animate(effect string) {
	log.Printf("[ANIMATE] %s", effect)
}
