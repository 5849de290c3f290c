package workers_test

import (
	"testing"
	"time"

	"github.com/sippyapp/sippy-engine/internal/core/workers"
	"github.com/stretchr/testify/assert"
)

type memoryRoundStub struct {
	due    bool
	starts int
	asks   int
}

func (g *memoryRoundStub) Start() string {
	g.starts++
	return "word"
}

func (g *memoryRoundStub) Due() bool { return g.due }

func (g *memoryRoundStub) Ask() { g.asks++ }

func TestMemoryWorkerStartsRoundWhenNoneDue(t *testing.T) {
	game := &memoryRoundStub{}
	activity := &activityStub{active: true}
	w := workers.NewMemoryWorker(time.Minute, game, activity)

	w.Tick()
	assert.Equal(t, 1, game.starts)
	assert.Equal(t, 0, game.asks)
}

func TestMemoryWorkerAsksWhenDue(t *testing.T) {
	game := &memoryRoundStub{due: true}
	activity := &activityStub{active: true}
	w := workers.NewMemoryWorker(time.Minute, game, activity)

	w.Tick()
	assert.Equal(t, 0, game.starts, "recall takes priority over starting a new round")
	assert.Equal(t, 1, game.asks)
}

func TestMemoryWorkerSkipsAbsentUser(t *testing.T) {
	game := &memoryRoundStub{due: true}
	w := workers.NewMemoryWorker(time.Minute, game, &activityStub{active: false})

	w.Tick()
	assert.Equal(t, 0, game.starts)
	assert.Equal(t, 0, game.asks)

	w = workers.NewMemoryWorker(time.Minute, game, &activityStub{active: true, meeting: true})
	w.Tick()
	assert.Equal(t, 0, game.asks)
}
