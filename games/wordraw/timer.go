package wordraw

import (
	"sync"

	"github.com/jonboulle/clockwork"
)

// PhaseTimer runs the countdown for a game's active phase. Each phase
// instance gets its own timer; when the game moves on, the old one is
// stopped and fire is never called with its key.
type PhaseTimer struct {
	clock clockwork.Clock
	fire  func(key int)

	mu    sync.Mutex
	timer clockwork.Timer
	key   int
	armed bool
}

func NewPhaseTimer(clock clockwork.Clock, fire func(key int)) *PhaseTimer {
	return &PhaseTimer{
		clock: clock,
		fire:  fire,
	}
}

// Sync arms a timer for g's active phase unless one is already running for
// the same phase instance.
func (t *PhaseTimer) Sync(g *Game) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := g.TimerKey()
	if t.armed && key == t.key {
		return
	}

	t.stopLocked()
	t.key = key

	if _, ok := g.Phase(); !ok {
		return
	}

	t.armed = true
	t.timer = t.clock.AfterFunc(g.Remaining(), func() {
		t.fire(key)
	})
}

func (t *PhaseTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

func (t *PhaseTimer) stopLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.armed = false
}
