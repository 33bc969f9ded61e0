package wordraw

import (
	"fmt"
	"time"
)

type PhaseKey string

const (
	PhaseReady PhaseKey = "ready"
	PhaseDraw  PhaseKey = "draw"
	PhaseGuess PhaseKey = "guess"
	PhaseEnd   PhaseKey = "end"
)

// Phase is one segment of a turn.
type Phase struct {
	Key      PhaseKey      `json:"key"`
	Label    string        `json:"label"`
	Duration time.Duration `json:"-"`
}

// Schedule holds the countdown length of each phase.
type Schedule struct {
	Ready time.Duration
	Draw  time.Duration
	Guess time.Duration
	End   time.Duration
}

func DefaultSchedule() Schedule {
	return Schedule{
		Ready: 3 * time.Second,
		Draw:  60 * time.Second,
		Guess: 20 * time.Second,
		End:   0,
	}
}

func (s Schedule) Validate() error {
	switch {
	case s.Ready <= 0:
		return fmt.Errorf("ready duration must be positive: %s", s.Ready)
	case s.Draw <= 0:
		return fmt.Errorf("draw duration must be positive: %s", s.Draw)
	case s.Guess <= 0:
		return fmt.Errorf("guess duration must be positive: %s", s.Guess)
	case s.End < 0:
		return fmt.Errorf("end duration must not be negative: %s", s.End)
	}

	return nil
}

// Phases returns the turn sequence in order.
func (s Schedule) Phases() []Phase {
	return []Phase{
		{Key: PhaseReady, Label: "Get ready!", Duration: s.Ready},
		{Key: PhaseDraw, Label: "Draw now!", Duration: s.Draw},
		{Key: PhaseGuess, Label: "Guess!", Duration: s.Guess},
		{Key: PhaseEnd, Label: "Time's up!", Duration: s.End},
	}
}

func phaseIndex(phases []Phase, key PhaseKey) int {
	for i, p := range phases {
		if p.Key == key {
			return i
		}
	}

	return -1
}
