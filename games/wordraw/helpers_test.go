package wordraw

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var epoch = time.Date(2025, time.March, 1, 18, 0, 0, 0, time.UTC)

type fixture struct {
	game  *Game
	clock *clockwork.FakeClock
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()

	clock := clockwork.NewFakeClockAt(epoch)
	opts.Clock = clock
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(1, 2))
	}

	g, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	return fixture{game: g, clock: clock}
}

// organized returns a game with the named participants dealt into teams.
func organized(t *testing.T, opts Options, teams int, names ...string) fixture {
	t.Helper()

	f := newFixture(t, opts)
	if err := f.game.SetTeamCount(teams); err != nil {
		t.Fatalf("SetTeamCount: %v", err)
	}
	for _, n := range names {
		if err := f.game.AddParticipant(n); err != nil {
			t.Fatalf("AddParticipant(%q): %v", n, err)
		}
	}
	if err := f.game.OrganizeTeams(); err != nil {
		t.Fatalf("OrganizeTeams: %v", err)
	}

	return f
}

func started(t *testing.T, opts Options, teams int, names ...string) fixture {
	t.Helper()

	f := organized(t, opts, teams, names...)
	if err := f.game.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	return f
}

func phaseKey(t *testing.T, g *Game) PhaseKey {
	t.Helper()

	p, ok := g.Phase()
	if !ok {
		t.Fatalf("no active phase, stage %s", g.Stage())
	}

	return p.Key
}

// toGuess moves the current turn from ready to the guess phase.
func toGuess(t *testing.T, g *Game) {
	t.Helper()

	for phaseKey(t, g) != PhaseGuess {
		if err := g.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
}

func mustBank(t *testing.T, data string) *Bank {
	t.Helper()

	b, err := ParseBank([]byte(data))
	if err != nil {
		t.Fatalf("ParseBank: %v", err)
	}

	return b
}
