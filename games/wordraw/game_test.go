package wordraw

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestStartRequiresTeams(t *testing.T) {
	g := newFixture(t, Options{}).game

	if err := g.Start(); !errors.Is(err, ErrTeamsNotOrganized) {
		t.Errorf("err = %v", err)
	}
	if err := g.Advance(); !errors.Is(err, ErrNotPlaying) {
		t.Errorf("Advance before start: err = %v", err)
	}
}

func TestPhaseSequence(t *testing.T) {
	f := started(t, Options{}, 2, "Ana", "Bea")
	g := f.game

	want := []struct {
		key       PhaseKey
		remaining time.Duration
	}{
		{PhaseReady, 3 * time.Second},
		{PhaseDraw, 60 * time.Second},
		{PhaseGuess, 20 * time.Second},
	}

	for i, w := range want {
		if got := phaseKey(t, g); got != w.key {
			t.Fatalf("step %d: phase = %s, want %s", i, got, w.key)
		}
		if got := g.Remaining(); got != w.remaining {
			t.Errorf("step %d: remaining = %s, want %s", i, got, w.remaining)
		}
		if i < len(want)-1 {
			if err := g.Advance(); err != nil {
				t.Fatal(err)
			}
		}
	}

	f.clock.Advance(5 * time.Second)
	if got := g.Remaining(); got != 15*time.Second {
		t.Errorf("remaining after 5s = %s", got)
	}
}

func TestRoundRobinRotation(t *testing.T) {
	names := []string{"Ana", "Bea", "Cal", "Dan", "Eve", "Fay", "Gus"}
	g := started(t, Options{}, 3, names...).game

	teams := g.Teams()
	var want []string
	for r := range len(names) {
		want = append(want, teams[r%3].Participants[r/3])
	}

	var got []string
	for g.Stage() == StagePlaying {
		got = append(got, g.CurrentParticipant())
		toGuess(t, g)
		if err := g.Guess(false); err != nil {
			t.Fatal(err)
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("drawing order mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundsRepeatRotation(t *testing.T) {
	g := started(t, Options{Rounds: 2}, 2, "Ana", "Bea", "Cal").game

	if g.TotalTurns() != 6 {
		t.Fatalf("TotalTurns = %d", g.TotalTurns())
	}

	var got []string
	for g.Stage() == StagePlaying {
		got = append(got, g.CurrentParticipant())
		toGuess(t, g)
		if err := g.Guess(false); err != nil {
			t.Fatal(err)
		}
	}

	if len(got) != 6 {
		t.Fatalf("played %d turns", len(got))
	}
	if diff := cmp.Diff(got[:3], got[3:]); diff != "" {
		t.Errorf("second round differs (-first +second):\n%s", diff)
	}
}

func TestCorrectGuessScoresCurrentTeam(t *testing.T) {
	bank := mustBank(t, `[{"word": "owl", "category": "Animals"}]`)
	g := started(t, Options{Bank: bank}, 2, "Ana", "Bea", "Cal", "Dan").game

	drawer := g.CurrentParticipant()
	team := g.teamOf(drawer)

	toGuess(t, g)
	if err := g.Guess(true); err != nil {
		t.Fatal(err)
	}

	teams := g.Teams()
	if teams[team].Score() != 1 || teams[1-team].Score() != 0 {
		t.Fatalf("scores = %d, %d", teams[0].Score(), teams[1].Score())
	}
	if teams[team].Guessed[0].Word != "owl" {
		t.Errorf("guessed = %+v", teams[team].Guessed)
	}

	s := g.Snapshot()
	want := &TurnResult{Participant: drawer, Team: team, Word: Word{Word: "owl", Category: "Animals"}, Correct: true}
	if diff := cmp.Diff(want, s.LastTurn); diff != "" {
		t.Errorf("last turn mismatch (-want +got):\n%s", diff)
	}
	if phaseKey(t, g) != PhaseReady || s.Turn != 2 {
		t.Errorf("next turn: phase %s, turn %d", phaseKey(t, g), s.Turn)
	}
}

func TestGuessOnlyInGuessPhase(t *testing.T) {
	g := started(t, Options{}, 2, "Ana", "Bea").game

	if err := g.Guess(true); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("guess during ready: err = %v", err)
	}
	if err := g.Advance(); err != nil {
		t.Fatal(err)
	}
	if err := g.Guess(true); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("guess during draw: err = %v", err)
	}
}

func TestGuessPhaseTimeoutIsAMiss(t *testing.T) {
	g := started(t, Options{}, 2, "Ana", "Bea").game

	toGuess(t, g)
	if !g.Expire(g.TimerKey()) {
		t.Fatal("expiry ignored")
	}

	s := g.Snapshot()
	if s.LastTurn == nil || s.LastTurn.Correct {
		t.Fatalf("last turn = %+v", s.LastTurn)
	}
	for _, tm := range s.Teams {
		if tm.Score != 0 {
			t.Errorf("%s scored %d", tm.Name, tm.Score)
		}
	}
}

func TestStaleExpiryIgnored(t *testing.T) {
	g := started(t, Options{}, 2, "Ana", "Bea").game

	stale := g.TimerKey()
	if err := g.Advance(); err != nil {
		t.Fatal(err)
	}

	if g.Expire(stale) {
		t.Fatal("stale expiry accepted")
	}
	if phaseKey(t, g) != PhaseDraw {
		t.Fatalf("phase = %s", phaseKey(t, g))
	}
	if !g.Expire(g.TimerKey()) {
		t.Fatal("current expiry ignored")
	}
	if phaseKey(t, g) != PhaseGuess {
		t.Fatalf("phase = %s", phaseKey(t, g))
	}
}

func TestReroll(t *testing.T) {
	g := started(t, Options{}, 2, "Ana", "Bea").game

	if err := g.Reroll(); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("reroll during ready: err = %v", err)
	}

	drawer := g.CurrentParticipant()
	toGuess(t, g)
	key := g.TimerKey()

	if err := g.Reroll(); err != nil {
		t.Fatalf("Reroll: %v", err)
	}
	if phaseKey(t, g) != PhaseReady {
		t.Errorf("phase = %s", phaseKey(t, g))
	}
	if g.TimerKey() == key {
		t.Error("timer key unchanged")
	}
	if g.CurrentParticipant() != drawer {
		t.Errorf("drawer changed to %q", g.CurrentParticipant())
	}
	if g.Snapshot().Turn != 1 {
		t.Errorf("turn advanced")
	}
}

func TestToggleWord(t *testing.T) {
	g := started(t, Options{Schedule: Schedule{Ready: time.Second, Draw: time.Second, Guess: time.Second, End: time.Second}}, 2, "Ana", "Bea").game

	if g.Snapshot().WordVisible {
		t.Fatal("word starts visible")
	}
	if err := g.ToggleWord(); err != nil {
		t.Fatal(err)
	}
	if !g.Snapshot().WordVisible {
		t.Fatal("word still hidden")
	}

	toGuess(t, g)
	if err := g.Guess(false); err != nil {
		t.Fatal(err)
	}
	if phaseKey(t, g) != PhaseEnd {
		t.Fatalf("phase = %s", phaseKey(t, g))
	}
	if err := g.ToggleWord(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("toggle during end: err = %v", err)
	}

	if err := g.Advance(); err != nil {
		t.Fatal(err)
	}
	if g.Snapshot().WordVisible {
		t.Error("new turn starts with the word visible")
	}
}

func TestEndPhaseHoldsResult(t *testing.T) {
	sched := DefaultSchedule()
	sched.End = 5 * time.Second
	g := started(t, Options{Schedule: sched}, 2, "Ana", "Bea").game

	toGuess(t, g)
	if err := g.Guess(true); err != nil {
		t.Fatal(err)
	}

	if phaseKey(t, g) != PhaseEnd {
		t.Fatalf("phase = %s", phaseKey(t, g))
	}
	if g.Snapshot().Turn != 1 {
		t.Errorf("turn = %d during end", g.Snapshot().Turn)
	}

	if !g.Expire(g.TimerKey()) {
		t.Fatal("end expiry ignored")
	}
	if phaseKey(t, g) != PhaseReady || g.Snapshot().Turn != 2 {
		t.Errorf("after end: phase %s turn %d", phaseKey(t, g), g.Snapshot().Turn)
	}
}

func TestMatchOutcome(t *testing.T) {
	tests := []struct {
		name    string
		guesses []bool
		draw    bool
	}{
		{"first team wins", []bool{true, false}, false},
		{"both miss", []bool{false, false}, true},
		{"both score", []bool{true, true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := started(t, Options{}, 2, "Ana", "Bea").game

			for _, correct := range tt.guesses {
				toGuess(t, g)
				if err := g.Guess(correct); err != nil {
					t.Fatal(err)
				}
			}

			if g.Stage() != StageFinished {
				t.Fatalf("stage = %s", g.Stage())
			}
			if _, ok := g.Phase(); ok {
				t.Error("finished match has a phase")
			}

			o, ok := g.Outcome()
			if !ok {
				t.Fatal("no outcome")
			}
			if o.Draw != tt.draw {
				t.Errorf("draw = %v, want %v", o.Draw, tt.draw)
			}

			s := g.Snapshot()
			if !tt.draw && s.Winner != s.Teams[0].Name {
				t.Errorf("winner = %q, want %q", s.Winner, s.Teams[0].Name)
			}
			if tt.draw && s.Winner != "" {
				t.Errorf("draw has winner %q", s.Winner)
			}
		})
	}
}

func TestRestartKeepsRoster(t *testing.T) {
	g := started(t, Options{}, 2, "Ana", "Bea", "Cal").game
	key := g.TimerKey()

	g.Restart()

	if g.Stage() != StageSetup {
		t.Fatalf("stage = %s", g.Stage())
	}
	if len(g.Teams()) != 0 {
		t.Error("teams kept")
	}
	if len(g.Participants()) != 3 {
		t.Errorf("participants = %v", g.Participants())
	}
	if g.Expire(key) {
		t.Error("expiry after restart accepted")
	}
	if err := g.OrganizeTeams(); err != nil {
		t.Errorf("team count lost: %v", err)
	}
}

func TestNewRejectsBadSchedule(t *testing.T) {
	_, err := New(Options{Schedule: Schedule{Ready: time.Second, Draw: 0, Guess: time.Second}})
	if err == nil {
		t.Fatal("expected an error")
	}
}
