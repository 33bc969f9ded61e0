// Package wordraw implements a team drawing and guessing game.
//
// A match starts in setup, where participants are added and dealt into two to
// four teams. Each turn one participant draws a random word while their team
// guesses, passing through the ready, draw, guess and end phases. When every
// participant has drawn, the team with the most guessed words wins; a tie at
// the top is a draw.
//
// Game is not safe for concurrent use.
package wordraw

import (
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
)

type Stage string

const (
	StageSetup    Stage = "setup"
	StagePlaying  Stage = "playing"
	StageFinished Stage = "finished"
)

type Options struct {
	Bank            *Bank
	Schedule        Schedule
	Rounds          int
	MaxParticipants int
	Clock           clockwork.Clock
	Rand            *rand.Rand
}

// TurnResult describes how the previous turn ended.
type TurnResult struct {
	Participant string `json:"participant"`
	Team        int    `json:"team"`
	Word        Word   `json:"word"`
	Correct     bool   `json:"correct"`
}

type Game struct {
	bank            *Bank
	phases          []Phase
	rounds          int
	maxParticipants int
	clock           clockwork.Clock
	rng             *rand.Rand

	teamCount    int
	participants []string
	teams        []*Team

	stage       Stage
	phase       int
	timerKey    int
	endsAt      time.Time
	turn        int
	current     string
	currentTeam int
	word        Word
	wordVisible bool
	last        *TurnResult
	outcome     *Outcome
}

func New(opts Options) (*Game, error) {
	if opts.Bank == nil {
		bank, err := DefaultBank()
		if err != nil {
			return nil, err
		}
		opts.Bank = bank
	}
	if opts.Schedule == (Schedule{}) {
		opts.Schedule = DefaultSchedule()
	}
	if err := opts.Schedule.Validate(); err != nil {
		return nil, err
	}
	if opts.Rounds < 1 {
		opts.Rounds = 1
	}
	if opts.MaxParticipants < 2 {
		opts.MaxParticipants = DefaultMaxParticipants
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Game{
		bank:            opts.Bank,
		phases:          opts.Schedule.Phases(),
		rounds:          opts.Rounds,
		maxParticipants: opts.MaxParticipants,
		clock:           opts.Clock,
		rng:             opts.Rand,
		stage:           StageSetup,
		phase:           -1,
		currentTeam:     -1,
	}, nil
}

func (g *Game) Stage() Stage {
	return g.stage
}

// TimerKey identifies the current phase instance. It changes every time a
// phase is entered, so an expiry for an older key can be told apart.
func (g *Game) TimerKey() int {
	return g.timerKey
}

// Phase returns the active phase, if a match is in progress.
func (g *Game) Phase() (Phase, bool) {
	if g.stage != StagePlaying || g.phase < 0 {
		return Phase{}, false
	}

	return g.phases[g.phase], true
}

// Remaining is the time left on the active phase's countdown.
func (g *Game) Remaining() time.Duration {
	if _, ok := g.Phase(); !ok {
		return 0
	}

	return max(g.endsAt.Sub(g.clock.Now()), 0)
}

func (g *Game) TotalTurns() int {
	return len(g.participants) * g.rounds
}

func (g *Game) Participants() []string {
	out := make([]string, len(g.participants))
	copy(out, g.participants)

	return out
}

// Teams returns copies of the teams.
func (g *Game) Teams() []Team {
	out := make([]Team, 0, len(g.teams))
	for _, t := range g.teams {
		out = append(out, Team{
			Name:         t.Name,
			Participants: append([]string(nil), t.Participants...),
			Guessed:      append([]Word(nil), t.Guessed...),
		})
	}

	return out
}

// CurrentParticipant is the participant drawing this turn.
func (g *Game) CurrentParticipant() string {
	return g.current
}

func (g *Game) Outcome() (Outcome, bool) {
	if g.outcome == nil {
		return Outcome{}, false
	}

	return *g.outcome, true
}

// Start begins the first turn.
func (g *Game) Start() error {
	if g.stage != StageSetup {
		return ErrNotInSetup
	}
	if len(g.teams) == 0 {
		return ErrTeamsNotOrganized
	}

	g.stage = StagePlaying
	g.turn = 0
	g.last = nil
	g.outcome = nil
	g.beginTurn()

	return nil
}

// Advance moves to the next phase at the host's request. Leaving the guess
// phase this way counts as a missed guess.
func (g *Game) Advance() error {
	if g.stage != StagePlaying {
		return ErrNotPlaying
	}

	g.advance()

	return nil
}

// Expire handles the countdown for phase instance key running out. It
// reports false when key is stale, because the phase already changed.
func (g *Game) Expire(key int) bool {
	if g.stage != StagePlaying || key != g.timerKey {
		return false
	}

	g.advance()

	return true
}

// Reroll swaps the word and restarts the turn at the ready phase.
func (g *Game) Reroll() error {
	if g.stage != StagePlaying {
		return ErrNotPlaying
	}

	switch g.phases[g.phase].Key {
	case PhaseDraw, PhaseGuess:
	default:
		return ErrWrongPhase
	}

	g.word = g.bank.Pick(g.rng)
	g.enterPhase(PhaseReady)

	return nil
}

func (g *Game) ToggleWord() error {
	if g.stage != StagePlaying {
		return ErrNotPlaying
	}
	if g.phases[g.phase].Key == PhaseEnd {
		return ErrWrongPhase
	}

	g.wordVisible = !g.wordVisible

	return nil
}

// Guess records whether the drawing team guessed the word, ending the turn.
func (g *Game) Guess(correct bool) error {
	if g.stage != StagePlaying {
		return ErrNotPlaying
	}
	if g.phases[g.phase].Key != PhaseGuess {
		return ErrWrongPhase
	}

	g.resolveTurn(correct)

	return nil
}

// Restart returns to setup. Participants and the team count are kept.
func (g *Game) Restart() {
	g.stage = StageSetup
	g.teams = nil
	g.phase = -1
	g.timerKey++
	g.endsAt = time.Time{}
	g.turn = 0
	g.current = ""
	g.currentTeam = -1
	g.word = Word{}
	g.wordVisible = false
	g.last = nil
	g.outcome = nil
}

func (g *Game) advance() {
	switch g.phases[g.phase].Key {
	case PhaseReady:
		g.enterPhase(PhaseDraw)
	case PhaseDraw:
		g.enterPhase(PhaseGuess)
	case PhaseGuess:
		g.resolveTurn(false)
	case PhaseEnd:
		g.nextTurn()
	}
}

func (g *Game) enterPhase(key PhaseKey) {
	g.phase = phaseIndex(g.phases, key)
	g.timerKey++
	g.endsAt = g.clock.Now().Add(g.phases[g.phase].Duration)
}

func (g *Game) beginTurn() {
	for ; g.turn < g.TotalTurns(); g.turn++ {
		name, team, ok := g.participantFor(g.turn)
		if !ok {
			continue
		}

		g.current = name
		g.currentTeam = team
		g.word = g.bank.Pick(g.rng)
		g.wordVisible = false
		g.enterPhase(PhaseReady)

		return
	}

	g.finish()
}

func (g *Game) resolveTurn(correct bool) {
	if correct {
		t := g.teams[g.currentTeam]
		t.Guessed = append(t.Guessed, g.word)
	}

	g.last = &TurnResult{
		Participant: g.current,
		Team:        g.currentTeam,
		Word:        g.word,
		Correct:     correct,
	}

	g.enterPhase(PhaseEnd)
	if g.phases[g.phase].Duration <= 0 {
		g.nextTurn()
	}
}

func (g *Game) nextTurn() {
	g.turn++
	g.beginTurn()
}

func (g *Game) finish() {
	scores := make([]int, len(g.teams))
	for i, t := range g.teams {
		scores[i] = t.Score()
	}
	outcome := Resolve(scores)

	g.stage = StageFinished
	g.phase = -1
	g.timerKey++
	g.endsAt = time.Time{}
	g.current = ""
	g.currentTeam = -1
	g.wordVisible = false
	g.outcome = &outcome
}
