package wordraw

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// CloseDistance is the largest edit distance reported as a near miss.
const CloseDistance = 2

type GuessResult struct {
	Correct  bool `json:"correct"`
	Close    bool `json:"close"`
	Distance int  `json:"distance"`
}

// GuessText checks a typed guess from participant against the current word.
// An exact match, ignoring case and surrounding space, scores like a correct
// Guess and ends the turn.
func (g *Game) GuessText(participant, text string) (GuessResult, error) {
	if g.stage != StagePlaying {
		return GuessResult{}, ErrNotPlaying
	}

	switch g.phases[g.phase].Key {
	case PhaseDraw, PhaseGuess:
	default:
		return GuessResult{}, ErrWrongPhase
	}

	if participant == "" || participant == g.current || g.teamOf(participant) != g.currentTeam {
		return GuessResult{}, ErrNotGuesser
	}

	guess := strings.ToLower(strings.TrimSpace(text))
	if guess == "" {
		return GuessResult{}, ErrEmptyGuess
	}

	dist := levenshtein.ComputeDistance(guess, strings.ToLower(g.word.Word))
	if dist == 0 {
		g.resolveTurn(true)

		return GuessResult{Correct: true}, nil
	}

	return GuessResult{
		Close:    dist <= CloseDistance,
		Distance: dist,
	}, nil
}

// IsParticipant reports whether name was added to the roster.
func (g *Game) IsParticipant(name string) bool {
	return g.hasParticipant(name)
}

// CanonicalName returns the roster spelling of name.
func (g *Game) CanonicalName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, p := range g.participants {
		if strings.EqualFold(p, name) {
			return p, true
		}
	}

	return "", false
}
