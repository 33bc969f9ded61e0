package wordraw

import (
	"errors"
	"fmt"
)

// Validation errors carry the text shown to the player who caused them.
var (
	ErrTeamCount            = errors.New("The number of teams must be between 2 and 4.")
	ErrNotEnoughPlayers     = errors.New("You must add at least 2 participants.")
	ErrTooManyParticipants  = errors.New("You cannot add any more participants.")
	ErrTeamsTooSmall        = errors.New("Every team needs at least one participant.")
	ErrEmptyName            = errors.New("Names cannot be empty.")
	ErrDuplicateParticipant = errors.New("That participant has already been added.")
	ErrUnknownParticipant   = errors.New("That participant is not part of this game.")
	ErrDuplicateTeamName    = errors.New("Team names must be unique.")
	ErrUnknownTeam          = errors.New("That team does not exist.")
	ErrTeamsOrganized       = errors.New("Teams have already been organized.")
	ErrTeamsNotOrganized    = errors.New("Organize the teams before starting a round.")
	ErrNotInSetup           = errors.New("The match has already started.")
	ErrNotPlaying           = errors.New("No match is in progress.")
	ErrWrongPhase           = errors.New("That action is not available in this phase.")
	ErrNotGuesser           = errors.New("Only the current team's guessers can guess.")
	ErrEmptyGuess           = errors.New("Type a guess first.")
)

// LimitError reports a full roster. It matches ErrTooManyParticipants.
type LimitError struct {
	Max int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("You cannot add more than %d participants.", e.Max)
}

func (e *LimitError) Is(target error) bool {
	return target == ErrTooManyParticipants
}
