package wordraw

import (
	"fmt"
	"slices"
	"strings"
)

const (
	MinTeams = 2
	MaxTeams = 4

	DefaultMaxParticipants = 20
)

// Team is a group of participants and the words they have guessed.
type Team struct {
	Name         string
	Participants []string
	Guessed      []Word
}

func (t *Team) Score() int {
	return len(t.Guessed)
}

// SetTeamCount records how many teams to organize. The count is checked when
// the teams are organized.
func (g *Game) SetTeamCount(n int) error {
	if g.stage != StageSetup {
		return ErrNotInSetup
	}
	if len(g.teams) > 0 {
		return ErrTeamsOrganized
	}

	g.teamCount = n

	return nil
}

func (g *Game) AddParticipant(name string) error {
	if g.stage != StageSetup {
		return ErrNotInSetup
	}
	if len(g.teams) > 0 {
		return ErrTeamsOrganized
	}
	if len(g.participants) >= g.maxParticipants {
		return &LimitError{Max: g.maxParticipants}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if g.hasParticipant(name) {
		return ErrDuplicateParticipant
	}

	g.participants = append(g.participants, name)

	return nil
}

func (g *Game) RemoveParticipant(name string) error {
	if g.stage != StageSetup {
		return ErrNotInSetup
	}
	if len(g.teams) > 0 {
		return ErrTeamsOrganized
	}

	name = strings.TrimSpace(name)
	i := slices.IndexFunc(g.participants, func(p string) bool {
		return strings.EqualFold(p, name)
	})
	if i < 0 {
		return ErrUnknownParticipant
	}

	g.participants = slices.Delete(g.participants, i, i+1)

	return nil
}

// OrganizeTeams shuffles the participants and deals them across the teams
// in turn. Calling it again before the match starts reshuffles.
func (g *Game) OrganizeTeams() error {
	if g.stage != StageSetup {
		return ErrNotInSetup
	}
	if g.teamCount < MinTeams || g.teamCount > MaxTeams {
		return ErrTeamCount
	}
	if len(g.participants) < 2 {
		return ErrNotEnoughPlayers
	}
	if len(g.participants) < g.teamCount {
		return ErrTeamsTooSmall
	}

	shuffled := slices.Clone(g.participants)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	teams := make([]*Team, g.teamCount)
	for i := range teams {
		teams[i] = &Team{Name: fmt.Sprintf("Team %d", i+1)}
	}
	for i, p := range shuffled {
		t := teams[i%g.teamCount]
		t.Participants = append(t.Participants, p)
	}

	g.teams = teams

	return nil
}

func (g *Game) RenameTeam(index int, name string) error {
	if g.stage != StageSetup {
		return ErrNotInSetup
	}
	if len(g.teams) == 0 {
		return ErrTeamsNotOrganized
	}
	if index < 0 || index >= len(g.teams) {
		return ErrUnknownTeam
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	for i, t := range g.teams {
		if i != index && strings.EqualFold(t.Name, name) {
			return ErrDuplicateTeamName
		}
	}

	g.teams[index].Name = name

	return nil
}

func (g *Game) hasParticipant(name string) bool {
	return slices.ContainsFunc(g.participants, func(p string) bool {
		return strings.EqualFold(p, name)
	})
}

// participantFor maps a turn onto a team and a position within it: the team
// cycles with every turn and the position advances once per full cycle.
func (g *Game) participantFor(turn int) (string, int, bool) {
	if len(g.teams) == 0 || len(g.participants) == 0 {
		return "", -1, false
	}

	r := turn % len(g.participants)
	team := r % len(g.teams)
	pos := r / len(g.teams)

	members := g.teams[team].Participants
	if pos >= len(members) {
		return "", team, false
	}

	return members[pos], team, true
}

func (g *Game) teamOf(name string) int {
	for i, t := range g.teams {
		if slices.Contains(t.Participants, name) {
			return i
		}
	}

	return -1
}
