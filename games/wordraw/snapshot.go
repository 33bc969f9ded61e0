package wordraw

import "time"

type TeamView struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
	Score        int      `json:"score"`
	Guessed      []string `json:"guessed"`
}

// Snapshot is a point-in-time view of a game, shaped for clients.
type Snapshot struct {
	Stage           Stage       `json:"stage"`
	TeamCount       int         `json:"team_count"`
	MaxParticipants int         `json:"max_participants"`
	Participants    []string    `json:"participants"`
	Teams           []TeamView  `json:"teams"`
	Phase           *Phase      `json:"phase,omitempty"`
	PhaseSeconds    int         `json:"phase_seconds,omitempty"`
	EndsAt          time.Time   `json:"ends_at,omitzero"`
	TimerKey        int         `json:"timer_key"`
	Turn            int         `json:"turn"`
	TotalTurns      int         `json:"total_turns"`
	Current         string      `json:"current,omitempty"`
	CurrentTeam     int         `json:"current_team"`
	Category        string      `json:"category,omitempty"`
	Word            string      `json:"word,omitempty"`
	WordVisible     bool        `json:"word_visible"`
	LastTurn        *TurnResult `json:"last_turn,omitempty"`
	Outcome         *Outcome    `json:"outcome,omitempty"`
	Winner          string      `json:"winner,omitempty"`
}

// Snapshot includes the current word. Use Redacted before sending it to a
// client that should not see it.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Stage:           g.stage,
		TeamCount:       g.teamCount,
		MaxParticipants: g.maxParticipants,
		Participants:    g.Participants(),
		Teams:           make([]TeamView, 0, len(g.teams)),
		TimerKey:        g.timerKey,
		TotalTurns:      g.TotalTurns(),
		Current:         g.current,
		CurrentTeam:     g.currentTeam,
		WordVisible:     g.wordVisible,
	}

	for _, t := range g.teams {
		guessed := make([]string, 0, len(t.Guessed))
		for _, w := range t.Guessed {
			guessed = append(guessed, w.Word)
		}
		s.Teams = append(s.Teams, TeamView{
			Name:         t.Name,
			Participants: append([]string(nil), t.Participants...),
			Score:        t.Score(),
			Guessed:      guessed,
		})
	}

	if p, ok := g.Phase(); ok {
		s.Phase = &p
		s.PhaseSeconds = int(p.Duration / time.Second)
		s.EndsAt = g.endsAt
		s.Turn = g.turn + 1
		s.Category = g.word.Category
		s.Word = g.word.Word
	}

	if g.last != nil {
		last := *g.last
		s.LastTurn = &last
	}

	if g.outcome != nil {
		o := *g.outcome
		s.Outcome = &o
		if !o.Draw && o.Winner >= 0 && o.Winner < len(g.teams) {
			s.Winner = g.teams[o.Winner].Name
		}
	}

	return s
}

// Redacted hides the word from viewers that should not see it. The host
// sees it while it is visible and the drawer always does.
func (s Snapshot) Redacted(viewer string, host bool) Snapshot {
	if host && s.WordVisible {
		return s
	}
	if viewer != "" && viewer == s.Current {
		return s
	}

	s.Word = ""

	return s
}
