package wordraw

// Outcome is the result of a finished match. Winner is -1 on a draw.
type Outcome struct {
	Draw   bool `json:"draw"`
	Winner int  `json:"winner"`
}

// Resolve picks the single team with the highest score. Any tie at the top,
// including every team being level, is a draw.
func Resolve(scores []int) Outcome {
	if len(scores) == 0 {
		return Outcome{Draw: true, Winner: -1}
	}

	best := scores[0]
	for _, s := range scores[1:] {
		best = max(best, s)
	}

	winner := -1
	for i, s := range scores {
		if s != best {
			continue
		}
		if winner >= 0 {
			return Outcome{Draw: true, Winner: -1}
		}
		winner = i
	}

	return Outcome{Winner: winner}
}
