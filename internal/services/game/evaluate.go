package game

import (
	"time"

	"github.com/statdle/statdle/internal/model"
)

// eraWindow is the maximum career-start-year gap still reported as the
// same era
const eraWindow = 2

// Evaluate scores a resolved guess against the session's answer. It is a
// pure function of the two records: identity decides correctness, and for
// misses the era and team-overlap signals are computed independently.
func Evaluate(guessed, answer *model.PlayerRecord, at time.Time) model.Guess {
	g := model.Guess{
		Name:      guessed.Name,
		PlayerID:  guessed.ID,
		PfrID:     guessed.PfrID,
		GuessedAt: at,
	}

	if guessed.ID == answer.ID {
		g.Correct = true
		return g
	}

	g.Era = eraFeedback(guessed, answer)
	g.TeamsOverlap = guessed.SharesTeamWith(answer)
	return g
}

func eraFeedback(guessed, answer *model.PlayerRecord) model.EraFeedback {
	// A record with no derivable career start gives no era signal
	if !guessed.HasEra() || !answer.HasEra() {
		return model.EraFar
	}

	delta := guessed.CareerStart - answer.CareerStart
	if delta < 0 {
		delta = -delta
	}
	if delta <= eraWindow {
		return model.EraSame
	}
	return model.EraFar
}
