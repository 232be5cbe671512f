package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

// RoundSaver persists finished rounds. *storage.Store implements it.
type RoundSaver interface {
	SaveRound(r storage.Round) (int64, error)
}

// roundRecorder saves the rounds a game reports. Storage failures are logged
// and never interrupt play.
type roundRecorder struct {
	saver  RoundSaver
	logger *log.Logger
	gameID string
}

func (r roundRecorder) record(rounds []core.RoundResult) {
	for _, res := range rounds {
		outcome := storage.OutcomeLost
		if res.Won {
			outcome = storage.OutcomeWon
		}
		round := storage.Round{
			RoundID:    uuid.NewString(),
			GameID:     r.gameID,
			Buttons:    res.Buttons,
			Outcome:    outcome,
			DurationMs: res.DurationMs,
		}

		if r.logger != nil {
			r.logger.Debug("round finished",
				"round", round.RoundID,
				"buttons", round.Buttons,
				"outcome", round.Outcome,
				"ms", round.DurationMs,
			)
		}
		if r.saver == nil {
			continue
		}
		if _, err := r.saver.SaveRound(round); err != nil && r.logger != nil {
			r.logger.Warn("could not save round", "round", round.RoundID, "error", err)
		}
	}
}
