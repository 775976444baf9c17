package tui

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/registry"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// RunStore is where finished runs go. storage.Store implements it.
type RunStore interface {
	SaveScore(gameID string, score int) (int64, error)
	SaveRun(e storage.ScoreEntry) (int64, error)
	SaveDuelResult(r storage.DuelResult) (string, error)
}

// runStore converts a possibly nil store without producing a typed nil.
func runStore(store *storage.Store) RunStore {
	if store == nil {
		return nil
	}
	return store
}

// recordRun stores a finished run. Games that report their runs go to the
// score or duel table by mode; a report without a mode never started and is
// skipped. Other games store a positive score.
func recordRun(runs RunStore, game registry.Game, state core.GameState) error {
	if runs == nil {
		return nil
	}

	reporter, ok := game.(registry.Reporter)
	if !ok {
		if state.Score <= 0 {
			return nil
		}
		_, err := runs.SaveScore(game.ID(), state.Score)
		return err
	}

	r := reporter.Report()
	switch r.Mode {
	case "":
		return nil
	case "duel":
		_, err := runs.SaveDuelResult(storage.DuelResult{
			MatchID:  r.RunID,
			GameID:   game.ID(),
			Score1:   r.Score,
			Score2:   r.Score2,
			Rounds:   r.Rounds,
			Winner:   r.Winner,
			Duration: int(r.Duration.Seconds()),
		})
		return err
	default:
		_, err := runs.SaveRun(storage.ScoreEntry{
			RunID:       r.RunID,
			GameID:      game.ID(),
			Mode:        r.Mode,
			Score:       r.Score,
			MapsCleared: r.MapsCleared,
		})
		return err
	}
}
