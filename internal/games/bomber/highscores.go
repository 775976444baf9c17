package bomber

// HighScoreStore is the persistent side of the high score. storage.Store
// implements it.
type HighScoreStore interface {
	HighScore(gameID string) (int, error)
	SetHighScore(gameID string, score int, runID string) (bool, error)
}

// highScores adapts a HighScoreStore to engine.HighScores for one run.
// The configured floor counts as the score to beat when the store holds
// nothing higher.
type highScores struct {
	store  HighScoreStore
	gameID string
	runID  string
	floor  int
}

func (h *highScores) HighScore() (int, error) {
	best, err := h.store.HighScore(h.gameID)
	if err != nil {
		return 0, err
	}
	return max(best, h.floor), nil
}

func (h *highScores) RecordHighScore(score int) error {
	_, err := h.store.SetHighScore(h.gameID, score, h.runID)
	return err
}
