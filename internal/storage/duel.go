package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DuelResult is the outcome of a local two-player duel.
type DuelResult struct {
	ID        int64
	MatchID   string
	GameID    string
	Score1    int
	Score2    int
	Rounds    int
	Winner    int // 1 or 2, 0 for a draw
	Duration  int // seconds
	CreatedAt time.Time
}

// DuelTally counts duel outcomes for a game.
type DuelTally struct {
	Player1Wins int
	Player2Wins int
	Draws       int
}

// SaveDuelResult records a finished duel. An empty MatchID is replaced with a
// new UUID. Returns the stored match id.
func (s *Store) SaveDuelResult(r DuelResult) (string, error) {
	if r.MatchID == "" {
		r.MatchID = uuid.NewString()
	}
	_, err := s.db.Exec(
		`INSERT INTO duel_matches (match_id, game_id, score1, score2, rounds, winner, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.Score1, r.Score2, r.Rounds, r.Winner, r.Duration,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save duel: %w", err)
	}
	return r.MatchID, nil
}

const duelColumns = `id, match_id, game_id, score1, score2, rounds, winner, duration_secs, created_at`

func scanDuel(row interface{ Scan(...any) error }) (DuelResult, error) {
	var r DuelResult
	var createdAt any
	err := row.Scan(&r.ID, &r.MatchID, &r.GameID, &r.Score1, &r.Score2, &r.Rounds, &r.Winner, &r.Duration, &createdAt)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// DuelByMatchID retrieves a duel by its match id. Returns nil if not found.
func (s *Store) DuelByMatchID(matchID string) (*DuelResult, error) {
	r, err := scanDuel(s.db.QueryRow(
		`SELECT `+duelColumns+` FROM duel_matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duel: %w", err)
	}
	return &r, nil
}

// RecentDuels retrieves the most recent duels for a game, newest first.
func (s *Store) RecentDuels(gameID string, limit int) ([]DuelResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+duelColumns+`
		 FROM duel_matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query duels: %w", err)
	}
	defer rows.Close()

	var results []DuelResult
	for rows.Next() {
		r, err := scanDuel(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// DuelTally counts wins and draws over every stored duel of a game.
func (s *Store) DuelTally(gameID string) (DuelTally, error) {
	var t DuelTally
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN winner = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 2 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = 0 THEN 1 ELSE 0 END), 0)
		 FROM duel_matches WHERE game_id = ?`,
		gameID,
	).Scan(&t.Player1Wins, &t.Player2Wins, &t.Draws)
	if err != nil {
		return t, fmt.Errorf("storage: cannot count duels: %w", err)
	}
	return t, nil
}
