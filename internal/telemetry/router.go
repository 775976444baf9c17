package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matryer/way"

	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	RecentDuels(gameID string, limit int) ([]storage.DuelResult, error)
	DuelTally(gameID string) (storage.DuelTally, error)
}

// ScoreView is one row of the /scores response.
type ScoreView struct {
	RunID       string    `json:"run_id"`
	Mode        string    `json:"mode"`
	Score       int       `json:"score"`
	MapsCleared int       `json:"maps_cleared"`
	CreatedAt   time.Time `json:"created_at"`
}

// DuelView is one row of the /duels response.
type DuelView struct {
	MatchID   string    `json:"match_id"`
	Score1    int       `json:"score1"`
	Score2    int       `json:"score2"`
	Rounds    int       `json:"rounds"`
	Winner    int       `json:"winner"`
	Duration  int       `json:"duration_secs"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRouter routes:
//
//	GET /metrics
//	GET /scores/:game[?limit=N]
//	GET /duels/:game[?limit=N]
func NewRouter(m *Metrics, scores ScoreSource) *way.Router {
	r := way.NewRouter()
	r.Handle("GET", "/metrics", m.Handler())
	r.HandleFunc("GET", "/scores/:game", handleScores(scores))
	r.HandleFunc("GET", "/duels/:game", handleDuels(scores))
	return r
}

func handleScores(scores ScoreSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := way.Param(r.Context(), "game")
		entries, err := scores.TopScores(game, limitParam(r, 10))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		out := make([]ScoreView, 0, len(entries))
		for _, e := range entries {
			out = append(out, ScoreView{
				RunID:       e.RunID,
				Mode:        e.Mode,
				Score:       e.Score,
				MapsCleared: e.MapsCleared,
				CreatedAt:   e.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"game": game, "scores": out})
	}
}

func handleDuels(scores ScoreSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game := way.Param(r.Context(), "game")
		results, err := scores.RecentDuels(game, limitParam(r, 20))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		tally, err := scores.DuelTally(game)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		out := make([]DuelView, 0, len(results))
		for _, d := range results {
			out = append(out, DuelView{
				MatchID:   d.MatchID,
				Score1:    d.Score1,
				Score2:    d.Score2,
				Rounds:    d.Rounds,
				Winner:    d.Winner,
				Duration:  d.Duration,
				CreatedAt: d.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"game":  game,
			"duels": out,
			"tally": map[string]int{
				"player1": tally.Player1Wins,
				"player2": tally.Player2Wins,
				"draws":   tally.Draws,
			},
		})
	}
}

func limitParam(r *http.Request, def int) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 {
		return def
	}
	return min(n, 100)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("stopping HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
