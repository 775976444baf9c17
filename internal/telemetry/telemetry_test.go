package telemetry

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bomber/internal/storage"
)

func TestMetricsCount(t *testing.T) {
	m := NewMetrics()

	m.GameStarted("single")
	m.GameStarted("single")
	m.GameStarted("duel")
	m.GameFinished("duel")
	m.MapsCleared(2)
	m.EnemiesKilled(5)
	m.BombsPlaced(7)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gamesStarted.WithLabelValues("single")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesStarted.WithLabelValues("duel")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.gamesFinished.WithLabelValues("duel")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mapsCleared))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.enemiesKilled))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.bombsPlaced))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.activeSessions))
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics()
	m.BombsPlaced(3)

	srv := httptest.NewServer(NewRouter(m, failingScores{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "bomber_bombs_placed_total 3")
}

func TestScoresEndpoint(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	for _, s := range []int{100, 300, 200} {
		_, err := store.SaveScore("bomber", s)
		require.NoError(t, err)
	}

	srv := httptest.NewServer(NewRouter(NewMetrics(), store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/scores/bomber?limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body struct {
		Game   string      `json:"game"`
		Scores []ScoreView `json:"scores"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "bomber", body.Game)
	require.Len(t, body.Scores, 2)
	assert.Equal(t, 300, body.Scores[0].Score)
	assert.Equal(t, 200, body.Scores[1].Score)
	assert.NotEmpty(t, body.Scores[0].RunID)
}

func TestDuelsEndpoint(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	_, err = store.SaveDuelResult(storage.DuelResult{GameID: "bomber_duel", Score1: 2, Score2: 1, Rounds: 3, Winner: 1})
	require.NoError(t, err)

	srv := httptest.NewServer(NewRouter(NewMetrics(), store))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/duels/bomber_duel")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Duels []DuelView     `json:"duels"`
		Tally map[string]int `json:"tally"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Duels, 1)
	assert.Equal(t, 1, body.Duels[0].Winner)
	assert.Equal(t, 1, body.Tally["player1"])
	assert.Equal(t, 0, body.Tally["draws"])
}

func TestScoresEndpointError(t *testing.T) {
	srv := httptest.NewServer(NewRouter(NewMetrics(), failingScores{}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/scores/bomber")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp2, err := http.Post(srv.URL+"/scores/bomber", "text/plain", nil)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

type failingScores struct{}

var errStore = errors.New("store offline")

func (failingScores) TopScores(string, int) ([]storage.ScoreEntry, error) { return nil, errStore }

func (failingScores) RecentDuels(string, int) ([]storage.DuelResult, error) { return nil, errStore }

func (failingScores) DuelTally(string) (storage.DuelTally, error) {
	return storage.DuelTally{}, errStore
}
