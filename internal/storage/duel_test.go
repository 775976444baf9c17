package storage

import "testing"

func TestDuelResults(t *testing.T) {
	store := openTestStore(t)

	results := []DuelResult{
		{GameID: "bomber_duel", Score1: 2, Score2: 1, Rounds: 3, Winner: 1, Duration: 95},
		{GameID: "bomber_duel", Score1: 0, Score2: 3, Rounds: 3, Winner: 2, Duration: 60},
		{GameID: "bomber_duel", Score1: 1, Score2: 1, Rounds: 2, Winner: 0, Duration: 40},
	}

	var ids []string
	for _, r := range results {
		id, err := store.SaveDuelResult(r)
		if err != nil {
			t.Fatalf("SaveDuelResult() failed: %v", err)
		}
		if id == "" {
			t.Fatal("SaveDuelResult() returned an empty match id")
		}
		ids = append(ids, id)
	}

	got, err := store.DuelByMatchID(ids[0])
	if err != nil {
		t.Fatalf("DuelByMatchID() failed: %v", err)
	}
	if got == nil || got.Score1 != 2 || got.Winner != 1 || got.Duration != 95 {
		t.Errorf("DuelByMatchID() = %+v", got)
	}

	missing, err := store.DuelByMatchID("nope")
	if err != nil || missing != nil {
		t.Errorf("DuelByMatchID(nope) = %v, %v; expected nil, nil", missing, err)
	}

	recent, err := store.RecentDuels("bomber_duel", 2)
	if err != nil {
		t.Fatalf("RecentDuels() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent duels, got %d", len(recent))
	}
	// Newest first
	if recent[0].MatchID != ids[2] {
		t.Errorf("recent[0] = %s, expected %s", recent[0].MatchID, ids[2])
	}

	tally, err := store.DuelTally("bomber_duel")
	if err != nil {
		t.Fatalf("DuelTally() failed: %v", err)
	}
	if tally != (DuelTally{Player1Wins: 1, Player2Wins: 1, Draws: 1}) {
		t.Errorf("DuelTally() = %+v", tally)
	}
}

func TestDuelMatchIDIsUnique(t *testing.T) {
	store := openTestStore(t)

	r := DuelResult{MatchID: "fixed", GameID: "bomber_duel"}
	if _, err := store.SaveDuelResult(r); err != nil {
		t.Fatalf("SaveDuelResult() failed: %v", err)
	}
	if _, err := store.SaveDuelResult(r); err == nil {
		t.Error("expected duplicate match id to fail")
	}
}
