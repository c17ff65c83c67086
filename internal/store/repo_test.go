package store

import (
	"context"
	"os"
	"testing"
)

// Integration tests need a real database; they skip unless
// TEST_POSTGRES_DSN points at one with schema.sql applied.
func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	s, err := New(dsn)
	if err != nil {
		t.Fatalf("store init: %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("db ping: %v", err)
	}
	return s
}

func TestMatchLifecycle(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.CreateMatch(ctx, [4]string{"Asha", "Bina", "Chetan", "Dev"})
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	m, err := s.GetMatch(ctx, id)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.Status != "active" || m.DealsPlayed != 0 {
		t.Fatalf("fresh match status=%s deals=%d", m.Status, m.DealsPlayed)
	}

	_, err = s.RecordDealResult(ctx, DealResult{
		MatchID: id, DealNo: 1, WinningTeam: 1,
		TensTeamA: 1, TensTeamB: 3, TricksTeamA: 6, TricksTeamB: 7,
		NextDealer: 2,
	})
	if err != nil {
		t.Fatalf("record deal: %v", err)
	}
	m, err = s.GetMatch(ctx, id)
	if err != nil {
		t.Fatalf("get match: %v", err)
	}
	if m.TeamBScore != 1 || m.DealsPlayed != 1 {
		t.Fatalf("match not updated: b=%d deals=%d", m.TeamBScore, m.DealsPlayed)
	}

	results, err := s.ListDealResults(ctx, id)
	if err != nil {
		t.Fatalf("list deals: %v", err)
	}
	if len(results) != 1 || results[0].WinningTeam != 1 {
		t.Fatalf("unexpected results %+v", results)
	}

	if err := s.FinishMatch(ctx, id); err != nil {
		t.Fatalf("finish match: %v", err)
	}
}

func TestGetMatchNotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.GetMatch(context.Background(), NewID()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
