package gateway

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"mendikot/internal/game"
)

func newTestCoordinator(t *testing.T, seed int64) (*Coordinator, string) {
	t.Helper()
	c := NewCoordinator(nil, 64)
	id, _, err := c.CreateMatch(context.Background(), [4]string{"Asha", "Bala", "Chitra", "Dev"}, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("create match: %v", err)
	}
	return c, id
}

func apply(t *testing.T, c *Coordinator, id string, cmd Command) CommandResult {
	t.Helper()
	res, err := c.Apply(context.Background(), id, cmd)
	if err != nil {
		t.Fatalf("apply %s: %v", cmd.Type, err)
	}
	return res
}

func TestApplyUnknownMatch(t *testing.T) {
	c, _ := newTestCoordinator(t, 1)
	if _, err := c.Apply(context.Background(), "nope", Command{Type: "deal_cards"}); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	c, id := newTestCoordinator(t, 1)
	if _, err := c.Apply(context.Background(), id, Command{Type: "fold"}); !errors.Is(err, ErrBadCommand) {
		t.Fatalf("expected ErrBadCommand, got %v", err)
	}
}

func TestFormTeamsRequiresDraw(t *testing.T) {
	c, id := newTestCoordinator(t, 1)
	if _, err := c.Apply(context.Background(), id, Command{Type: "form_teams"}); !errors.Is(err, ErrBadCommand) {
		t.Fatalf("expected ErrBadCommand without a draw, got %v", err)
	}
}

func TestSeatStateRejectsBadSeat(t *testing.T) {
	c, id := newTestCoordinator(t, 1)
	if _, err := c.SeatState(id, 4); !errors.Is(err, ErrBadSeat) {
		t.Fatalf("expected ErrBadSeat, got %v", err)
	}
}

func TestDrawThenFormTeams(t *testing.T) {
	c, id := newTestCoordinator(t, 7)

	res := apply(t, c, id, Command{Type: "draw_for_teams"})
	if len(res.Draw) != 4 {
		t.Fatalf("expected 4 drawn cards, got %+v", res.Draw)
	}
	if res.State.Phase != string(game.PhaseTeamFormation) {
		t.Fatalf("draw must not advance the phase, got %s", res.State.Phase)
	}

	res = apply(t, c, id, Command{Type: "form_teams"})
	if res.Rosters == nil || res.Dealer == nil {
		t.Fatalf("expected rosters and dealer, got %+v", res)
	}
	if res.State.Phase != string(game.PhaseDealing) {
		t.Fatalf("expected dealing phase, got %s", res.State.Phase)
	}
	if res.State.CurrentDealer != *res.Dealer {
		t.Fatalf("dealer mismatch: %d vs state %d", *res.Dealer, res.State.CurrentDealer)
	}
}

func TestEngineRejectionPassesThrough(t *testing.T) {
	c, id := newTestCoordinator(t, 7)
	if _, err := c.Apply(context.Background(), id, Command{Type: "deal_cards"}); !errors.Is(err, game.ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

// playDealToCompletion drives a whole deal through the command surface,
// always playing the first card the seat view reports as legal.
func playDealToCompletion(t *testing.T, c *Coordinator, id string) *game.DealOutcome {
	t.Helper()
	apply(t, c, id, Command{Type: "draw_for_teams"})
	apply(t, c, id, Command{Type: "form_teams"})
	res := apply(t, c, id, Command{Type: "deal_cards"})

	picker := (res.State.CurrentDealer + 1) % 4
	pickerView, err := c.SeatState(id, picker)
	if err != nil {
		t.Fatalf("seat state: %v", err)
	}
	apply(t, c, id, Command{Type: "select_trump", Seat: picker, Card: pickerView.MyHand[0]})

	for plays := 0; plays < 52; plays++ {
		view, err := c.PublicState(id)
		if err != nil {
			t.Fatalf("public state: %v", err)
		}
		if view.Phase == string(game.PhaseDealComplete) {
			t.Fatalf("deal completed without reporting an outcome")
		}
		seat := view.CurrentTurn
		seatView, err := c.SeatState(id, seat)
		if err != nil {
			t.Fatalf("seat state: %v", err)
		}
		if len(seatView.MyPlayable) == 0 {
			t.Fatalf("seat %d on turn has no playable cards", seat)
		}
		res := apply(t, c, id, Command{Type: "play_card", Seat: seat, Card: seatView.MyPlayable[0]})
		if res.Outcome != nil {
			return res.Outcome
		}
	}
	t.Fatal("deal never completed")
	return nil
}

func TestFullDealThroughCommands(t *testing.T) {
	c, id := newTestCoordinator(t, 11)
	out := playDealToCompletion(t, c, id)

	if out.Tricks[0]+out.Tricks[1] != 13 {
		t.Fatalf("expected 13 tricks total, got %+v", out.Tricks)
	}
	if out.Tens[0]+out.Tens[1] != 4 {
		t.Fatalf("expected 4 tens total, got %+v", out.Tens)
	}

	view, err := c.PublicState(id)
	if err != nil {
		t.Fatalf("public state: %v", err)
	}
	if view.Phase != string(game.PhaseDealComplete) {
		t.Fatalf("expected deal_complete, got %s", view.Phase)
	}
	if view.Teams[out.WinningTeam].Score != 1 {
		t.Fatalf("expected winning team score 1, got %+v", view.Teams)
	}

	events, err := c.Events(id)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	var sawCompleted bool
	for _, ev := range events.ReplayAfter("") {
		if ev.Event == "deal_completed" {
			sawCompleted = true
		}
	}
	if !sawCompleted {
		t.Fatal("expected a deal_completed event on the stream")
	}

	res := apply(t, c, id, Command{Type: "start_new_deal"})
	if res.State.Phase != string(game.PhaseTrumpSelection) {
		t.Fatalf("expected trump_selection after new deal, got %s", res.State.Phase)
	}
	if res.State.DealsPlayed != 1 {
		t.Fatalf("expected deals_played 1, got %d", res.State.DealsPlayed)
	}
}

func TestCloseMatchRemovesIt(t *testing.T) {
	c, id := newTestCoordinator(t, 3)
	if err := c.CloseMatch(context.Background(), id); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := c.PublicState(id); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound after close, got %v", err)
	}
	if err := c.CloseMatch(context.Background(), id); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected double close to fail, got %v", err)
	}
}
