package game

import (
	"errors"
	"testing"
)

// trickPlayState builds a mid-trick position: spades led by seat 3,
// seat 0 to act. Seat 0 holds spades and hearts, seat 1 holds no spades.
func trickPlayState() *MatchState {
	s := newMatchState([4]string{"Asha", "Bina", "Chetan", "Dev"})
	s.Phase = PhaseTrickPlay
	s.CurrentDealer = 2
	s.CurrentTurn = 0
	trump := Suit(Diamonds)
	s.TrumpSuit = &trump
	s.Player(0).Hand = []Card{
		{Suit: Spades, Rank: King},
		{Suit: Spades, Rank: Four},
		{Suit: Hearts, Rank: Nine},
	}
	s.Player(1).Hand = []Card{
		{Suit: Hearts, Rank: Queen},
		{Suit: Clubs, Rank: Seven},
	}
	s.addCardToTrick(Card{Suit: Spades, Rank: Ten}, 3)
	return s
}

func TestValidatePlayWrongPhase(t *testing.T) {
	s := trickPlayState()
	s.Phase = PhaseTrumpSelection
	err := ValidatePlay(s, 0, Card{Suit: Spades, Rank: King})
	if !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase, got %v", err)
	}
}

func TestValidatePlayWrongTurn(t *testing.T) {
	s := trickPlayState()
	err := ValidatePlay(s, 1, Card{Suit: Hearts, Rank: Queen})
	if !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
}

func TestValidatePlayCardNotHeld(t *testing.T) {
	s := trickPlayState()
	err := ValidatePlay(s, 0, Card{Suit: Clubs, Rank: Ace})
	if !errors.Is(err, ErrCardNotHeld) {
		t.Fatalf("expected ErrCardNotHeld, got %v", err)
	}
}

func TestValidatePlayMustFollowSuit(t *testing.T) {
	s := trickPlayState()
	err := ValidatePlay(s, 0, Card{Suit: Hearts, Rank: Nine})
	if !errors.Is(err, ErrMustFollowSuit) {
		t.Fatalf("expected ErrMustFollowSuit, got %v", err)
	}
	if err := ValidatePlay(s, 0, Card{Suit: Spades, Rank: Four}); err != nil {
		t.Fatalf("following suit should be legal, got %v", err)
	}
}

func TestValidatePlayVoidSeatMayPlayAnything(t *testing.T) {
	s := trickPlayState()
	s.CurrentTurn = 1
	if err := ValidatePlay(s, 1, Card{Suit: Clubs, Rank: Seven}); err != nil {
		t.Fatalf("void seat should be unconstrained, got %v", err)
	}
}

func TestValidatePlayNoLeadSuit(t *testing.T) {
	s := trickPlayState()
	s.CurrentTrick = nil
	s.LeadSuit = nil
	if err := ValidatePlay(s, 0, Card{Suit: Hearts, Rank: Nine}); err != nil {
		t.Fatalf("leading any card should be legal, got %v", err)
	}
}
