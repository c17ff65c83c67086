package game

import "testing"

// Spec case: spades led, no trump in play. Ace of spades wins.
func TestTrickWinnerHighestOfLeadSuit(t *testing.T) {
	s := newMatchState([4]string{"a", "b", "c", "d"})
	trump := Suit(Diamonds)
	s.TrumpSuit = &trump
	s.addCardToTrick(Card{Suit: Spades, Rank: Ten}, 0)
	s.addCardToTrick(Card{Suit: Spades, Rank: King}, 1)
	s.addCardToTrick(Card{Suit: Diamonds, Rank: Two}, 2)
	s.addCardToTrick(Card{Suit: Spades, Rank: Ace}, 3)

	if w := s.trickWinnerSeat(); w != 3 {
		t.Fatalf("expected seat 3 (As) with trump hidden, got %d", w)
	}

	// Same trick with diamonds revealed: the lone 2d beats every spade.
	s.TrumpRevealed = true
	if w := s.trickWinnerSeat(); w != 2 {
		t.Fatalf("expected seat 2 (2d) with trump revealed, got %d", w)
	}
}

func TestTrickWinnerHighestTrumpAmongSeveral(t *testing.T) {
	s := newMatchState([4]string{"a", "b", "c", "d"})
	trump := Suit(Clubs)
	s.TrumpSuit = &trump
	s.TrumpRevealed = true
	s.addCardToTrick(Card{Suit: Hearts, Rank: Ace}, 1)
	s.addCardToTrick(Card{Suit: Clubs, Rank: Three}, 2)
	s.addCardToTrick(Card{Suit: Clubs, Rank: Jack}, 3)
	s.addCardToTrick(Card{Suit: Hearts, Rank: King}, 0)

	if w := s.trickWinnerSeat(); w != 3 {
		t.Fatalf("expected seat 3 (Jc), got %d", w)
	}
}

func TestTrickWinnerOffSuitNeverWins(t *testing.T) {
	s := newMatchState([4]string{"a", "b", "c", "d"})
	trump := Suit(Spades)
	s.TrumpSuit = &trump
	s.addCardToTrick(Card{Suit: Diamonds, Rank: Three}, 2)
	s.addCardToTrick(Card{Suit: Hearts, Rank: Ace}, 3)
	s.addCardToTrick(Card{Suit: Clubs, Rank: Ace}, 0)
	s.addCardToTrick(Card{Suit: Diamonds, Rank: Two}, 1)

	if w := s.trickWinnerSeat(); w != 2 {
		t.Fatalf("expected the led 3d to win, got seat %d", w)
	}
}

func TestResolveShortTrickPanics(t *testing.T) {
	s := newMatchState([4]string{"a", "b", "c", "d"})
	s.addCardToTrick(Card{Suit: Hearts, Rank: Two}, 0)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic resolving a 1-card trick")
		}
	}()
	s.trickWinnerSeat()
}

func TestSnapshotIsADeepCopy(t *testing.T) {
	s := newMatchState([4]string{"a", "b", "c", "d"})
	s.Player(0).Hand = []Card{{Suit: Hearts, Rank: Ace}}
	lead := Suit(Hearts)
	s.LeadSuit = &lead

	snap := s.snapshot()
	snap.Players[0].Hand[0] = Card{Suit: Clubs, Rank: Two}
	*snap.LeadSuit = Clubs

	if s.Player(0).Hand[0] != (Card{Suit: Hearts, Rank: Ace}) {
		t.Fatal("mutating snapshot hand leaked into live state")
	}
	if *s.LeadSuit != Hearts {
		t.Fatal("mutating snapshot lead suit leaked into live state")
	}
}

func TestLeadSuitSetOnFirstCardOnly(t *testing.T) {
	s := newMatchState([4]string{"a", "b", "c", "d"})
	s.addCardToTrick(Card{Suit: Clubs, Rank: Nine}, 0)
	if s.LeadSuit == nil || *s.LeadSuit != Clubs {
		t.Fatal("lead suit should be clubs after first card")
	}
	s.addCardToTrick(Card{Suit: Hearts, Rank: Nine}, 1)
	if *s.LeadSuit != Clubs {
		t.Fatal("lead suit changed mid-trick")
	}
}
