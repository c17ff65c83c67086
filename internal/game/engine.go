package game

import (
	"errors"
	"math/rand"
	"time"
)

var ErrBadDraw = errors.New("bad_draw")

// Engine owns one match and applies commands one at a time. Every
// command either fully applies, including derived effects (trump
// reveal, trick resolution, deal completion, dealer rotation), or is
// rejected with no state change.
//
// The engine does no I/O and starts no goroutines; a host that serves
// multiple matches gives each its own Engine.
type Engine struct {
	state *MatchState
	rnd   *rand.Rand
}

// NewEngine initializes a match: four named players, the fixed seat
// partnerships (0&2 vs 1&3) and zeroed match scores. A nil rnd falls
// back to a time-seeded source; tests inject a fixed seed.
func NewEngine(names [4]string, rnd *rand.Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{state: newMatchState(names), rnd: rnd}
}

// Snapshot returns an immutable deep copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return e.state.snapshot()
}

// DrawForTeams shuffles a fresh deck and draws one card per seat.
func (e *Engine) DrawForTeams() (map[int]Card, error) {
	if e.state.Phase != PhaseTeamFormation {
		return nil, ErrWrongPhase
	}
	deck := NewDeck()
	deck.Shuffle(e.rnd)
	draw := make(map[int]Card, 4)
	for seat := 0; seat < 4; seat++ {
		draw[seat] = deck.Deal()
	}
	return draw, nil
}

// FormTeams ranks the drawn cards and fixes the match: the two highest
// drawers are announced as team A, the two lowest as team B, and the
// lowest drawer becomes the initial dealer. Rosters come back in
// descending draw order. Equal ranks cannot occur within one deck, but
// the suit tiebreak keeps the ordering total anyway.
func (e *Engine) FormTeams(draw map[int]Card) (rosters [2][2]int, dealer int, err error) {
	if e.state.Phase != PhaseTeamFormation {
		return rosters, 0, ErrWrongPhase
	}
	if len(draw) != 4 {
		return rosters, 0, ErrBadDraw
	}
	seats := make([]int, 0, 4)
	for seat := 0; seat < 4; seat++ {
		if _, ok := draw[seat]; !ok {
			return rosters, 0, ErrBadDraw
		}
		seats = append(seats, seat)
	}
	weight := func(c Card) int { return int(c.Rank)*100 + int(c.Suit) }
	for i := 0; i < len(seats); i++ {
		for j := i + 1; j < len(seats); j++ {
			if weight(draw[seats[j]]) > weight(draw[seats[i]]) {
				seats[i], seats[j] = seats[j], seats[i]
			}
		}
	}
	rosters = [2][2]int{{seats[0], seats[1]}, {seats[2], seats[3]}}
	dealer = seats[3]
	e.state.CurrentDealer = dealer
	e.state.Phase = PhaseDealing
	return rosters, dealer, nil
}

// DealCards shuffles a fresh deck and deals 5, then 4, then 4 cards
// round-robin, starting with the seat to the dealer's right. Afterwards
// that seat is on turn to select the trump.
func (e *Engine) DealCards() error {
	if e.state.Phase != PhaseDealing {
		return ErrWrongPhase
	}
	e.dealOut()
	e.state.Phase = PhaseTrumpSelection
	e.state.CurrentTurn = (e.state.CurrentDealer + 1) % 4
	return nil
}

func (e *Engine) dealOut() {
	s := e.state
	for _, p := range s.Players {
		p.ClearHand()
	}
	deck := NewDeck()
	deck.Shuffle(e.rnd)
	first := (s.CurrentDealer + 1) % 4
	for _, roundSize := range []int{5, 4, 4} {
		for i := 0; i < roundSize; i++ {
			for offset := 0; offset < 4; offset++ {
				s.Player((first + offset) % 4).ReceiveCards(deck.Deal())
			}
		}
	}
}

// SelectTrump sets the face-down trump indicator. The card leaves the
// selector's hand and stays with the engine until the reveal; the
// selector then leads the first trick.
func (e *Engine) SelectTrump(seat int, card Card) error {
	s := e.state
	if s.Phase != PhaseTrumpSelection {
		return ErrWrongPhase
	}
	if seat != (s.CurrentDealer+1)%4 {
		return ErrNotTrumpPicker
	}
	p := s.Player(seat)
	if !p.HoldsCard(card) {
		return ErrCardNotHeld
	}
	p.RemoveCard(card)
	trump := card
	suit := card.Suit
	s.TrumpCard = &trump
	s.TrumpSuit = &suit
	s.TrumpRevealed = false
	s.Phase = PhaseTrickPlay
	s.CurrentTurn = seat
	return nil
}

// RevealTrump turns the trump face up and returns the set-aside card to
// its owner's hand. The reveal is one-way and idempotent; it normally
// fires implicitly from PlayCard on the first lead-suit void.
func (e *Engine) RevealTrump() {
	s := e.state
	if s.TrumpRevealed || s.TrumpCard == nil {
		return
	}
	owner := s.Player((s.CurrentDealer + 1) % 4)
	owner.ReceiveCards(*s.TrumpCard)
	s.TrumpRevealed = true
}

// PlayResult reports the derived effects of one accepted play.
type PlayResult struct {
	TrumpRevealed bool
	TrickResolved bool
	TrickWinner   int
	TrickCards    []CardPlay
	DealComplete  bool
	Outcome       *DealOutcome
}

// PlayCard applies one play for the seat on turn. If the seat is void in
// the lead suit and the trump is still hidden, the reveal fires before
// the card is committed; the chosen card stays legal since a void seat
// is unconstrained by suit.
func (e *Engine) PlayCard(seat int, card Card) (PlayResult, error) {
	s := e.state
	if err := ValidatePlay(s, seat, card); err != nil {
		return PlayResult{}, err
	}

	var res PlayResult
	p := s.Player(seat)
	if s.LeadSuit != nil && !p.HasSuit(*s.LeadSuit) && !s.TrumpRevealed {
		e.RevealTrump()
		res.TrumpRevealed = true
	}

	p.RemoveCard(card)
	s.addCardToTrick(card, seat)

	if len(s.CurrentTrick) < 4 {
		s.CurrentTurn = (seat + 1) % 4
		return res, nil
	}

	winner := s.trickWinnerSeat()
	res.TrickResolved = true
	res.TrickWinner = winner
	res.TrickCards = append([]CardPlay(nil), s.CurrentTrick...)

	cards := make([]Card, 0, 4)
	for _, play := range s.CurrentTrick {
		cards = append(cards, play.Card)
	}
	s.TeamForSeat(winner).CollectTrick(cards)
	s.CurrentTrick = s.CurrentTrick[:0]
	s.LeadSuit = nil
	s.CurrentTurn = winner

	if len(s.Player(0).Hand) == 0 {
		res.DealComplete = true
		res.Outcome = e.completeDeal()
	}
	return res, nil
}

// completeDeal scores the finished deal and rotates the dealer.
func (e *Engine) completeDeal() *DealOutcome {
	s := e.state
	a, b := s.Team(0), s.Team(1)
	winningTeam := decideDealWinner(a, b)
	s.TeamScores[winningTeam]++

	winner := s.Team(winningTeam)
	whitewash := winner.HasWhitewash()
	dealerTeamWon := s.Player(s.CurrentDealer).TeamID == winningTeam
	next := nextDealer(s.CurrentDealer, dealerTeamWon, whitewash)
	s.CurrentDealer = next
	s.Phase = PhaseDealComplete

	return &DealOutcome{
		WinningTeam: winningTeam,
		Mendikot:    winner.HasMendikot(),
		Whitewash:   whitewash,
		Tens:        [2]int{len(a.TensCollected), len(b.TensCollected)},
		Tricks:      [2]int{a.TricksWon, b.TricksWon},
		NextDealer:  next,
	}
}

// StartNewDeal resets deal-scoped state, re-deals and hands the trump
// pick to the new dealer's right. Match scores and team identities
// carry over.
func (e *Engine) StartNewDeal() error {
	s := e.state
	if s.Phase != PhaseDealComplete {
		return ErrWrongPhase
	}
	s.resetForNewDeal()
	e.dealOut()
	s.Phase = PhaseTrumpSelection
	s.CurrentTurn = (s.CurrentDealer + 1) % 4
	return nil
}
