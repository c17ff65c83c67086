package game

import "fmt"

// Phase is the closed set of match phases. Commands are only accepted in
// the phase that names them.
type Phase string

const (
	PhaseTeamFormation  Phase = "team_formation"
	PhaseDealing        Phase = "dealing"
	PhaseTrumpSelection Phase = "trump_selection"
	PhaseTrickPlay      Phase = "trick_play"
	PhaseDealComplete   Phase = "deal_complete"
)

// CardPlay is one card laid into the current trick, with the seat that
// played it.
type CardPlay struct {
	Card Card
	Seat int
}

// MatchState is the root aggregate: four players, two fixed teams and
// all per-deal trick state. It is mutated only by Engine commands.
type MatchState struct {
	Phase         Phase
	Players       [4]*Player
	Teams         [2]*Team
	CurrentDealer int
	CurrentTurn   int
	TrumpSuit     *Suit
	TrumpCard     *Card
	TrumpRevealed bool
	LeadSuit      *Suit
	CurrentTrick  []CardPlay
	DealsPlayed   int
	TeamScores    [2]int
}

func newMatchState(names [4]string) *MatchState {
	s := &MatchState{
		Phase:         PhaseTeamFormation,
		CurrentDealer: -1,
		CurrentTurn:   -1,
	}
	for seat, name := range names {
		s.Players[seat] = &Player{Seat: seat, Name: name, TeamID: seat % 2}
	}
	s.Teams[0] = &Team{ID: 0, Seats: [2]int{0, 2}}
	s.Teams[1] = &Team{ID: 1, Seats: [2]int{1, 3}}
	return s
}

// Player looks up a seat. An out-of-range seat is a caller programming
// error, not a rejectable command.
func (s *MatchState) Player(seat int) *Player {
	if seat < 0 || seat > 3 {
		panic(fmt.Sprintf("game: no such seat %d", seat))
	}
	return s.Players[seat]
}

func (s *MatchState) Team(id int) *Team {
	if id != 0 && id != 1 {
		panic(fmt.Sprintf("game: no such team %d", id))
	}
	return s.Teams[id]
}

func (s *MatchState) TeamForSeat(seat int) *Team {
	return s.Team(s.Player(seat).TeamID)
}

func (s *MatchState) addCardToTrick(card Card, seat int) {
	s.CurrentTrick = append(s.CurrentTrick, CardPlay{Card: card, Seat: seat})
	if len(s.CurrentTrick) == 1 {
		lead := card.Suit
		s.LeadSuit = &lead
	}
}

// trickWinnerSeat resolves a full trick. Trump priority applies only
// once the trump has been revealed; before that the highest card of the
// lead suit wins even if a card of the hidden trump suit was sloughed.
func (s *MatchState) trickWinnerSeat() int {
	if len(s.CurrentTrick) != 4 {
		panic(fmt.Sprintf("game: resolving trick with %d plays", len(s.CurrentTrick)))
	}
	lead := s.CurrentTrick[0].Card.Suit
	winning := s.CurrentTrick[0]
	trumped := false
	if s.TrumpRevealed && s.TrumpSuit != nil {
		trump := *s.TrumpSuit
		for _, play := range s.CurrentTrick {
			if play.Card.Suit != trump {
				continue
			}
			if !trumped || play.Card.Rank > winning.Card.Rank {
				winning = play
				trumped = true
			}
		}
	}
	if !trumped {
		for _, play := range s.CurrentTrick[1:] {
			if play.Card.Suit == lead && play.Card.Rank > winning.Card.Rank {
				winning = play
			}
		}
	}
	return winning.Seat
}

// resetForNewDeal clears all deal-scoped state while keeping teams,
// dealer and match scores, and counts the new deal.
func (s *MatchState) resetForNewDeal() {
	for _, p := range s.Players {
		p.ClearHand()
	}
	for _, t := range s.Teams {
		t.ResetDeal()
	}
	s.TrumpSuit = nil
	s.TrumpCard = nil
	s.TrumpRevealed = false
	s.LeadSuit = nil
	s.CurrentTrick = s.CurrentTrick[:0]
	s.DealsPlayed++
}

// PlayerSnapshot is a copied seat view inside a Snapshot.
type PlayerSnapshot struct {
	Seat   int
	Name   string
	TeamID int
	Hand   []Card
}

type TeamSnapshot struct {
	ID            int
	Seats         [2]int
	TensCollected []Card
	TricksWon     int
}

// Snapshot is a deep copy of the match state. Hosts diff and render it
// freely; mutating it never touches the live state.
type Snapshot struct {
	Phase         Phase
	Players       [4]PlayerSnapshot
	Teams         [2]TeamSnapshot
	CurrentDealer int
	CurrentTurn   int
	TrumpSuit     *Suit
	TrumpCard     *Card
	TrumpRevealed bool
	LeadSuit      *Suit
	CurrentTrick  []CardPlay
	DealsPlayed   int
	TeamScores    [2]int
}

func (s *MatchState) snapshot() Snapshot {
	snap := Snapshot{
		Phase:         s.Phase,
		CurrentDealer: s.CurrentDealer,
		CurrentTurn:   s.CurrentTurn,
		TrumpRevealed: s.TrumpRevealed,
		CurrentTrick:  append([]CardPlay(nil), s.CurrentTrick...),
		DealsPlayed:   s.DealsPlayed,
		TeamScores:    s.TeamScores,
	}
	for i, p := range s.Players {
		snap.Players[i] = PlayerSnapshot{
			Seat:   p.Seat,
			Name:   p.Name,
			TeamID: p.TeamID,
			Hand:   append([]Card(nil), p.Hand...),
		}
	}
	for i, t := range s.Teams {
		snap.Teams[i] = TeamSnapshot{
			ID:            t.ID,
			Seats:         t.Seats,
			TensCollected: append([]Card(nil), t.TensCollected...),
			TricksWon:     t.TricksWon,
		}
	}
	if s.TrumpSuit != nil {
		v := *s.TrumpSuit
		snap.TrumpSuit = &v
	}
	if s.TrumpCard != nil {
		v := *s.TrumpCard
		snap.TrumpCard = &v
	}
	if s.LeadSuit != nil {
		v := *s.LeadSuit
		snap.LeadSuit = &v
	}
	return snap
}
