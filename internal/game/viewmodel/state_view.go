package viewmodel

import "mendikot/internal/game"

type TrickCardView struct {
	Seat int    `json:"seat"`
	Card string `json:"card"`
}

type TeamView struct {
	ID        int      `json:"id"`
	Seats     [2]int   `json:"seats"`
	TricksWon int      `json:"tricks_won"`
	Tens      []string `json:"tens"`
	Score     int      `json:"score"`
}

type SeatSummaryView struct {
	Seat      int    `json:"seat"`
	Name      string `json:"name"`
	TeamID    int    `json:"team_id"`
	HandCount int    `json:"hand_count"`
}

// PublicStateView is the spectator-safe snapshot: hands reduced to
// counts, trump suit hidden until revealed.
type PublicStateView struct {
	Phase         string          `json:"phase"`
	CurrentDealer int             `json:"current_dealer"`
	CurrentTurn   int             `json:"current_turn"`
	TrumpSuit     string          `json:"trump_suit,omitempty"`
	TrumpRevealed bool            `json:"trump_revealed"`
	LeadSuit      string          `json:"lead_suit,omitempty"`
	CurrentTrick  []TrickCardView `json:"current_trick"`
	DealsPlayed   int             `json:"deals_played"`
	Seats         []SeatSummaryView `json:"seats"`
	Teams         []TeamView      `json:"teams"`
}

// SeatStateView is what one seat is allowed to see: the public state
// plus its own hand and current legal-play set.
type SeatStateView struct {
	PublicStateView
	MySeat     int      `json:"my_seat"`
	MyHand     []string `json:"my_hand"`
	MyPlayable []string `json:"my_playable"`
}

func BuildPublicState(snap game.Snapshot) PublicStateView {
	trick := make([]TrickCardView, 0, len(snap.CurrentTrick))
	for _, play := range snap.CurrentTrick {
		trick = append(trick, TrickCardView{Seat: play.Seat, Card: play.Card.String()})
	}
	seats := make([]SeatSummaryView, 0, len(snap.Players))
	for _, p := range snap.Players {
		seats = append(seats, SeatSummaryView{
			Seat:      p.Seat,
			Name:      p.Name,
			TeamID:    p.TeamID,
			HandCount: len(p.Hand),
		})
	}
	teams := make([]TeamView, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		tens := make([]string, 0, len(t.TensCollected))
		for _, c := range t.TensCollected {
			tens = append(tens, c.String())
		}
		teams = append(teams, TeamView{
			ID:        t.ID,
			Seats:     t.Seats,
			TricksWon: t.TricksWon,
			Tens:      tens,
			Score:     snap.TeamScores[t.ID],
		})
	}
	out := PublicStateView{
		Phase:         string(snap.Phase),
		CurrentDealer: snap.CurrentDealer,
		CurrentTurn:   snap.CurrentTurn,
		TrumpRevealed: snap.TrumpRevealed,
		CurrentTrick:  trick,
		DealsPlayed:   snap.DealsPlayed,
		Seats:         seats,
		Teams:         teams,
	}
	// Trump suit is public knowledge only once revealed.
	if snap.TrumpRevealed && snap.TrumpSuit != nil {
		out.TrumpSuit = snap.TrumpSuit.String()
	}
	if snap.LeadSuit != nil {
		out.LeadSuit = snap.LeadSuit.String()
	}
	return out
}

func BuildSeatState(snap game.Snapshot, seat int) SeatStateView {
	me := snap.Players[seat]
	hand := make([]string, 0, len(me.Hand))
	for _, c := range me.Hand {
		hand = append(hand, c.String())
	}
	out := SeatStateView{
		PublicStateView: BuildPublicState(snap),
		MySeat:          seat,
		MyHand:          hand,
		MyPlayable:      []string{},
	}
	// The picker set the trump aside from their own hand; hiding it from
	// them would be theater.
	if seat == (snap.CurrentDealer+1)%4 && snap.TrumpSuit != nil {
		out.TrumpSuit = snap.TrumpSuit.String()
	}
	if snap.Phase == game.PhaseTrickPlay && snap.CurrentTurn == seat {
		p := game.Player{Seat: seat, Hand: me.Hand}
		for _, c := range p.PlayableCards(snap.LeadSuit) {
			out.MyPlayable = append(out.MyPlayable, c.String())
		}
	}
	return out
}
