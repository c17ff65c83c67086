package game

// Player is one of the four seats. Seats run anticlockwise, so seat
// (n+1)%4 acts after seat n and seats n and (n+2)%4 are partners.
// The hand is owned by the engine: hosts only ever see copies.
type Player struct {
	Seat   int
	Name   string
	TeamID int
	Hand   []Card
}

func (p *Player) HasSuit(s Suit) bool {
	for _, c := range p.Hand {
		if c.Suit == s {
			return true
		}
	}
	return false
}

func (p *Player) HoldsCard(card Card) bool {
	for _, c := range p.Hand {
		if c == card {
			return true
		}
	}
	return false
}

// PlayableCards returns the legal-play set: the whole hand when there is
// no lead suit or the player is void in it, otherwise only lead-suit
// cards.
func (p *Player) PlayableCards(leadSuit *Suit) []Card {
	if leadSuit == nil {
		return append([]Card(nil), p.Hand...)
	}
	ofLead := make([]Card, 0, len(p.Hand))
	for _, c := range p.Hand {
		if c.Suit == *leadSuit {
			ofLead = append(ofLead, c)
		}
	}
	if len(ofLead) > 0 {
		return ofLead
	}
	return append([]Card(nil), p.Hand...)
}

// RemoveCard takes the card out of the hand, reporting whether it was
// held.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) ReceiveCards(cards ...Card) {
	p.Hand = append(p.Hand, cards...)
}

func (p *Player) ClearHand() {
	p.Hand = p.Hand[:0]
}
