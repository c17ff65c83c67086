package game

import (
	"errors"
	"math/rand"
)

type Suit int

type Rank int

// Suit enumeration order is fixed: it is the deterministic tiebreak for
// equal-rank comparisons during the team-formation draw.
const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

type Card struct {
	Suit Suit
	Rank Rank
}

// IsTen reports whether this card is one of the four tens the deal is
// scored on.
func (c Card) IsTen() bool {
	return c.Rank == Ten
}

var rankCodes = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7",
	Eight: "8", Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
}

var suitCodes = map[Suit]string{Hearts: "h", Spades: "s", Diamonds: "d", Clubs: "c"}

var suitNames = map[Suit]string{Hearts: "hearts", Spades: "spades", Diamonds: "diamonds", Clubs: "clubs"}

func (s Suit) String() string {
	return suitNames[s]
}

func (c Card) String() string {
	return rankCodes[c.Rank] + suitCodes[c.Suit]
}

var ErrBadCardCode = errors.New("bad_card_code")

// ParseCard parses the two-character code produced by Card.String, e.g.
// "Th" for the ten of hearts.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, ErrBadCardCode
	}
	var rank Rank
	found := false
	for r, s := range rankCodes {
		if s == code[:1] {
			rank = r
			found = true
			break
		}
	}
	if !found {
		return Card{}, ErrBadCardCode
	}
	for s, c := range suitCodes {
		if c == code[1:] {
			return Card{Suit: s, Rank: rank}, nil
		}
	}
	return Card{}, ErrBadCardCode
}

type Deck struct {
	cards []Card
}

// NewDeck returns the 52 cards in fixed enumeration order: every rank of
// hearts, then spades, diamonds, clubs.
func NewDeck() *Deck {
	cards := make([]Card, 0, 52)
	for s := Hearts; s <= Clubs; s++ {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle permutes the deck uniformly using the supplied source.
func (d *Deck) Shuffle(rnd *rand.Rand) {
	rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Deal() Card {
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c
}

func (d *Deck) Size() int {
	return len(d.cards)
}
