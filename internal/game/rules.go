package game

import "errors"

// Rejected commands. These leave the state untouched; the host re-prompts.
var (
	ErrWrongPhase     = errors.New("wrong_phase")
	ErrNotYourTurn    = errors.New("not_your_turn")
	ErrCardNotHeld    = errors.New("card_not_held")
	ErrMustFollowSuit = errors.New("must_follow_suit")
	ErrNotTrumpPicker = errors.New("not_trump_picker")
)

// ValidatePlay checks a play_card command against the current state
// without mutating anything. A nil return means the card is in the
// seat's legal-play set and it is that seat's turn.
func ValidatePlay(s *MatchState, seat int, card Card) error {
	if s.Phase != PhaseTrickPlay {
		return ErrWrongPhase
	}
	if seat != s.CurrentTurn {
		return ErrNotYourTurn
	}
	p := s.Player(seat)
	if !p.HoldsCard(card) {
		return ErrCardNotHeld
	}
	if s.LeadSuit != nil && card.Suit != *s.LeadSuit && p.HasSuit(*s.LeadSuit) {
		return ErrMustFollowSuit
	}
	return nil
}
