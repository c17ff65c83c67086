package game

// DealOutcome reports a finished deal: who won, how, and who deals next.
type DealOutcome struct {
	WinningTeam int    `json:"winning_team"`
	Mendikot    bool   `json:"mendikot"`
	Whitewash   bool   `json:"whitewash"`
	Tens        [2]int `json:"tens"`
	Tricks      [2]int `json:"tricks"`
	NextDealer  int    `json:"next_dealer"`
}

// decideDealWinner is the scoring ladder, preserved in its exact
// fallthrough order: Mendikot/Whitewash, three tens, the 2-2 seven-trick
// tiebreak, strictly more tens for team 0, and a final default to team 1.
func decideDealWinner(a, b *Team) int {
	switch {
	case a.HasMendikot() || a.HasWhitewash():
		return 0
	case b.HasMendikot() || b.HasWhitewash():
		return 1
	case len(a.TensCollected) == 3:
		return 0
	case len(b.TensCollected) == 3:
		return 1
	case len(a.TensCollected) == 2 && len(b.TensCollected) == 2:
		if a.TricksWon >= 7 {
			return 0
		}
		return 1
	case len(a.TensCollected) > len(b.TensCollected):
		return 0
	default:
		return 1
	}
}

// nextDealer rotates the deal. A winning dealer passes the deal
// anticlockwise; a losing dealer keeps it, unless the loss was a
// whitewash, which hands it to the dealer's partner.
func nextDealer(dealer int, dealerTeamWon, whitewash bool) int {
	switch {
	case !dealerTeamWon && whitewash:
		return (dealer + 2) % 4
	case !dealerTeamWon:
		return dealer
	default:
		return (dealer + 1) % 4
	}
}
