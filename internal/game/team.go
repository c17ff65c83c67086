package game

// Team pairs the two opposite seats. Tens and trick counts are per-deal
// and reset by ResetDeal; the cumulative match score lives on MatchState.
type Team struct {
	ID            int
	Seats         [2]int
	TensCollected []Card
	TricksWon     int
}

// CollectTrick credits a won trick to the team, keeping any tens.
func (t *Team) CollectTrick(cards []Card) {
	t.TricksWon++
	for _, c := range cards {
		if c.IsTen() {
			t.TensCollected = append(t.TensCollected, c)
		}
	}
}

// HasMendikot reports whether the team captured all four tens.
func (t *Team) HasMendikot() bool {
	return len(t.TensCollected) == 4
}

// HasWhitewash reports whether the team captured all thirteen tricks.
func (t *Team) HasWhitewash() bool {
	return t.TricksWon == 13
}

func (t *Team) ResetDeal() {
	t.TensCollected = t.TensCollected[:0]
	t.TricksWon = 0
}
