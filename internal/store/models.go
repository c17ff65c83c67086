package store

import "time"

type Match struct {
	ID          string
	Status      string
	DealsPlayed int
	TeamAScore  int
	TeamBScore  int
	CreatedAt   time.Time
	FinishedAt  *time.Time
}

type MatchPlayer struct {
	MatchID string
	Seat    int
	Name    string
	TeamID  int
}

// DealResult is the record of one finished deal. In-progress state is
// never written; only outcomes land here.
type DealResult struct {
	ID          string
	MatchID     string
	DealNo      int
	WinningTeam int
	TensTeamA   int
	TensTeamB   int
	TricksTeamA int
	TricksTeamB int
	Mendikot    bool
	Whitewash   bool
	NextDealer  int
	CreatedAt   time.Time
}
