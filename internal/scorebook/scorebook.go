// Package scorebook records finished deals. It is a thin facade over
// the store so hosts can run without a database: a nil Scorebook (or
// one with no store) accepts every call and writes nothing.
package scorebook

import (
	"context"

	"mendikot/internal/game"
	"mendikot/internal/store"
)

type Scorebook struct {
	Store *store.Store
}

func New(s *store.Store) *Scorebook {
	if s == nil {
		return nil
	}
	return &Scorebook{Store: s}
}

func (b *Scorebook) enabled() bool {
	return b != nil && b.Store != nil
}

func (b *Scorebook) OpenMatch(ctx context.Context, names [4]string) (string, error) {
	if !b.enabled() {
		return "", nil
	}
	return b.Store.CreateMatch(ctx, names)
}

func (b *Scorebook) RecordDeal(ctx context.Context, matchID string, dealNo int, out game.DealOutcome) error {
	if !b.enabled() || matchID == "" {
		return nil
	}
	_, err := b.Store.RecordDealResult(ctx, store.DealResult{
		MatchID:     matchID,
		DealNo:      dealNo,
		WinningTeam: out.WinningTeam,
		TensTeamA:   out.Tens[0],
		TensTeamB:   out.Tens[1],
		TricksTeamA: out.Tricks[0],
		TricksTeamB: out.Tricks[1],
		Mendikot:    out.Mendikot,
		Whitewash:   out.Whitewash,
		NextDealer:  out.NextDealer,
	})
	return err
}

func (b *Scorebook) CloseMatch(ctx context.Context, matchID string) error {
	if !b.enabled() || matchID == "" {
		return nil
	}
	return b.Store.FinishMatch(ctx, matchID)
}
