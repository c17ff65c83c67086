package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"

	"mendikot/internal/game"
	"mendikot/internal/game/viewmodel"
	"mendikot/internal/scorebook"
	"mendikot/internal/store"
)

var (
	ErrMatchNotFound = errors.New("match_not_found")
	ErrBadCommand    = errors.New("bad_command")
	ErrBadSeat       = errors.New("bad_seat")
)

// Command is one host-issued instruction for a match. Seat and Card are
// meaningful only for the command types that need them.
type Command struct {
	Type string `json:"type"`
	Seat int    `json:"seat"`
	Card string `json:"card,omitempty"`
}

// CommandResult carries the command's direct payload plus the public
// state after it applied.
type CommandResult struct {
	Draw          map[int]string            `json:"draw,omitempty"`
	Rosters       *[2][2]int                `json:"rosters,omitempty"`
	Dealer        *int                      `json:"dealer,omitempty"`
	TrumpRevealed bool                      `json:"trump_revealed,omitempty"`
	TrickWinner   *int                      `json:"trick_winner,omitempty"`
	Outcome       *game.DealOutcome         `json:"outcome,omitempty"`
	State         viewmodel.PublicStateView `json:"state"`
}

// match is one live table. Its mutex serializes commands so the engine
// only ever sees one at a time.
type match struct {
	mu           sync.Mutex
	id           string
	engine       *game.Engine
	events       *EventBuffer
	pendingDraw  map[int]game.Card
	storeMatchID string
}

// Coordinator owns the live matches and is the only component that
// touches their engines. Commands apply under the match lock; finished
// deals go to the scorebook.
type Coordinator struct {
	mu         sync.Mutex
	matches    map[string]*match
	book       *scorebook.Scorebook
	bufferSize int
}

func NewCoordinator(book *scorebook.Scorebook, bufferSize int) *Coordinator {
	return &Coordinator{
		matches:    map[string]*match{},
		book:       book,
		bufferSize: bufferSize,
	}
}

// CreateMatch registers a new table and returns its id. The rand source
// is only injectable for tests; hosts pass nil.
func (c *Coordinator) CreateMatch(ctx context.Context, names [4]string, rnd *rand.Rand) (string, viewmodel.PublicStateView, error) {
	storeID, err := c.book.OpenMatch(ctx, names)
	if err != nil {
		return "", viewmodel.PublicStateView{}, fmt.Errorf("open match: %w", err)
	}
	m := &match{
		id:           store.NewID(),
		engine:       game.NewEngine(names, rnd),
		events:       NewEventBuffer(c.bufferSize),
		storeMatchID: storeID,
	}
	c.mu.Lock()
	c.matches[m.id] = m
	c.mu.Unlock()

	view := viewmodel.BuildPublicState(m.engine.Snapshot())
	m.events.Append("match_created", m.id, view)
	log.Info().Str("match_id", m.id).Msg("match created")
	return m.id, view, nil
}

func (c *Coordinator) lookup(matchID string) (*match, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.matches[matchID]
	if !ok {
		return nil, ErrMatchNotFound
	}
	return m, nil
}

// PublicState returns the spectator view of a match.
func (c *Coordinator) PublicState(matchID string) (viewmodel.PublicStateView, error) {
	m, err := c.lookup(matchID)
	if err != nil {
		return viewmodel.PublicStateView{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return viewmodel.BuildPublicState(m.engine.Snapshot()), nil
}

// SeatState returns the view for one seat, hand included.
func (c *Coordinator) SeatState(matchID string, seat int) (viewmodel.SeatStateView, error) {
	if seat < 0 || seat > 3 {
		return viewmodel.SeatStateView{}, ErrBadSeat
	}
	m, err := c.lookup(matchID)
	if err != nil {
		return viewmodel.SeatStateView{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return viewmodel.BuildSeatState(m.engine.Snapshot(), seat), nil
}

// Events returns the match's event buffer for streaming.
func (c *Coordinator) Events(matchID string) (*EventBuffer, error) {
	m, err := c.lookup(matchID)
	if err != nil {
		return nil, err
	}
	return m.events, nil
}

// Apply runs one command against a match. Engine rejections come back
// as the engine's sentinel errors with no state change.
func (c *Coordinator) Apply(ctx context.Context, matchID string, cmd Command) (CommandResult, error) {
	m, err := c.lookup(matchID)
	if err != nil {
		return CommandResult{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var res CommandResult
	switch cmd.Type {
	case "draw_for_teams":
		draw, err := m.engine.DrawForTeams()
		if err != nil {
			return CommandResult{}, err
		}
		m.pendingDraw = draw
		res.Draw = make(map[int]string, len(draw))
		for seat, card := range draw {
			res.Draw[seat] = card.String()
		}
		m.events.Append("teams_drawn", m.id, res.Draw)

	case "form_teams":
		if m.pendingDraw == nil {
			return CommandResult{}, ErrBadCommand
		}
		rosters, dealer, err := m.engine.FormTeams(m.pendingDraw)
		if err != nil {
			return CommandResult{}, err
		}
		m.pendingDraw = nil
		res.Rosters = &rosters
		res.Dealer = &dealer
		m.events.Append("teams_formed", m.id, map[string]any{
			"rosters": rosters,
			"dealer":  dealer,
		})

	case "deal_cards":
		if err := m.engine.DealCards(); err != nil {
			return CommandResult{}, err
		}
		m.events.Append("cards_dealt", m.id, nil)

	case "select_trump":
		card, err := game.ParseCard(cmd.Card)
		if err != nil {
			return CommandResult{}, err
		}
		if err := m.engine.SelectTrump(cmd.Seat, card); err != nil {
			return CommandResult{}, err
		}
		m.events.Append("trump_selected", m.id, map[string]any{"seat": cmd.Seat})

	case "play_card":
		card, err := game.ParseCard(cmd.Card)
		if err != nil {
			return CommandResult{}, err
		}
		play, err := m.engine.PlayCard(cmd.Seat, card)
		if err != nil {
			return CommandResult{}, err
		}
		c.emitPlayEvents(ctx, m, cmd, play, &res)

	case "start_new_deal":
		if err := m.engine.StartNewDeal(); err != nil {
			return CommandResult{}, err
		}
		m.events.Append("new_deal_started", m.id, nil)

	default:
		return CommandResult{}, ErrBadCommand
	}

	res.State = viewmodel.BuildPublicState(m.engine.Snapshot())
	return res, nil
}

func (c *Coordinator) emitPlayEvents(ctx context.Context, m *match, cmd Command, play game.PlayResult, res *CommandResult) {
	m.events.Append("card_played", m.id, map[string]any{
		"seat": cmd.Seat,
		"card": cmd.Card,
	})
	if play.TrumpRevealed {
		res.TrumpRevealed = true
		snap := m.engine.Snapshot()
		m.events.Append("trump_revealed", m.id, map[string]any{
			"trump_suit": snap.TrumpSuit.String(),
		})
	}
	if play.TrickResolved {
		winner := play.TrickWinner
		res.TrickWinner = &winner
		trick := make([]map[string]any, 0, len(play.TrickCards))
		for _, p := range play.TrickCards {
			trick = append(trick, map[string]any{"seat": p.Seat, "card": p.Card.String()})
		}
		m.events.Append("trick_resolved", m.id, map[string]any{
			"winner": winner,
			"trick":  trick,
		})
	}
	if play.DealComplete {
		res.Outcome = play.Outcome
		m.events.Append("deal_completed", m.id, play.Outcome)
		snap := m.engine.Snapshot()
		dealNo := snap.DealsPlayed + 1
		if err := c.book.RecordDeal(ctx, m.storeMatchID, dealNo, *play.Outcome); err != nil {
			log.Error().Err(err).Str("match_id", m.id).Int("deal_no", dealNo).Msg("record deal")
		}
		log.Info().
			Str("match_id", m.id).
			Int("deal_no", dealNo).
			Int("winning_team", play.Outcome.WinningTeam).
			Bool("mendikot", play.Outcome.Mendikot).
			Bool("whitewash", play.Outcome.Whitewash).
			Msg("deal completed")
	}
}

// CloseMatch drops a match from the registry, closing its event stream
// and marking the stored record finished.
func (c *Coordinator) CloseMatch(ctx context.Context, matchID string) error {
	c.mu.Lock()
	m, ok := c.matches[matchID]
	if ok {
		delete(c.matches, matchID)
	}
	c.mu.Unlock()
	if !ok {
		return ErrMatchNotFound
	}
	m.events.Close()
	return c.book.CloseMatch(ctx, m.storeMatchID)
}
