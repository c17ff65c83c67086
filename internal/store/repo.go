package store

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var ErrNotFound = errors.New("not found")

// Store wraps DB access.
type Store struct {
	DB *sql.DB
}

func New(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// CreateMatch inserts a match row plus its four seat rows.
func (s *Store) CreateMatch(ctx context.Context, names [4]string) (string, error) {
	id := NewID()
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO matches (id, status) VALUES ($1, 'active')`, id)
	if err != nil {
		return "", err
	}
	for seat, name := range names {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO match_players (match_id, seat, name, team_id) VALUES ($1,$2,$3,$4)`,
			id, seat, name, seat%2)
		if err != nil {
			return "", err
		}
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (*Match, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT id, status, deals_played, team_a_score, team_b_score, created_at, finished_at
		 FROM matches WHERE id = $1`, id)
	var m Match
	if err := row.Scan(&m.ID, &m.Status, &m.DealsPlayed, &m.TeamAScore, &m.TeamBScore, &m.CreatedAt, &m.FinishedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// RecordDealResult writes one finished deal and bumps the winner's
// cumulative score on the match row in the same transaction.
func (s *Store) RecordDealResult(ctx context.Context, r DealResult) (string, error) {
	id := NewID()
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO deal_results
		 (id, match_id, deal_no, winning_team, tens_team_a, tens_team_b, tricks_team_a, tricks_team_b, mendikot, whitewash, next_dealer)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		id, r.MatchID, r.DealNo, r.WinningTeam, r.TensTeamA, r.TensTeamB,
		r.TricksTeamA, r.TricksTeamB, r.Mendikot, r.Whitewash, r.NextDealer)
	if err != nil {
		return "", err
	}

	scoreCol := "team_a_score"
	if r.WinningTeam == 1 {
		scoreCol = "team_b_score"
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE matches SET `+scoreCol+` = `+scoreCol+` + 1, deals_played = deals_played + 1 WHERE id = $1`,
		r.MatchID)
	if err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) FinishMatch(ctx context.Context, matchID string) error {
	res, err := s.DB.ExecContext(ctx,
		`UPDATE matches SET status = 'finished', finished_at = now() WHERE id = $1`, matchID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListDealResults(ctx context.Context, matchID string) ([]DealResult, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, match_id, deal_no, winning_team, tens_team_a, tens_team_b, tricks_team_a, tricks_team_b, mendikot, whitewash, next_dealer, created_at
		 FROM deal_results WHERE match_id = $1 ORDER BY deal_no`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []DealResult{}
	for rows.Next() {
		var r DealResult
		if err := rows.Scan(&r.ID, &r.MatchID, &r.DealNo, &r.WinningTeam, &r.TensTeamA, &r.TensTeamB,
			&r.TricksTeamA, &r.TricksTeamB, &r.Mendikot, &r.Whitewash, &r.NextDealer, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
