// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/store"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store keeps credits and votes in a SQL database created by db.CreateSchema.
// Queries use $N placeholders, which lib/pq and modernc.org/sqlite both accept.
type Store struct {
	ops
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{ops: ops{q: db}, db: db}
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&ops{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM votes`); err != nil {
		return fmt.Errorf("failed to delete votes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM payments`); err != nil {
		return fmt.Errorf("failed to delete payments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reset: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type ops struct {
	q querier
}

func (o *ops) Credit(ctx context.Context, phone string, amount int) (int, error) {
	if amount <= 0 {
		return 0, store.ErrInvalidAmount
	}

	var balance int
	err := o.q.QueryRowContext(ctx, `
		INSERT INTO payments (phone, remaining_votes, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO UPDATE
		SET remaining_votes = payments.remaining_votes + excluded.remaining_votes,
		    updated_at = excluded.updated_at
		RETURNING remaining_votes
	`, phone, amount, time.Now().UTC(), time.Now().UTC()).Scan(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to credit %s: %w", phone, err)
	}
	return balance, nil
}

func (o *ops) TryDebit(ctx context.Context, phone string, amount int) (bool, error) {
	if amount <= 0 {
		return false, store.ErrInvalidAmount
	}

	// The balance guard lives in the WHERE clause so concurrent debits
	// serialize on the row and the loser matches zero rows
	res, err := o.q.ExecContext(ctx, `
		UPDATE payments
		SET remaining_votes = remaining_votes - $1, updated_at = $2
		WHERE phone = $3 AND remaining_votes >= $4
	`, amount, time.Now().UTC(), phone, amount)
	if err != nil {
		return false, fmt.Errorf("failed to debit %s: %w", phone, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read debit result: %w", err)
	}
	return n == 1, nil
}

func (o *ops) Balance(ctx context.Context, phone string) (int, error) {
	var balance int
	err := o.q.QueryRowContext(ctx, `
		SELECT remaining_votes FROM payments WHERE phone = $1
	`, phone).Scan(&balance)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to query balance: %w", err)
	}
	return balance, nil
}

func (o *ops) Balances(ctx context.Context) ([]models.Account, error) {
	rows, err := o.q.QueryContext(ctx, `
		SELECT phone, remaining_votes
		FROM payments
		ORDER BY remaining_votes DESC, phone ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query balances: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.Phone, &a.RemainingVotes); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate balances: %w", err)
	}
	return accounts, nil
}

func (o *ops) Record(ctx context.Context, candidate, phone string) error {
	var phoneCol *string
	if phone != "" {
		phoneCol = &phone
	}

	_, err := o.q.ExecContext(ctx, `
		INSERT INTO votes (id, candidate, phone, created_at)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), candidate, phoneCol, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}
	return nil
}

func (o *ops) CountByCandidate(ctx context.Context) (map[string]int, error) {
	rows, err := o.q.QueryContext(ctx, `
		SELECT candidate, COUNT(*) FROM votes GROUP BY candidate
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var candidate string
		var n int
		if err := rows.Scan(&candidate, &n); err != nil {
			return nil, fmt.Errorf("failed to scan vote count: %w", err)
		}
		counts[candidate] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate vote counts: %w", err)
	}
	return counts, nil
}

var _ store.Store = (*Store)(nil)
