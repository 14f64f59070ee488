// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/paid-vote/models"
)

var (
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrInvalidAmount      = errors.New("amount must be positive")
)

// Ledger tracks the remaining vote credits of each phone number.
type Ledger interface {
	// Credit adds amount to the phone's balance, creating the account if
	// needed, and returns the new balance.
	Credit(ctx context.Context, phone string, amount int) (int, error)
	// TryDebit subtracts amount only if the balance covers it. The check and
	// the update are a single atomic step.
	TryDebit(ctx context.Context, phone string, amount int) (bool, error)
	// Balance returns 0 for unknown phones.
	Balance(ctx context.Context, phone string) (int, error)
	// Balances lists every account, highest balance first.
	Balances(ctx context.Context) ([]models.Account, error)
}

// Tally is the append-only log of cast votes.
type Tally interface {
	// Record appends one vote. An empty phone records an anonymous vote.
	Record(ctx context.Context, candidate, phone string) error
	// CountByCandidate only contains candidates with at least one vote.
	CountByCandidate(ctx context.Context) (map[string]int, error)
}

// Tx is the view of the store inside a transaction.
type Tx interface {
	Ledger
	Tally
}

// Store is the persistent state shared by all requests.
type Store interface {
	Tx

	// WithTx runs fn in a transaction, committing only if fn returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error
	// Reset deletes all credits and votes together.
	Reset(ctx context.Context) error
	Close() error
}
