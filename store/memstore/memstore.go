// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package memstore

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/store"
)

// Store keeps credits and votes in memory. One mutex serializes every
// operation; WithTx works on a copy that replaces the live state on commit.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	credits map[string]int
	votes   []models.VoteRecord
}

func New() *Store {
	return &Store{state: newState()}
}

func newState() *state {
	return &state{credits: make(map[string]int)}
}

func (s *state) clone() *state {
	return &state{
		credits: maps.Clone(s.credits),
		votes:   append([]models.VoteRecord(nil), s.votes...),
	}
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.state.clone()
	if err := fn(staged); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.state = staged
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = newState()
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) Credit(ctx context.Context, phone string, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Credit(ctx, phone, amount)
}

func (s *Store) TryDebit(ctx context.Context, phone string, amount int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TryDebit(ctx, phone, amount)
}

func (s *Store) Balance(ctx context.Context, phone string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Balance(ctx, phone)
}

func (s *Store) Balances(ctx context.Context) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Balances(ctx)
}

func (s *Store) Record(ctx context.Context, candidate, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Record(ctx, candidate, phone)
}

func (s *Store) CountByCandidate(ctx context.Context) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CountByCandidate(ctx)
}

// Votes returns a copy of the vote log, oldest first.
func (s *Store) Votes() []models.VoteRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.VoteRecord(nil), s.state.votes...)
}

// state methods assume the caller holds the lock.

func (s *state) Credit(_ context.Context, phone string, amount int) (int, error) {
	if amount <= 0 {
		return 0, store.ErrInvalidAmount
	}
	s.credits[phone] += amount
	return s.credits[phone], nil
}

func (s *state) TryDebit(_ context.Context, phone string, amount int) (bool, error) {
	if amount <= 0 {
		return false, store.ErrInvalidAmount
	}
	balance, ok := s.credits[phone]
	if !ok || balance < amount {
		return false, nil
	}
	s.credits[phone] = balance - amount
	return true, nil
}

func (s *state) Balance(_ context.Context, phone string) (int, error) {
	return s.credits[phone], nil
}

func (s *state) Balances(_ context.Context) ([]models.Account, error) {
	accounts := make([]models.Account, 0, len(s.credits))
	for phone, n := range s.credits {
		accounts = append(accounts, models.Account{Phone: phone, RemainingVotes: n})
	}
	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].RemainingVotes != accounts[j].RemainingVotes {
			return accounts[i].RemainingVotes > accounts[j].RemainingVotes
		}
		return accounts[i].Phone < accounts[j].Phone
	})
	return accounts, nil
}

func (s *state) Record(_ context.Context, candidate, phone string) error {
	rec := models.VoteRecord{
		ID:        uuid.NewString(),
		Candidate: candidate,
		CreatedAt: time.Now().UTC(),
	}
	if phone != "" {
		p := phone
		rec.Phone = &p
	}
	s.votes = append(s.votes, rec)
	return nil
}

func (s *state) CountByCandidate(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, v := range s.votes {
		counts[v.Candidate]++
	}
	return counts, nil
}

var _ store.Store = (*Store)(nil)
var _ store.Tx = (*state)(nil)
