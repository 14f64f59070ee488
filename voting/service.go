// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/danielhkuo/paid-vote/auth"
	"github.com/danielhkuo/paid-vote/cliparse"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/phone"
	"github.com/danielhkuo/paid-vote/store"
)

// VoteReceipt describes a successful redemption
type VoteReceipt struct {
	Candidate string
	Votes     int
	Remaining int
}

// CreditReceipt describes a successful payment or SMS credit
type CreditReceipt struct {
	Phone    string
	Credited int
	Balance  int
}

// TallyResult holds a count for every configured candidate
type TallyResult struct {
	Votes map[string]int
	Total int
}

// Service redeems vote credits and administers the ledger and tally.
type Service struct {
	store      store.Store
	extractor  phone.Extractor
	cfg        cliparse.Config
	candidates map[string]bool
	metrics    *Metrics
	logger     *slog.Logger
}

func NewService(st store.Store, cfg cliparse.Config, reg prometheus.Registerer) (*Service, error) {
	extractor, err := phone.NewExtractor(cfg.PhonePolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid phone policy %q: %w", cfg.PhonePolicy, err)
	}
	if len(cfg.Candidates) == 0 {
		return nil, errors.New("at least one candidate is required")
	}
	if cfg.MaxVotesPerRequest < 1 || cfg.MaxCreditPerPayment < 1 || cfg.SMSCredit < 1 {
		return nil, errors.New("vote and credit limits must be positive")
	}

	metrics, err := NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	candidates := make(map[string]bool, len(cfg.Candidates))
	for _, c := range cfg.Candidates {
		candidates[c] = true
	}

	return &Service{
		store:      st,
		extractor:  extractor,
		cfg:        cfg,
		candidates: candidates,
		metrics:    metrics,
		logger:     slog.Default(),
	}, nil
}

// Candidates returns the configured candidates in order
func (s *Service) Candidates() []string {
	return append([]string(nil), s.cfg.Candidates...)
}

// CastVote spends count credits of phone on candidate. A count of 0 means 1.
// The debit and the vote records are committed together or not at all.
func (s *Service) CastVote(ctx context.Context, phoneNum, candidate string, count int) (VoteReceipt, error) {
	if count == 0 {
		count = 1
	}
	if !s.candidates[candidate] {
		return VoteReceipt{}, s.reject(KindInvalidCandidate, fmt.Sprintf("unknown candidate %q", candidate))
	}
	if !phone.Valid(phoneNum) {
		return VoteReceipt{}, s.reject(KindInvalidPhone, "phone must be exactly 8 digits")
	}
	if count < 1 || count > s.cfg.MaxVotesPerRequest {
		return VoteReceipt{}, s.reject(KindInvalidCount,
			fmt.Sprintf("votes must be between 1 and %d", s.cfg.MaxVotesPerRequest))
	}

	tag := phoneNum
	if s.cfg.AnonymousVotes {
		tag = ""
	}

	var remaining int
	err := s.store.WithTx(ctx, func(tx store.Tx) error {
		ok, err := tx.TryDebit(ctx, phoneNum, count)
		if err != nil {
			return err
		}
		if !ok {
			return store.ErrInsufficientCredit
		}
		for i := 0; i < count; i++ {
			if err := tx.Record(ctx, candidate, tag); err != nil {
				return err
			}
		}
		remaining, err = tx.Balance(ctx, phoneNum)
		return err
	})
	if errors.Is(err, store.ErrInsufficientCredit) {
		return VoteReceipt{}, s.reject(KindInsufficientCredit, "not enough vote credits for this phone")
	}
	if err != nil {
		return VoteReceipt{}, s.storageError("cast vote", err)
	}

	s.metrics.votesCast.WithLabelValues(candidate).Add(float64(count))
	s.logger.Info("vote cast", "candidate", candidate, "votes", count, "remaining", remaining)

	return VoteReceipt{Candidate: candidate, Votes: count, Remaining: remaining}, nil
}

// IngestPayment credits amount votes to the phone found in raw, which is
// either a bare phone number or the text of a payment notification.
// An amount of 0 means 1.
func (s *Service) IngestPayment(ctx context.Context, raw string, amount int) (CreditReceipt, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return CreditReceipt{}, s.reject(KindPhoneMissing, "phone number is required")
	}
	if amount == 0 {
		amount = 1
	}
	if amount < 1 || amount > s.cfg.MaxCreditPerPayment {
		return CreditReceipt{}, s.reject(KindInvalidAmount,
			fmt.Sprintf("votes must be between 1 and %d", s.cfg.MaxCreditPerPayment))
	}

	phoneNum := raw
	if !phone.Valid(raw) {
		var ok bool
		if phoneNum, ok = s.extractor.Extract(raw); !ok {
			return CreditReceipt{}, s.reject(KindPhoneNotFound, "no phone number found in payment")
		}
	}

	return s.credit(ctx, phoneNum, amount, SourcePayment)
}

// IngestSMS credits the configured SMS amount to the phone found in text
func (s *Service) IngestSMS(ctx context.Context, text string) (CreditReceipt, error) {
	if strings.TrimSpace(text) == "" {
		return CreditReceipt{}, s.reject(KindPhoneMissing, "message is required")
	}

	phoneNum, ok := s.extractor.Extract(text)
	if !ok {
		return CreditReceipt{}, s.reject(KindPhoneNotFound, "no phone number found in message")
	}

	return s.credit(ctx, phoneNum, s.cfg.SMSCredit, SourceSMS)
}

func (s *Service) credit(ctx context.Context, phoneNum string, amount int, source string) (CreditReceipt, error) {
	balance, err := s.store.Credit(ctx, phoneNum, amount)
	if err != nil {
		return CreditReceipt{}, s.storageError("credit", err)
	}

	s.metrics.creditsIssued.WithLabelValues(source).Add(float64(amount))
	s.logger.Info("credits issued", "phone", phoneNum, "amount", amount, "balance", balance, "source", source)

	return CreditReceipt{Phone: phoneNum, Credited: amount, Balance: balance}, nil
}

// Balance returns the remaining credits of a phone
func (s *Service) Balance(ctx context.Context, phoneNum string) (int, error) {
	if !phone.Valid(phoneNum) {
		return 0, s.reject(KindInvalidPhone, "phone must be exactly 8 digits")
	}
	balance, err := s.store.Balance(ctx, phoneNum)
	if err != nil {
		return 0, s.storageError("balance", err)
	}
	return balance, nil
}

// Tally returns the vote count of every candidate, including those without votes
func (s *Service) Tally(ctx context.Context, password string) (TallyResult, error) {
	if err := s.authorize(password); err != nil {
		return TallyResult{}, err
	}

	counts, err := s.store.CountByCandidate(ctx)
	if err != nil {
		return TallyResult{}, s.storageError("tally", err)
	}

	result := TallyResult{Votes: make(map[string]int, len(s.cfg.Candidates))}
	for _, c := range s.cfg.Candidates {
		result.Votes[c] = counts[c]
		result.Total += counts[c]
	}
	return result, nil
}

// Balances lists every account, highest balance first
func (s *Service) Balances(ctx context.Context, password string) ([]models.Account, error) {
	if err := s.authorize(password); err != nil {
		return nil, err
	}

	accounts, err := s.store.Balances(ctx)
	if err != nil {
		return nil, s.storageError("balances", err)
	}
	return accounts, nil
}

// Reset deletes every credit and vote. A wrong password changes nothing.
func (s *Service) Reset(ctx context.Context, password string) error {
	if err := s.authorize(password); err != nil {
		return err
	}

	if err := s.store.Reset(ctx); err != nil {
		return s.storageError("reset", err)
	}

	s.metrics.resets.Inc()
	s.logger.Warn("all credits and votes reset")
	return nil
}

func (s *Service) authorize(password string) error {
	if err := auth.ValidateAdminPassword(password, s.cfg.AdminPassword); err != nil {
		return s.reject(KindUnauthorized, "incorrect admin password")
	}
	return nil
}

func (s *Service) reject(kind Kind, message string) *Error {
	s.metrics.rejections.WithLabelValues(string(kind)).Inc()
	return &Error{Kind: kind, Message: message}
}

func (s *Service) storageError(op string, err error) *Error {
	s.logger.Error("storage operation failed", "op", op, "error", err)
	s.metrics.rejections.WithLabelValues(string(KindStorageUnavailable)).Inc()
	return &Error{Kind: KindStorageUnavailable, Message: "storage unavailable", Err: err}
}
