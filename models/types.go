package models

import "time"

// DefaultCandidates is the candidate set used when none is configured
var DefaultCandidates = []string{"Candidat1", "Candidat2", "Candidat3", "Candidat4", "Candidat5"}

// Request types

type PaymentRequest struct {
	// Phone is either a bare 8-digit number or a raw payment notification
	Phone string `json:"phone"`
	Votes int    `json:"votes"`
}

type SMSRequest struct {
	Message string `json:"message"`
}

type VoteRequest struct {
	Phone     string `json:"phone"`
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
}

type ResetRequest struct {
	Password string `json:"password"`
}

// Response types

type PaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Phone   string `json:"phone"`
	Balance int    `json:"balance"`
}

type VoteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Candidate string `json:"candidate"`
	Votes     int    `json:"votes"`
	Remaining int    `json:"remaining"`
}

type BalanceResponse struct {
	Phone   string `json:"phone"`
	Balance int    `json:"balance"`
}

type TallyResponse struct {
	Success bool           `json:"success"`
	Votes   map[string]int `json:"votes"`
	Total   int            `json:"total"`
}

type BalancesResponse struct {
	Success  bool      `json:"success"`
	Balances []Account `json:"balances"`
}

type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Domain types

// Account is the credit held by one phone number
type Account struct {
	Phone          string `json:"phone"`
	RemainingVotes int    `json:"remaining_votes"`
}

// VoteRecord is one redeemed credit
type VoteRecord struct {
	ID        string    `json:"id"`
	Candidate string    `json:"candidate"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}
