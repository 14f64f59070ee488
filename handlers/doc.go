// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the paid-vote API.

# Handler Types

Each handler is a thin struct around the voting service:

  - PaymentHandler: Payment and SMS credit ingestion, balance lookup
  - VotingHandler: Vote redemption
  - AdminHandler: Tally, balances, reset

Handlers are created via constructor functions that accept *voting.Service:

	paymentHandler := handlers.NewPaymentHandler(svc)

# Credits

	POST /api/payments      → SubmitPayment ({"phone", "votes"})
	POST /api/sms           → SubmitSMS (JSON {"message"} or text/plain)
	GET /api/balance/{phone} → GetBalance

# Voting

	POST /api/vote → CastVote ({"phone", "candidate", "votes"})

# Admin

	GET /api/admin/votes         → GetVotes
	GET /api/admin/balances      → GetBalances
	POST /api/admin/reset_votes  → ResetVotes

Admin operations require the X-Admin-Password header. ResetVotes also
accepts {"password"} in the body.

# Errors

Service errors become JSON bodies with a "kind" field:

	400 invalid_candidate, invalid_phone, invalid_count, invalid_amount, phone_missing, invalid_request
	413 body_too_large
	422 phone_not_found
	402 insufficient_credit
	401 unauthorized
	503 storage_unavailable
*/
package handlers
