// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting redeems vote credits and administers the ledger and tally.

# Service

Service composes a store.Store with the configured phone policy, candidate
set and limits:

	svc, err := voting.NewService(st, cfg, prometheus.DefaultRegisterer)

Public operations:

	svc.IngestPayment(ctx, "Vous avez recu 1000F du 78123456", 2)
	svc.IngestSMS(ctx, smsBody)
	svc.CastVote(ctx, "78123456", "Candidat1", 1)
	svc.Balance(ctx, "78123456")

Admin operations take the admin password:

	svc.Tally(ctx, password)
	svc.Balances(ctx, password)
	svc.Reset(ctx, password)

# Redemption

CastVote validates the candidate, the phone and the vote count, then debits
the credits and records one vote per credit in a single transaction. A debit
that finds too little credit rejects the whole request and records nothing.

# Errors

Every rejection is an *Error with a Kind:

	invalid_candidate, invalid_phone, invalid_count, invalid_amount,
	phone_missing, phone_not_found, insufficient_credit, unauthorized,
	storage_unavailable

Storage failures are logged and wrapped as storage_unavailable; they are not
retried.

# Metrics

Counters are registered under the paidvote namespace: votes_cast_total,
credits_issued_total, rejections_total and resets_total.
*/
package voting
