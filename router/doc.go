// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the paid-vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, registry)

# Endpoints

Operational:

	GET /health  - Liveness check
	GET /metrics - Prometheus metrics from the given gatherer

Credits (public):

	POST /api/payments        - Credit votes from a phone or payment notification
	POST /api/sms             - Credit votes from an inbound SMS
	GET  /api/balance/{phone} - Remaining credits of a phone

Voting (public):

	POST /api/vote - Redeem credits for a candidate

Administration (admin password):

	GET  /api/admin/votes       - Per-candidate tally (X-Admin-Password)
	GET  /api/admin/balances    - Accounts by remaining credit (X-Admin-Password)
	POST /api/admin/reset_votes - Delete all credits and votes ({"password": ...})

# Handler Initialization

All handlers share one voting.Service:

	paymentHandler := handlers.NewPaymentHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc)
*/
package router
