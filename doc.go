// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the paid-vote API server.

Paid-vote turns mobile-money payments into vote credits. Each payment
or SMS notification credits the phone number it names, and each vote
spends one credit on a candidate.

# Starting the Server

Configuration comes from CLI flags, environment variables, or a .env
file in the working directory:

	ADMIN_PASSWORD=secret go run .

Or with flags:

	go run . -p 10000 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - ADMIN_PASSWORD (--admin-password): Password for tally and reset

Optional settings:

  - PORT (-p): Server port (default: 10000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:paid-vote.db)
  - PHONE_POLICY (--phone-policy): positional or pattern
  - CANDIDATES (--candidates): Comma-separated candidate names
  - ANONYMOUS_VOTES (--anonymous-votes): Drop the phone from vote records
  - CORS_ORIGINS (--cors-origins): Comma-separated browser origins (default: any)
  - MAX_VOTES_PER_REQUEST, MAX_CREDIT_PER_PAYMENT, SMS_CREDIT

# Architecture

  - voting: Redemption service, tally, admin operations
  - store: Ledger and tally interfaces with SQL and in-memory backends
  - phone: Phone number extraction from notification text
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Admin password checks
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
