// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p                 Server port (default: 10000)
	-d                 Database URL (default for sqlite: file:paid-vote.db)
	-t                 Database type: sqlite or postgres (default: sqlite)
	--admin-password   Admin password
	--phone-policy     positional or pattern (default: positional)
	--anonymous-votes  Store votes without the voter's phone
	--candidates       Comma-separated candidate list
	--max-votes        Votes redeemable per request (default: 10)
	--max-credit       Credits per payment (default: 100)
	--sms-credit       Credits per SMS notification (default: 1)

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	DATABASE_URL           → -d
	DATABASE_TYPE          → -t
	ADMIN_PASSWORD         → --admin-password
	PHONE_POLICY           → --phone-policy
	ANONYMOUS_VOTES        → --anonymous-votes
	CANDIDATES             → --candidates
	MAX_VOTES_PER_REQUEST  → --max-votes
	MAX_CREDIT_PER_PAYMENT → --max-credit
	SMS_CREDIT             → --sms-credit

CLI flags take precedence over environment variables. main loads a .env file
into the environment before parsing.

# Phone Policies

The positional policy reads the 8 characters after the first "du " in a
notification ("Vous avez recu 1000F du 78123456"). The pattern policy takes
the first run of exactly 8 digits anywhere in the text. Pick the one that
matches the operator's notification format.

# Validation

ParseFlags returns an error if:

  - ADMIN_PASSWORD is missing
  - DATABASE_URL is missing for postgres
  - the database type or phone policy is unknown
  - a limit is not positive, or SMS credit exceeds the per-payment maximum
*/
package cliparse
