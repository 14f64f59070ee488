// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - PaymentRequest: phone (number or notification text), votes
  - SMSRequest: message
  - VoteRequest: phone, candidate, votes
  - ResetRequest: password

# Response Types

Types for JSON responses:

  - PaymentResponse: success, message, phone, balance
  - VoteResponse: success, message, candidate, votes, remaining
  - BalanceResponse: phone, balance
  - TallyResponse: success, votes (per candidate), total
  - BalancesResponse: success, balances
  - ResetResponse: success, message
  - ErrorResponse: error, kind, message

# Domain Types

  - Account: phone and remaining vote credits
  - VoteRecord: one redeemed credit for a candidate

DefaultCandidates holds the fixed candidate set Candidat1..Candidat5.
*/
package models
