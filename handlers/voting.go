// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/paid-vote/middleware"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/voting"
)

type VotingHandler struct {
	svc *voting.Service
}

func NewVotingHandler(svc *voting.Service) *VotingHandler {
	return &VotingHandler{svc: svc}
}

// CastVote handles POST /api/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err, "Invalid JSON")
		return
	}

	receipt, err := h.svc.CastVote(r.Context(), req.Phone, req.Candidate, req.Votes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success:   true,
		Message:   fmt.Sprintf("%d %s recorded for %s", receipt.Votes, plural(receipt.Votes, "vote"), receipt.Candidate),
		Candidate: receipt.Candidate,
		Votes:     receipt.Votes,
		Remaining: receipt.Remaining,
	})
}
