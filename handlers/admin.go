// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/danielhkuo/paid-vote/auth"
	"github.com/danielhkuo/paid-vote/middleware"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/voting"
)

type AdminHandler struct {
	svc *voting.Service
}

func NewAdminHandler(svc *voting.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// GetVotes handles GET /api/admin/votes
func (h *AdminHandler) GetVotes(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Tally(r.Context(), auth.PasswordFromRequest(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TallyResponse{
		Success: true,
		Votes:   result.Votes,
		Total:   result.Total,
	})
}

// GetBalances handles GET /api/admin/balances
func (h *AdminHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.svc.Balances(r.Context(), auth.PasswordFromRequest(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BalancesResponse{
		Success:  true,
		Balances: accounts,
	})
}

// ResetVotes handles POST /api/admin/reset_votes
// The password comes from the JSON body, or the header when the body is empty
func (h *AdminHandler) ResetVotes(w http.ResponseWriter, r *http.Request) {
	var req models.ResetRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil && !errors.Is(err, middleware.ErrEmptyBody) {
		writeBodyError(w, err, "Invalid JSON")
		return
	}
	if req.Password == "" {
		req.Password = auth.PasswordFromRequest(r)
	}

	if err := h.svc.Reset(r.Context(), req.Password); err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Success: true,
		Message: "All votes and credits have been reset",
	})
}
