// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/paid-vote/auth"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/testutil"
	"github.com/danielhkuo/paid-vote/voting"
)

func adminHeaders(password string) map[string]string {
	return map[string]string{auth.AdminPasswordHeader: password}
}

func TestGetVotes(t *testing.T) {
	svc, db := setupService(t)
	handler := NewAdminHandler(svc)
	testutil.CreditTestPhone(t, db, "78123456", 5)

	for _, c := range []string{"Candidat1", "Candidat1", "Candidat2"} {
		if _, err := svc.CastVote(t.Context(), "78123456", c, 1); err != nil {
			t.Fatalf("CastVote failed: %v", err)
		}
	}

	t.Run("correct password", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/admin/votes", nil, adminHeaders(testutil.TestAdminPassword))
		w := httptest.NewRecorder()
		handler.GetVotes(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.TallyResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Total != 3 {
			t.Errorf("Expected total 3, got %d", resp.Total)
		}
		if resp.Votes["Candidat1"] != 2 || resp.Votes["Candidat2"] != 1 {
			t.Errorf("Unexpected tally %v", resp.Votes)
		}
		if len(resp.Votes) != len(models.DefaultCandidates) {
			t.Errorf("Expected every candidate in tally, got %v", resp.Votes)
		}
		if v, ok := resp.Votes["Candidat5"]; !ok || v != 0 {
			t.Errorf("Expected Candidat5 with 0 votes, got %v (present=%v)", v, ok)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/admin/votes", nil, adminHeaders("nope"))
		w := httptest.NewRecorder()
		handler.GetVotes(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("missing password", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/admin/votes", nil, nil)
		w := httptest.NewRecorder()
		handler.GetVotes(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})
}

func TestGetBalances(t *testing.T) {
	svc, db := setupService(t)
	handler := NewAdminHandler(svc)
	testutil.CreditTestPhone(t, db, "61234567", 2)
	testutil.CreditTestPhone(t, db, "78123456", 9)

	req := testutil.MakeRequest("GET", "/api/admin/balances", nil, adminHeaders(testutil.TestAdminPassword))
	w := httptest.NewRecorder()
	handler.GetBalances(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BalancesResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Balances) != 2 {
		t.Fatalf("Expected 2 accounts, got %d", len(resp.Balances))
	}
	if resp.Balances[0].Phone != "78123456" || resp.Balances[0].RemainingVotes != 9 {
		t.Errorf("Expected highest balance first, got %+v", resp.Balances[0])
	}

	req = testutil.MakeRequest("GET", "/api/admin/balances", nil, nil)
	w = httptest.NewRecorder()
	handler.GetBalances(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestResetVotes(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		headers    map[string]string
		wantStatus int
		wantReset  bool
	}{
		{
			name:       "password in body",
			body:       models.ResetRequest{Password: testutil.TestAdminPassword},
			wantStatus: http.StatusOK,
			wantReset:  true,
		},
		{
			name:       "password in header",
			headers:    adminHeaders(testutil.TestAdminPassword),
			wantStatus: http.StatusOK,
			wantReset:  true,
		},
		{
			name:       "wrong password",
			body:       models.ResetRequest{Password: "guess"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no password",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid JSON",
			body:       "{{",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := setupService(t)
			handler := NewAdminHandler(svc)
			testutil.CreditTestPhone(t, db, "78123456", 4)
			if _, err := svc.CastVote(t.Context(), "78123456", "Candidat1", 1); err != nil {
				t.Fatalf("CastVote failed: %v", err)
			}

			req := testutil.MakeRequest("POST", "/api/admin/reset_votes", tt.body, tt.headers)
			w := httptest.NewRecorder()
			handler.ResetVotes(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			wantPayments, wantVotes := 1, 1
			if tt.wantReset {
				wantPayments, wantVotes = 0, 0
			}
			if got := testutil.CountRows(t, db, "payments"); got != wantPayments {
				t.Errorf("Expected %d payments, got %d", wantPayments, got)
			}
			if got := testutil.CountRows(t, db, "votes"); got != wantVotes {
				t.Errorf("Expected %d votes, got %d", wantVotes, got)
			}
		})
	}
}

func TestResetVotes_ChunkedEmptyBody(t *testing.T) {
	svc, db := setupService(t)
	handler := NewAdminHandler(svc)
	testutil.CreditTestPhone(t, db, "78123456", 4)

	req := httptest.NewRequest("POST", "/api/admin/reset_votes", strings.NewReader(""))
	req.ContentLength = -1
	req.Header.Set(auth.AdminPasswordHeader, testutil.TestAdminPassword)
	w := httptest.NewRecorder()
	handler.ResetVotes(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := testutil.CountRows(t, db, "payments"); got != 0 {
		t.Errorf("Expected payments cleared, got %d", got)
	}
}

func TestResetVotes_MalformedBodyKind(t *testing.T) {
	svc, db := setupService(t)
	handler := NewAdminHandler(svc)
	testutil.CreditTestPhone(t, db, "78123456", 4)

	req := httptest.NewRequest("POST", "/api/admin/reset_votes", strings.NewReader(`{"password":`))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(auth.AdminPasswordHeader, testutil.TestAdminPassword)
	w := httptest.NewRecorder()
	handler.ResetVotes(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != string(voting.KindInvalidRequest) {
		t.Errorf("Expected kind %q, got %q", voting.KindInvalidRequest, resp.Kind)
	}
	if resp.Message == "" {
		t.Error("Expected a human-readable message")
	}
	if got := testutil.CountRows(t, db, "payments"); got != 1 {
		t.Errorf("Expected payments untouched, got %d", got)
	}
}
