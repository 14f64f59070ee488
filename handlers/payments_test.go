// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/paid-vote/middleware"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/store/sqlstore"
	"github.com/danielhkuo/paid-vote/testutil"
	"github.com/danielhkuo/paid-vote/voting"
)

// setupService builds a service over a fresh test database
func setupService(t *testing.T) (*voting.Service, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { db.Close() })

	svc, err := voting.NewService(sqlstore.New(db), testutil.GetTestConfig(), nil)
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}
	return svc, db
}

func TestSubmitPayment(t *testing.T) {
	tests := []struct {
		name        string
		body        interface{}
		wantStatus  int
		wantKind    string
		wantPhone   string
		wantBalance int
	}{
		{
			name:        "bare phone",
			body:        models.PaymentRequest{Phone: "78123456", Votes: 3},
			wantStatus:  http.StatusOK,
			wantPhone:   "78123456",
			wantBalance: 3,
		},
		{
			name:        "notification text",
			body:        models.PaymentRequest{Phone: "Paiement recu du 78123456 montant 500F", Votes: 2},
			wantStatus:  http.StatusOK,
			wantPhone:   "78123456",
			wantBalance: 2,
		},
		{
			name:        "votes default to one",
			body:        models.PaymentRequest{Phone: "78123456"},
			wantStatus:  http.StatusOK,
			wantPhone:   "78123456",
			wantBalance: 1,
		},
		{
			name:       "missing phone",
			body:       models.PaymentRequest{Votes: 2},
			wantStatus: http.StatusBadRequest,
			wantKind:   string(voting.KindPhoneMissing),
		},
		{
			name:       "no phone in text",
			body:       models.PaymentRequest{Phone: "hello world", Votes: 2},
			wantStatus: http.StatusUnprocessableEntity,
			wantKind:   string(voting.KindPhoneNotFound),
		},
		{
			name:       "amount above limit",
			body:       models.PaymentRequest{Phone: "78123456", Votes: 101},
			wantStatus: http.StatusBadRequest,
			wantKind:   string(voting.KindInvalidAmount),
		},
		{
			name:       "negative amount",
			body:       models.PaymentRequest{Phone: "78123456", Votes: -4},
			wantStatus: http.StatusBadRequest,
			wantKind:   string(voting.KindInvalidAmount),
		},
		{
			name:       "invalid JSON",
			body:       "not json",
			wantStatus: http.StatusBadRequest,
			wantKind:   string(voting.KindInvalidRequest),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := setupService(t)
			handler := NewPaymentHandler(svc)

			req := testutil.MakeRequest("POST", "/api/payments", tt.body, nil)
			w := httptest.NewRecorder()
			handler.SubmitPayment(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus != http.StatusOK {
				if tt.wantKind != "" {
					var resp models.ErrorResponse
					testutil.AssertJSON(t, w, &resp)
					if resp.Kind != tt.wantKind {
						t.Errorf("Expected kind %q, got %q", tt.wantKind, resp.Kind)
					}
				}
				if n := testutil.CountRows(t, db, "payments"); n != 0 {
					t.Errorf("Expected no payments after rejection, got %d", n)
				}
				return
			}

			var resp models.PaymentResponse
			testutil.AssertJSON(t, w, &resp)
			if !resp.Success {
				t.Error("Expected success to be true")
			}
			if resp.Phone != tt.wantPhone {
				t.Errorf("Expected phone %q, got %q", tt.wantPhone, resp.Phone)
			}
			if resp.Balance != tt.wantBalance {
				t.Errorf("Expected balance %d, got %d", tt.wantBalance, resp.Balance)
			}
		})
	}
}

func TestSubmitPayment_Message(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewPaymentHandler(svc)

	req := testutil.MakeRequest("POST", "/api/payments", models.PaymentRequest{Phone: "78123456", Votes: 1}, nil)
	w := httptest.NewRecorder()
	handler.SubmitPayment(w, req)

	var resp models.PaymentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "1 vote credited for 78123456" {
		t.Errorf("Unexpected message %q", resp.Message)
	}
}

func TestSubmitPayment_Accumulates(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewPaymentHandler(svc)

	for _, votes := range []int{2, 5} {
		req := testutil.MakeRequest("POST", "/api/payments", models.PaymentRequest{Phone: "78123456", Votes: votes}, nil)
		w := httptest.NewRecorder()
		handler.SubmitPayment(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	balance, err := svc.Balance(t.Context(), "78123456")
	if err != nil {
		t.Fatalf("Balance failed: %v", err)
	}
	if balance != 7 {
		t.Errorf("Expected balance 7, got %d", balance)
	}
}

func TestSubmitSMS(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantPhone   string
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        "Vous avez recu 100F du 78123456. Ref 42",
			wantStatus:  http.StatusOK,
			wantPhone:   "78123456",
		},
		{
			name:        "json message",
			contentType: "application/json",
			body:        `{"message": "Transfert du 61234567 confirme"}`,
			wantStatus:  http.StatusOK,
			wantPhone:   "61234567",
		},
		{
			name:        "no marker",
			contentType: "text/plain",
			body:        "Vous avez recu 100F",
			wantStatus:  http.StatusUnprocessableEntity,
		},
		{
			name:        "empty body",
			contentType: "text/plain",
			body:        "",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "broken json",
			contentType: "application/json",
			body:        `{"message":`,
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setupService(t)
			handler := NewPaymentHandler(svc)

			req := httptest.NewRequest("POST", "/api/sms", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			handler.SubmitSMS(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusOK {
				var resp models.PaymentResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Phone != tt.wantPhone {
					t.Errorf("Expected phone %q, got %q", tt.wantPhone, resp.Phone)
				}
				if resp.Balance != 1 {
					t.Errorf("Expected balance 1, got %d", resp.Balance)
				}
			}
		})
	}
}

func TestGetBalance(t *testing.T) {
	svc, db := setupService(t)
	handler := NewPaymentHandler(svc)
	testutil.CreditTestPhone(t, db, "78123456", 6)

	tests := []struct {
		name        string
		phone       string
		wantStatus  int
		wantBalance int
	}{
		{"known phone", "78123456", http.StatusOK, 6},
		{"unknown phone", "61234567", http.StatusOK, 0},
		{"malformed phone", "7812", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/balance/"+tt.phone, nil)
			req.SetPathValue("phone", tt.phone)
			w := httptest.NewRecorder()
			handler.GetBalance(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			if tt.wantStatus == http.StatusOK {
				var resp models.BalanceResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Balance != tt.wantBalance {
					t.Errorf("Expected balance %d, got %d", tt.wantBalance, resp.Balance)
				}
			}
		})
	}
}

func TestSubmitSMS_BodyTooLarge(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{
			name:        "plain text",
			contentType: "text/plain",
			body:        strings.Repeat("x", maxSMSBytes+1000) + " du 78123456",
		},
		{
			name:        "json message",
			contentType: "application/json",
			body:        `{"message":"` + strings.Repeat("x", middleware.MaxBodyBytes) + ` du 78123456"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, db := setupService(t)
			handler := NewPaymentHandler(svc)

			req := httptest.NewRequest("POST", "/api/sms", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			handler.SubmitSMS(w, req)

			testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Kind != string(voting.KindBodyTooLarge) {
				t.Errorf("Expected kind %q, got %q", voting.KindBodyTooLarge, resp.Kind)
			}
			if n := testutil.CountRows(t, db, "payments"); n != 0 {
				t.Errorf("Expected no credit for a truncated message, got %d rows", n)
			}
		})
	}
}

func TestSubmitPayment_BodyTooLarge(t *testing.T) {
	svc, _ := setupService(t)
	handler := NewPaymentHandler(svc)

	body := `{"phone":"` + strings.Repeat(" ", middleware.MaxBodyBytes) + `78123456","votes":1}`
	req := httptest.NewRequest("POST", "/api/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.SubmitPayment(w, req)

	testutil.AssertStatus(t, w, http.StatusRequestEntityTooLarge)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != string(voting.KindBodyTooLarge) {
		t.Errorf("Expected kind %q, got %q", voting.KindBodyTooLarge, resp.Kind)
	}
}
