// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/paid-vote/middleware"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/voting"
)

// maxSMSBytes bounds plain-text SMS bodies
const maxSMSBytes = 4 << 10

type PaymentHandler struct {
	svc *voting.Service
}

func NewPaymentHandler(svc *voting.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// SubmitPayment handles POST /api/payments
func (h *PaymentHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		writeBodyError(w, err, "Invalid JSON")
		return
	}

	receipt, err := h.svc.IngestPayment(r.Context(), req.Phone, req.Votes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, creditResponse(receipt))
}

// SubmitSMS handles POST /api/sms
// Accepts {"message": "..."} or the raw SMS text as a text/plain body
func (h *PaymentHandler) SubmitSMS(w http.ResponseWriter, r *http.Request) {
	var req models.SMSRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := middleware.ParseJSONBody(w, r, &req); err != nil {
			writeBodyError(w, err, "Invalid JSON")
			return
		}
	} else {
		body := http.MaxBytesReader(w, r.Body, maxSMSBytes)
		defer body.Close()
		text, err := io.ReadAll(body)
		if err != nil {
			writeBodyError(w, err, "Failed to read message")
			return
		}
		req.Message = string(text)
	}

	receipt, err := h.svc.IngestSMS(r.Context(), req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, creditResponse(receipt))
}

// GetBalance handles GET /api/balance/{phone}
func (h *PaymentHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	phone := r.PathValue("phone")

	balance, err := h.svc.Balance(r.Context(), phone)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BalanceResponse{
		Phone:   phone,
		Balance: balance,
	})
}

func creditResponse(receipt voting.CreditReceipt) models.PaymentResponse {
	amount := humanize.Comma(int64(receipt.Credited))
	return models.PaymentResponse{
		Success: true,
		Message: fmt.Sprintf("%s %s credited for %s", amount, plural(receipt.Credited, "vote"), receipt.Phone),
		Phone:   receipt.Phone,
		Balance: receipt.Balance,
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
