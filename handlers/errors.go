// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/paid-vote/middleware"
	"github.com/danielhkuo/paid-vote/voting"
)

// statusForKind maps service error kinds to HTTP status codes
var statusForKind = map[voting.Kind]int{
	voting.KindInvalidCandidate:   http.StatusBadRequest,
	voting.KindInvalidPhone:       http.StatusBadRequest,
	voting.KindInvalidCount:       http.StatusBadRequest,
	voting.KindInvalidAmount:      http.StatusBadRequest,
	voting.KindPhoneMissing:       http.StatusBadRequest,
	voting.KindInvalidRequest:     http.StatusBadRequest,
	voting.KindBodyTooLarge:       http.StatusRequestEntityTooLarge,
	voting.KindPhoneNotFound:      http.StatusUnprocessableEntity,
	voting.KindInsufficientCredit: http.StatusPaymentRequired,
	voting.KindUnauthorized:       http.StatusUnauthorized,
	voting.KindStorageUnavailable: http.StatusServiceUnavailable,
}

// writeServiceError reports a service error with its kind and message
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *voting.Error
	if !errors.As(err, &verr) {
		slog.Error("unexpected service error", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
		return
	}

	status, ok := statusForKind[verr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	middleware.KindErrorResponse(w, status, string(verr.Kind), verr.Message)
}

// writeBodyError reports a request body that could not be read or decoded
func writeBodyError(w http.ResponseWriter, err error, message string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.KindErrorResponse(w, http.StatusRequestEntityTooLarge, string(voting.KindBodyTooLarge),
			fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
		return
	}
	middleware.KindErrorResponse(w, http.StatusBadRequest, string(voting.KindInvalidRequest), message)
}
