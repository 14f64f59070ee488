// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "errors"

// Kind is the machine-readable category of a rejected request
type Kind string

const (
	KindInvalidCandidate   Kind = "invalid_candidate"
	KindInvalidPhone       Kind = "invalid_phone"
	KindInvalidCount       Kind = "invalid_count"
	KindInvalidAmount      Kind = "invalid_amount"
	KindInvalidRequest     Kind = "invalid_request"
	KindBodyTooLarge       Kind = "body_too_large"
	KindPhoneMissing       Kind = "phone_missing"
	KindPhoneNotFound      Kind = "phone_not_found"
	KindInsufficientCredit Kind = "insufficient_credit"
	KindUnauthorized       Kind = "unauthorized"
	KindStorageUnavailable Kind = "storage_unavailable"
)

// Error is returned for every rejected operation
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of err, or "" if err is not an *Error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsValidation reports whether the error was caused by malformed input
func (k Kind) IsValidation() bool {
	switch k {
	case KindInvalidCandidate, KindInvalidPhone, KindInvalidCount, KindInvalidAmount, KindPhoneMissing,
		KindInvalidRequest, KindBodyTooLarge:
		return true
	}
	return false
}
