// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"net/http"
)

// AdminPasswordHeader carries the admin password on read-only admin requests
const AdminPasswordHeader = "X-Admin-Password"

var ErrInvalidPassword = errors.New("invalid admin password")

// ValidateAdminPassword checks the given password against the configured one.
// An unset configured password never matches.
func ValidateAdminPassword(given, expected string) error {
	if expected == "" || !hmac.Equal([]byte(given), []byte(expected)) {
		return ErrInvalidPassword
	}
	return nil
}

// PasswordFromRequest returns the admin password from the request header
func PasswordFromRequest(r *http.Request) string {
	return r.Header.Get(AdminPasswordHeader)
}
