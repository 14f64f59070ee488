// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/paid-vote/cliparse"
	"github.com/danielhkuo/paid-vote/db"
	"github.com/danielhkuo/paid-vote/models"
	"github.com/danielhkuo/paid-vote/phone"
)

// TestAdminPassword is the admin password in GetTestConfig
const TestAdminPassword = "test-admin-password"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each call gets its own database so tests never share state.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open(db.TypeSQLite, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:                10000,
		DatabaseURL:         "file::memory:",
		DatabaseType:        db.TypeSQLite,
		AdminPassword:       TestAdminPassword,
		PhonePolicy:         phone.PolicyPositional,
		Candidates:          append([]string(nil), models.DefaultCandidates...),
		MaxVotesPerRequest:  10,
		MaxCreditPerPayment: 100,
		SMSCredit:           1,
	}
}

// CreditTestPhone gives a phone credits directly through the payments table
func CreditTestPhone(t *testing.T, conn *sql.DB, phone string, credits int) {
	t.Helper()

	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO payments (phone, remaining_votes) VALUES ($1, $2)
	`, phone, credits)
	if err != nil {
		t.Fatalf("Failed to credit test phone: %v", err)
	}
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
