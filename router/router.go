// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/paid-vote/handlers"
	"github.com/danielhkuo/paid-vote/middleware"
	"github.com/danielhkuo/paid-vote/voting"
)

func NewRouter(svc *voting.Service, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	paymentHandler := handlers.NewPaymentHandler(svc)
	votingHandler := handlers.NewVotingHandler(svc)
	adminHandler := handlers.NewAdminHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Credits (public)
	mux.HandleFunc("POST /api/payments", middleware.WithLogging(paymentHandler.SubmitPayment))
	mux.HandleFunc("POST /api/sms", middleware.WithLogging(paymentHandler.SubmitSMS))
	mux.HandleFunc("GET /api/balance/{phone}", middleware.WithLogging(paymentHandler.GetBalance))

	// Voting (public)
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(votingHandler.CastVote))

	// Administration (requires admin password)
	mux.HandleFunc("GET /api/admin/votes", middleware.WithLogging(adminHandler.GetVotes))
	mux.HandleFunc("GET /api/admin/balances", middleware.WithLogging(adminHandler.GetBalances))
	mux.HandleFunc("POST /api/admin/reset_votes", middleware.WithLogging(adminHandler.ResetVotes))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("paid-vote API v1"))
	})

	return mux
}
