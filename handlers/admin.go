// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/rapid-tally/election"
)

type AdminHandler struct {
	election *election.Election
}

func NewAdminHandler(e *election.Election) *AdminHandler {
	return &AdminHandler{election: e}
}

// Initialize handles GET /initialize
// Resets all run state between benchmark runs. Assumes no votes are in
// flight.
func (h *AdminHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.election.Reset(r.Context()); err != nil {
		slog.Error("failed to reset election state", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("election state reset")
	w.WriteHeader(http.StatusOK)
}
