// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/rapid-tally/election"
	"github.com/danielhkuo/rapid-tally/models"
)

type VotingHandler struct {
	election *election.Election
}

func NewVotingHandler(e *election.Election) *VotingHandler {
	return &VotingHandler{election: e}
}

type voteData struct {
	Candidates []models.Candidate
	Message    string
}

func (h *VotingHandler) renderForm(w http.ResponseWriter, message string) {
	render(w, "vote.html", voteData{
		Candidates: h.election.Registry.All(),
		Message:    message,
	})
}

// Form handles GET /vote
func (h *VotingHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, "")
}

// Submit handles POST /vote
// Every outcome, rejected or applied, re-renders the form with its
// message; only store or database faults surface as 500s.
func (h *VotingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// A non-numeric vote_count is treated as 0, not rejected.
	voteCount, _ := strconv.Atoi(r.FormValue("vote_count"))

	sub := models.VoteSubmission{
		MyNumber:  r.FormValue("mynumber"),
		Name:      r.FormValue("name"),
		Address:   r.FormValue("address"),
		Candidate: r.FormValue("candidate"),
		Keyword:   r.FormValue("keyword"),
		VoteCount: voteCount,
	}

	var message string
	switch err := h.election.SubmitVote(r.Context(), sub); {
	case err == nil:
		message = models.MsgVoteSuccess
	case errors.Is(err, election.ErrInvalidIdentity):
		message = models.MsgInvalidIdentity
	case errors.Is(err, election.ErrQuotaExceeded):
		message = models.MsgQuotaExceeded
	case errors.Is(err, election.ErrCandidateBlank):
		message = models.MsgCandidateBlank
	case errors.Is(err, election.ErrInvalidCandidate):
		message = models.MsgInvalidCandidate
	case errors.Is(err, election.ErrKeywordBlank):
		message = models.MsgKeywordBlank
	default:
		slog.Error("failed to submit vote", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderForm(w, message)
}
