// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strconv"

	"github.com/danielhkuo/rapid-tally/election"
	"github.com/danielhkuo/rapid-tally/kvs"
	"github.com/danielhkuo/rapid-tally/models"
)

type ResultsHandler struct {
	election *election.Election
}

func NewResultsHandler(e *election.Election) *ResultsHandler {
	return &ResultsHandler{election: e}
}

type candidateRow struct {
	Rank      int
	Candidate models.Candidate
	Count     int
}

type totalRow struct {
	Name  string
	Count int
}

type indexData struct {
	Candidates []candidateRow
	Parties    []totalRow
	SexRatio   []totalRow
}

// Index handles GET /
// Ranked results: the top ten candidates plus the stragglers below 29th
// place, party totals, and the sex ratio. All counters come back in two
// bulk reads.
func (h *ResultsHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tally := h.election.Tally

	candidates := h.election.Registry.All()
	keys := make([]string, len(candidates))
	for i, c := range candidates {
		keys[i] = election.CandidateResultKey(c.ID)
	}
	counts, err := tally.ReadMany(ctx, keys)
	if err != nil {
		slog.Error("failed to read candidate tallies", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ranked := make([]candidateRow, len(candidates))
	for i, c := range candidates {
		ranked[i] = candidateRow{Candidate: c, Count: counts[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	// Only the top ten and the bottom of the field are shown.
	shown := make([]candidateRow, 0, len(ranked))
	for i := range ranked {
		ranked[i].Rank = i + 1
		if i < 10 || i > 28 {
			shown = append(shown, ranked[i])
		}
	}

	partyKeys := make([]string, len(models.PoliticalParties))
	for i, party := range models.PoliticalParties {
		partyKeys[i] = election.PartyResultKey(party)
	}
	partyCounts, err := tally.ReadMany(ctx, partyKeys)
	if err != nil {
		slog.Error("failed to read party tallies", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	parties := make([]totalRow, len(models.PoliticalParties))
	for i, party := range models.PoliticalParties {
		parties[i] = totalRow{Name: party, Count: partyCounts[i]}
	}

	sexKeys := make([]string, len(models.Sexes))
	for i, sex := range models.Sexes {
		sexKeys[i] = election.SexResultKey(sex)
	}
	sexCounts, err := tally.ReadMany(ctx, sexKeys)
	if err != nil {
		slog.Error("failed to read sex tallies", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	sexRatio := make([]totalRow, len(models.Sexes))
	for i, sex := range models.Sexes {
		sexRatio[i] = totalRow{Name: sex, Count: sexCounts[i]}
	}

	render(w, "index.html", indexData{
		Candidates: shown,
		Parties:    parties,
		SexRatio:   sexRatio,
	})
}

type candidateData struct {
	Candidate models.Candidate
	Votes     int
	Keywords  []kvs.RankedEntry
}

// Candidate handles GET /candidates/{id}
// Detail page with the candidate's tally and top-11 reason keywords.
// Unknown ids bounce back to the results page.
func (h *ResultsHandler) Candidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	candidate, err := h.election.Registry.FindByID(id)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	votes, err := h.election.Tally.Read(ctx, election.CandidateResultKey(candidate.ID))
	if err != nil {
		slog.Error("failed to read candidate tally", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	keywords, err := h.election.Tally.TopKeywords(ctx, election.CandidateKeywordKey(candidate.ID), 11)
	if err != nil {
		slog.Error("failed to read candidate keywords", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, "candidate.html", candidateData{
		Candidate: candidate,
		Votes:     votes,
		Keywords:  keywords,
	})
}

type partyData struct {
	Party      string
	Votes      int
	Candidates []models.Candidate
	Keywords   []kvs.RankedEntry
}

// PoliticalParty handles GET /political_parties/{name}
// Party total, member candidates and the party-scoped top-11 keywords.
// An unknown name renders an empty page rather than erroring.
func (h *ResultsHandler) PoliticalParty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	votes, err := h.election.Tally.Read(ctx, election.PartyResultKey(name))
	if err != nil {
		slog.Error("failed to read party tally", "party", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var members []models.Candidate
	for _, c := range h.election.Registry.All() {
		if c.PoliticalParty == name {
			members = append(members, c)
		}
	}

	keywords, err := h.election.Tally.TopKeywords(ctx, election.PartyKeywordKey(name), 11)
	if err != nil {
		slog.Error("failed to read party keywords", "party", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	render(w, "political_party.html", partyData{
		Party:      name,
		Votes:      votes,
		Candidates: members,
		Keywords:   keywords,
	})
}
