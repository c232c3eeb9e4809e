// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "strconv"

// Cache key layout. Note that users.votes.* nests inside users.*; reset
// sweeps only the former, so the prefixes must stay distinct.
const (
	citizenKeyPrefix          = "users."
	voteCastKeyPrefix         = "users.votes."
	candidateMirrorKeyPrefix  = "candidates."
	candidateResultKeyPrefix  = "results.candidates."
	partyResultKeyPrefix      = "results.party."
	sexResultKeyPrefix        = "results.sex."
	candidateKeywordKeyPrefix = "keywords.candidates."
	partyKeywordKeyPrefix     = "keywords.party."
)

func citizenKey(mynumber string) string {
	return citizenKeyPrefix + mynumber
}

func voteCastKey(mynumber string) string {
	return voteCastKeyPrefix + mynumber
}

func candidateMirrorKey(name string) string {
	return candidateMirrorKeyPrefix + name
}

// CandidateResultKey names the tally counter for one candidate.
func CandidateResultKey(id int) string {
	return candidateResultKeyPrefix + strconv.Itoa(id)
}

// PartyResultKey names the tally counter for one party.
func PartyResultKey(party string) string {
	return partyResultKeyPrefix + party
}

// SexResultKey names the tally counter for one sex.
func SexResultKey(sex string) string {
	return sexResultKeyPrefix + sex
}

// CandidateKeywordKey names the keyword ranking for one candidate.
func CandidateKeywordKey(id int) string {
	return candidateKeywordKeyPrefix + strconv.Itoa(id)
}

// PartyKeywordKey names the keyword ranking for one party.
func PartyKeywordKey(party string) string {
	return partyKeywordKeyPrefix + party
}
