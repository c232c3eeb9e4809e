// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Cache records are colon-joined strings with no escaping. A ':' inside a
// name or address would corrupt the record; the citizen and candidate
// datasets never contain one, so the limitation is accepted rather than
// defended against.

// EncodeCitizen renders a citizen as the users.<mynumber> cache value.
func EncodeCitizen(c Citizen) string {
	return c.Name + ":" + c.Address + ":" + strconv.Itoa(c.VoteQuota)
}

// DecodeCitizen parses a users.<mynumber> cache value. The mynumber is not
// part of the record; callers supply it from the key.
func DecodeCitizen(mynumber, record string) (Citizen, error) {
	parts := strings.SplitN(record, ":", 3)
	if len(parts) != 3 {
		return Citizen{}, fmt.Errorf("malformed citizen record %q", record)
	}
	quota, err := strconv.Atoi(parts[2])
	if err != nil {
		return Citizen{}, fmt.Errorf("malformed citizen record %q: %w", record, err)
	}
	return Citizen{
		MyNumber:  mynumber,
		Name:      parts[0],
		Address:   parts[1],
		VoteQuota: quota,
	}, nil
}

// EncodeCandidate renders a candidate as the candidates.<name> mirror value.
func EncodeCandidate(c Candidate) string {
	return strconv.Itoa(c.ID) + ":" + c.PoliticalParty + ":" + c.Sex
}

// DecodeCandidate parses a candidates.<name> mirror value. The name is not
// part of the record; callers supply it from the key.
func DecodeCandidate(name, record string) (Candidate, error) {
	parts := strings.SplitN(record, ":", 3)
	if len(parts) != 3 {
		return Candidate{}, fmt.Errorf("malformed candidate record %q", record)
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Candidate{}, fmt.Errorf("malformed candidate record %q: %w", record, err)
	}
	return Candidate{
		ID:             id,
		Name:           name,
		PoliticalParty: parts[1],
		Sex:            parts[2],
	}, nil
}
