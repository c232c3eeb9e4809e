// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and cache record encodings.

# Domain Types

  - Citizen: an eligible voter with a cumulative vote quota
  - Candidate: one entry of the fixed candidate table
  - VoteSubmission: the fields of one POST /vote form

# Cache Records

Citizens and candidate mirrors are stored in the key-value store as
colon-joined strings:

	users.<mynumber>   -> "<name>:<address>:<quota>"
	candidates.<name>  -> "<id>:<party>:<sex>"

EncodeCitizen/DecodeCitizen and EncodeCandidate/DecodeCandidate are the
only code that touches this format. There is no escaping; a ':' inside a
field corrupts the record.

# Constants

PoliticalParties is the fixed four-party set. Sexes holds the two sex
tally dimensions ("M", "F"). The Msg* constants are the user-facing vote
outcome messages, byte-for-byte what the benchmarker expects.
*/
package models
