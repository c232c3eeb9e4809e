package models

// Sex values as stored on candidate rows and used in tally keys.
const (
	SexMale   = "M"
	SexFemale = "F"
)

// PoliticalParties is the fixed party set for the election. It is compiled
// in rather than read from the database; reset and the party total pages
// enumerate exactly these four.
var PoliticalParties = []string{
	"夢実現党",
	"国民10人大活躍党",
	"国民平和党",
	"国民元気党",
}

// Sexes enumerates the two sex tally dimensions.
var Sexes = []string{SexMale, SexFemale}

// Vote outcome messages, rendered back into the submission form. The exact
// strings are checked by the benchmarker.
const (
	MsgVoteSuccess      = "投票に成功しました"
	MsgInvalidIdentity  = "個人情報に誤りがあります"
	MsgQuotaExceeded    = "投票数が上限を超えています"
	MsgCandidateBlank   = "候補者を記入してください"
	MsgInvalidCandidate = "候補者を正しく記入してください"
	MsgKeywordBlank     = "投票理由を記入してください"
)

// Domain types

// Citizen is an eligible voter. VoteQuota is the maximum cumulative
// vote_count the citizen may cast across all submissions.
type Citizen struct {
	MyNumber  string
	Name      string
	Address   string
	VoteQuota int
}

// Candidate is one entry of the fixed candidate table.
type Candidate struct {
	ID             int
	Name           string
	PoliticalParty string
	Sex            string
}

// VoteSubmission carries the fields of one POST /vote form.
type VoteSubmission struct {
	MyNumber  string
	Name      string
	Address   string
	Candidate string
	Keyword   string
	VoteCount int
}
