package ledgerline

import (
	"github.com/shopspring/decimal"
)

// AccountID identifies an account in the caller's chart of accounts.
// The decoder treats it as an opaque, already-validated identifier.
type AccountID string

// ScoredCandidate is one account's likelihood of appearing on a side,
// together with its estimated proportion of that side's total.
// It is produced by the scoring stage and never mutated by the decoder.
type ScoredCandidate struct {
	Account     AccountID       `json:"account"`
	Probability float64         `json:"probability"`
	Share       decimal.Decimal `json:"share"`
}

// cloneCandidates returns an independent copy, so decoding never mutates the
// caller's slices.
func cloneCandidates(src []ScoredCandidate) []ScoredCandidate {
	if src == nil {
		return nil
	}
	dst := make([]ScoredCandidate, len(src))
	copy(dst, src)
	return dst
}

// accountSet builds a membership set from a list of account ids.
func accountSet(ids []AccountID) map[AccountID]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[AccountID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
