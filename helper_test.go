package ledgerline

import (
	"github.com/shopspring/decimal"
)

// Test constructors. Candidates come in two flavors: with only a probability
// (the scorer had no share estimate) or with both.

func cand(account AccountID, prob float64) ScoredCandidate {
	return ScoredCandidate{Account: account, Probability: prob}
}

func candShare(account AccountID, prob float64, share string) ScoredCandidate {
	return ScoredCandidate{
		Account:     account,
		Probability: prob,
		Share:       decimal.RequireFromString(share),
	}
}

// accounts projects candidates onto their account ids, preserving order.
func accounts(cands []ScoredCandidate) []AccountID {
	ids := make([]AccountID, len(cands))
	for i, c := range cands {
		ids[i] = c.Account
	}
	return ids
}
