package ledgerline

import (
	"github.com/shopspring/decimal"
)

var decimalOne = decimal.NewFromInt(1)

// normalizeShares rescales the candidates' share estimates so they sum to
// exactly one. Shares of filtered-out candidates were already discarded, so
// the rescale naturally redistributes their weight over the survivors.
//
// When every retained share is zero or missing, a uniform distribution is
// substituted rather than dividing by zero. The last share is always computed
// as one minus the sum of the others, so the total is exact by construction
// and not merely within floating tolerance.
func normalizeShares(cands []ScoredCandidate) []decimal.Decimal {
	n := len(cands)
	if n == 0 {
		return nil
	}
	shares := make([]decimal.Decimal, n)
	if n == 1 {
		shares[0] = decimalOne
		return shares
	}

	var sum decimal.Decimal
	for _, c := range cands {
		if c.Share.IsPositive() {
			sum = sum.Add(c.Share)
		}
	}

	var acc decimal.Decimal
	if sum.IsZero() {
		// Uniform fallback.
		uniform := decimalOne.DivRound(decimal.NewFromInt(int64(n)), 16)
		for i := 0; i < n-1; i++ {
			shares[i] = uniform
			acc = acc.Add(uniform)
		}
	} else {
		for i := 0; i < n-1; i++ {
			s := cands[i].Share
			if s.IsNegative() {
				s = decimal.Zero
			}
			shares[i] = s.DivRound(sum, 16)
			acc = acc.Add(shares[i])
		}
	}
	last := decimalOne.Sub(acc)
	if last.IsNegative() {
		// Rounding overshot by a hair. Take the overshoot out of the largest
		// share instead of emitting a negative one.
		max := 0
		for i := 1; i < n-1; i++ {
			if shares[i].GreaterThan(shares[max]) {
				max = i
			}
		}
		shares[max] = shares[max].Add(last)
		last = decimal.Zero
	}
	shares[n-1] = last
	return shares
}
