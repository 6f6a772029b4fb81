package ledgerline

import (
	"sort"

	"github.com/shopspring/decimal"
)

// decodeSide converts one side's candidates into integer minor-unit amounts
// that sum exactly to total, using the largest-remainder method:
//
//  1. raw target = share * total, in decimal arithmetic
//  2. floor each target, keeping the fractional remainder
//  3. repair the rounding drift one minor unit at a time, largest
//     remainder first (ties by candidate order, i.e. best probability first)
//
// A forced candidate whose share rounds to nothing is floored at one minor
// unit, taken from the largest line. When a non-forced candidate ends up with
// a zero amount (zero share, or total small relative to the line count), the
// weakest non-forced candidate is dropped and the decode reruns with one
// candidate fewer, down to a single line. Every emitted amount is therefore
// strictly positive, and forced candidates survive as long as the total can
// give each of them a unit.
func decodeSide(cands []ScoredCandidate, total int64, forced map[AccountID]bool) ([]ScoredCandidate, []int64) {
	pool := cands
	for len(pool) > 1 {
		amounts, ok := decodeExact(pool, total, forced)
		if ok {
			return pool, amounts
		}
		pool = dropWeakest(pool, forced)
	}
	// A single line takes the whole total.
	return pool[:1], []int64{total}
}

// dropWeakest removes the lowest-probability non-forced candidate, or the
// lowest-probability candidate outright when everything left is forced (the
// total is then too small for one line each, and positivity wins).
func dropWeakest(cands []ScoredCandidate, forced map[AccountID]bool) []ScoredCandidate {
	for i := len(cands) - 1; i >= 0; i-- {
		if forced[cands[i].Account] {
			continue
		}
		out := make([]ScoredCandidate, 0, len(cands)-1)
		out = append(out, cands[:i]...)
		return append(out, cands[i+1:]...)
	}
	return cands[:len(cands)-1]
}

// decodeExact runs one largest-remainder pass over exactly the given
// candidates. It reports false when any amount would be zero and cannot be
// repaired.
func decodeExact(cands []ScoredCandidate, total int64, forced map[AccountID]bool) ([]int64, bool) {
	n := len(cands)
	shares := normalizeShares(cands)
	totalDec := decimal.NewFromInt(total)

	amounts := make([]int64, n)
	remainders := make([]decimal.Decimal, n)
	var allocated int64
	for i := 0; i < n; i++ {
		target := shares[i].Mul(totalDec)
		floor := target.Floor()
		amounts[i] = floor.IntPart()
		remainders[i] = target.Sub(floor)
		allocated += amounts[i]
	}

	// The shares sum to exactly one, so the drift is the sum of the
	// fractional remainders: a non-negative integer smaller than n.
	drift := total - allocated
	if drift > 0 {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return remainders[order[a]].GreaterThan(remainders[order[b]])
		})
		for u, i := int64(0), 0; u < drift; u++ {
			amounts[order[i]]++
			i++
			if i == n {
				i = 0
			}
		}
	}

	for i, a := range amounts {
		if a > 0 {
			continue
		}
		if !forced[cands[i].Account] {
			return nil, false
		}
		// A forced line cannot be zero: move one unit from the largest line.
		max := -1
		for j, amt := range amounts {
			if amt > 1 && (max < 0 || amt > amounts[max]) {
				max = j
			}
		}
		if max < 0 {
			return nil, false
		}
		amounts[max]--
		amounts[i] = 1
	}
	return amounts, true
}
