package ledgerline

import (
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// alternate is a full allocation proposal with its ranking score.
type alternate struct {
	lines []Allocation
	// joint is the product of the probabilities of the chosen lines.
	joint float64
	// key is the canonical account-set signature used for deduplication.
	key string
}

// rankAlternates enumerates alternative full allocations from the filtered
// pools by varying the retained line count per side from one up to the pool
// size, re-decoding each combination greedily. Proposals are ranked by joint
// probability descending, deduplicated by account set, and the primary's own
// account set is excluded. At most max alternates are returned.
func rankAlternates(req DecodeRequest, debits, credits []ScoredCandidate, primary []Allocation, max int) [][]Allocation {
	if max <= 0 {
		return nil
	}
	primaryKey := allocationKey(primary)

	seen := map[string]bool{primaryKey: true}
	forced := accountSet(req.Forced)
	var alts []alternate
	for kd := 1; kd <= len(debits); kd++ {
		for kc := 1; kc <= len(credits); kc++ {
			d, da := decodeSide(debits[:kd], req.Total, forced)
			c, ca := decodeSide(credits[:kc], req.Total, forced)
			lines := assembleLines(d, da, c, ca)
			key := allocationKey(lines)
			if seen[key] {
				continue
			}
			seen[key] = true
			alts = append(alts, alternate{
				lines: lines,
				joint: jointProbability(d, c),
				key:   key,
			})
		}
	}

	sort.SliceStable(alts, func(i, j int) bool {
		if alts[i].joint != alts[j].joint {
			return alts[i].joint > alts[j].joint
		}
		return alts[i].key < alts[j].key
	})
	if len(alts) > max {
		alts = alts[:max]
	}
	out := make([][]Allocation, len(alts))
	for i, a := range alts {
		out[i] = a.lines
	}
	return out
}

// jointProbability multiplies the selection probabilities of every chosen
// line on both sides.
func jointProbability(debits, credits []ScoredCandidate) float64 {
	probs := make([]float64, 0, len(debits)+len(credits))
	for _, c := range debits {
		probs = append(probs, c.Probability)
	}
	for _, c := range credits {
		probs = append(probs, c.Probability)
	}
	return floats.Prod(probs)
}

// assembleLines zips candidates and amounts into allocation lines,
// debit side first.
func assembleLines(debits []ScoredCandidate, dAmounts []int64, credits []ScoredCandidate, cAmounts []int64) []Allocation {
	lines := make([]Allocation, 0, len(dAmounts)+len(cAmounts))
	for i, a := range dAmounts {
		lines = append(lines, Allocation{Account: debits[i].Account, Side: Debit, Amount: a})
	}
	for i, a := range cAmounts {
		lines = append(lines, Allocation{Account: credits[i].Account, Side: Credit, Amount: a})
	}
	return lines
}

// allocationKey is the canonical account-set signature of an allocation,
// independent of amounts.
func allocationKey(lines []Allocation) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Side.String() + ":" + string(l.Account)
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}
