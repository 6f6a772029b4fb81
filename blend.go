package ledgerline

import (
	"gonum.org/v1/gonum/floats"
)

// blendSide merges an external single-pair prediction into one side's scored
// pool, before any filtering: the named account moves toward probability 1 by
// the blend weight, and every other probability is scaled down by (1-weight).
//
// weight 0 returns the pool unchanged; weight 1 leaves the named account as
// the only candidate with a non-zero probability. An account the scorer never
// saw is injected with no share estimate, so a full-weight prediction can
// still collapse the side to it.
func blendSide(pool []ScoredCandidate, named AccountID, weight float64) []ScoredCandidate {
	if weight == 0 || named == "" {
		return pool
	}

	out := cloneCandidates(pool)
	probs := make([]float64, len(out))
	for i, c := range out {
		probs[i] = c.Probability
	}
	floats.Scale(1-weight, probs)

	found := false
	for i := range out {
		if out[i].Account == named {
			probs[i] += weight
			found = true
		}
		out[i].Probability = probs[i]
	}
	if !found {
		out = append(out, ScoredCandidate{Account: named, Probability: weight})
	}
	return out
}

// blendExternal applies the prediction to both sides.
func blendExternal(req DecodeRequest, ext ExternalPrediction) (debits, credits []ScoredCandidate) {
	debits = blendSide(req.Debits, ext.Debit, ext.Weight)
	credits = blendSide(req.Credits, ext.Credit, ext.Weight)
	return debits, credits
}
