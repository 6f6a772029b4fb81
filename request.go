package ledgerline

import (
	"fmt"
)

// StrategyName selects the decoding strategy for a request.
type StrategyName string

const (
	// StrategyGreedy uses largest-remainder rounding only.
	StrategyGreedy StrategyName = "greedy"
	// StrategyCombinatorial tries the min-cost flow balancer first and falls
	// back to the greedy decoder on failure or timeout.
	StrategyCombinatorial StrategyName = "combinatorial"
)

// ParseStrategyName parses a strategy selector, defaulting to greedy for "".
func ParseStrategyName(v string) (StrategyName, error) {
	switch StrategyName(v) {
	case "":
		return StrategyGreedy, nil
	case StrategyGreedy, StrategyCombinatorial:
		return StrategyName(v), nil
	}
	return StrategyGreedy, fmt.Errorf("invalid strategy %q: must be %q or %q", v, StrategyGreedy, StrategyCombinatorial)
}

// ExternalPrediction is the verdict of an external single-pair predictor:
// one debit account, one credit account, and the weight with which to blend
// it into the scored candidates. Weight 0 is a no-op; weight 1 collapses each
// side to the named account.
type ExternalPrediction struct {
	Debit  AccountID `json:"debit"`
	Credit AccountID `json:"credit"`
	Weight float64   `json:"weight"`
}

// DecodeRequest carries everything needed to decode one transaction.
// It is constructed once from upstream scores, consumed by exactly one decode
// call, and discarded; the decoder derives new slices and never mutates it.
type DecodeRequest struct {
	// ID identifies the transaction, for reporting only.
	ID string
	// Description is the free-text transaction description. The decoder only
	// hands it to the optional pairwise predictor; rule matching against it
	// happens upstream.
	Description string
	// Total is the transaction total in minor units. Strictly positive.
	Total int64
	// Currency is the ISO code of Total, for display only.
	Currency string

	Debits  []ScoredCandidate
	Credits []ScoredCandidate

	// PredictedKDebit and PredictedKCredit are the line counts the scoring
	// stage expects per side. They are clamped to [1, MaxKPerSide].
	PredictedKDebit  int
	PredictedKCredit int
	// MaxKPerSide bounds the number of lines emitted per side.
	MaxKPerSide int

	ThresholdDebit  float64
	ThresholdCredit float64

	// Forced accounts are always retained on the side they are scored for,
	// even below threshold. Blocked accounts are always removed. An account in
	// both sets is a contradiction and fails validation.
	Forced  []AccountID
	Blocked []AccountID

	// External, when set, is blended into candidate probabilities before
	// filtering. When nil and the decoder carries a PairwisePredictor, the
	// predictor fills it in.
	External *ExternalPrediction

	Strategy StrategyName
}

// Validate rejects a request that can never produce a balanced decision.
// It checks only what is fatal; per-side candidate filtering happens later.
func (r DecodeRequest) Validate() error {
	if r.Total <= 0 {
		return fmt.Errorf("transaction %q: total %d: %w", r.ID, r.Total, ErrInvalidTotal)
	}
	if r.MaxKPerSide < 1 {
		return fmt.Errorf("transaction %q: max lines per side %d: must be at least 1", r.ID, r.MaxKPerSide)
	}
	blocked := accountSet(r.Blocked)
	for _, id := range r.Forced {
		if blocked[id] {
			return fmt.Errorf("transaction %q: account %q: %w", r.ID, id, ErrForceBlockConflict)
		}
	}
	if ext := r.External; ext != nil {
		if ext.Weight < 0 || ext.Weight > 1 {
			return fmt.Errorf("transaction %q: external weight %v: must be in [0,1]", r.ID, ext.Weight)
		}
	}
	if len(r.Debits) == 0 {
		return fmt.Errorf("transaction %q: %s: %w", r.ID, Debit, ErrEmptyCandidates)
	}
	if len(r.Credits) == 0 {
		return fmt.Errorf("transaction %q: %s: %w", r.ID, Credit, ErrEmptyCandidates)
	}
	return nil
}

// predictedK returns the clamped predicted line count for a side of n
// filtered candidates. A request that does not predict a count uses every
// filtered candidate.
func (r DecodeRequest) predictedK(side Side, n int) int {
	k := r.PredictedKDebit
	if side == Credit {
		k = r.PredictedKCredit
	}
	if k < 1 {
		k = n
	}
	if k > r.MaxKPerSide {
		k = r.MaxKPerSide
	}
	if k > n {
		k = n
	}
	return k
}
