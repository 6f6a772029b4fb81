package ledgerline

import (
	"context"
	"time"

	"github.com/etnz/ledgerline/predictor"
)

// DefaultMaxAlternates bounds the alternates list when the decoder is not
// configured otherwise.
const DefaultMaxAlternates = 4

// DefaultSolveTimeout bounds one combinatorial solve.
const DefaultSolveTimeout = 500 * time.Millisecond

// Decoder decodes requests into balanced decisions. It holds configuration
// only; decoding retains no state across requests, so a single Decoder is
// safe for concurrent use.
type Decoder struct {
	// Predictor, when set, fills in a request's missing external prediction.
	Predictor predictor.PairwisePredictor
	// PredictorWeight is the blend weight applied to predictions obtained
	// from Predictor. Ignored when the request already carries one.
	PredictorWeight float64
	// MaxAlternates bounds the ranked alternates list (primary excluded).
	MaxAlternates int
	// SolveTimeout bounds one combinatorial solve before falling back.
	SolveTimeout time.Duration
}

// NewDecoder returns a decoder with default bounds and no external predictor.
func NewDecoder() *Decoder {
	return &Decoder{
		MaxAlternates: DefaultMaxAlternates,
		SolveTimeout:  DefaultSolveTimeout,
	}
}

// Decode turns one request into a decision. It returns either a complete
// decision satisfying the balance invariants or an error, never a partial
// decision. The context only bounds the optional combinatorial solve and the
// optional external predictor call.
func (d *Decoder) Decode(ctx context.Context, req DecodeRequest) (*Decision, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ext := req.External
	if ext == nil && d.Predictor != nil && d.PredictorWeight > 0 {
		pair, err := d.Predictor.Predict(ctx, predictor.Transaction{
			ID:          req.ID,
			Description: req.Description,
			Amount:      req.Total,
			Currency:    req.Currency,
		})
		// A predictor failure is advisory: decode without it.
		if err == nil {
			// The decoder-level weight is configuration, not request data,
			// so it is clamped rather than rejected.
			weight := d.PredictorWeight
			if weight > 1 {
				weight = 1
			}
			ext = &ExternalPrediction{
				Debit:  AccountID(pair.Debit),
				Credit: AccountID(pair.Credit),
				Weight: weight,
			}
		}
	}

	debitPool, creditPool := req.Debits, req.Credits
	if ext != nil {
		debitPool, creditPool = blendExternal(req, *ext)
	}

	blocked := accountSet(req.Blocked)
	forcedDebit, forcedCredit := splitForced(req.Forced, debitPool, creditPool)
	debits, err := filterCandidates(Debit, debitPool, req.ThresholdDebit, forcedDebit, blocked, req.MaxKPerSide)
	if err != nil {
		return nil, err
	}
	credits, err := filterCandidates(Credit, creditPool, req.ThresholdCredit, forcedCredit, blocked, req.MaxKPerSide)
	if err != nil {
		return nil, err
	}

	strat := strategyFor(req.Strategy, d.SolveTimeout)
	dAlloc, cAlloc, used := strat.decode(ctx, req, debits, credits)

	decision := &Decision{
		Primary: assembleLines(dAlloc.cands, dAlloc.amounts, cAlloc.cands, cAlloc.amounts),
		Debug: DecisionDebug{
			DecoderUsed:  used,
			DebitScores:  scoreMap(debits),
			CreditScores: scoreMap(credits),
		},
	}
	max := d.MaxAlternates
	if max == 0 {
		max = DefaultMaxAlternates
	}
	decision.Alternates = rankAlternates(req, debits, credits, decision.Primary, max)
	return decision, nil
}

// splitForced scopes the request's forced set per side: an account scored on
// a side is forced on that side only. A forced account the scorer never saw on
// either side is assumed valid and forced on both, so it cannot silently
// disappear from the decision.
func splitForced(forced []AccountID, debits, credits []ScoredCandidate) (d, c map[AccountID]bool) {
	if len(forced) == 0 {
		return nil, nil
	}
	inDebit := make(map[AccountID]bool, len(debits))
	for _, cand := range debits {
		inDebit[cand.Account] = true
	}
	inCredit := make(map[AccountID]bool, len(credits))
	for _, cand := range credits {
		inCredit[cand.Account] = true
	}
	d = make(map[AccountID]bool, len(forced))
	c = make(map[AccountID]bool, len(forced))
	for _, id := range forced {
		switch {
		case inDebit[id] || inCredit[id]:
			if inDebit[id] {
				d[id] = true
			}
			if inCredit[id] {
				c[id] = true
			}
		default:
			d[id] = true
			c[id] = true
		}
	}
	return d, c
}

// scoreMap retains the filtered candidates' (post-blend) probabilities for
// the audit trail.
func scoreMap(cands []ScoredCandidate) map[AccountID]float64 {
	if len(cands) == 0 {
		return nil
	}
	m := make(map[AccountID]float64, len(cands))
	for _, c := range cands {
		m[c.Account] = c.Probability
	}
	return m
}
