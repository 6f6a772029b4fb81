package ledgerline

// Decoder names recorded in DecisionDebug. The combinatorial path may
// silently fall back, so audits and regression tests rely on this value
// rather than on the requested strategy.
const (
	DecoderGreedy         = "greedy"
	DecoderMinCost        = "mincost"
	DecoderGreedyFallback = "greedy_fallback"
)

// Allocation is one emitted bookkeeping line: an account, a side and a
// strictly positive amount of minor units.
type Allocation struct {
	Account AccountID `json:"account"`
	Side    Side      `json:"side"`
	Amount  int64     `json:"amount"`
}

// DecisionDebug retains per-candidate probabilities (after blending) and the
// decoder actually used, for audit and regression testing.
type DecisionDebug struct {
	DecoderUsed  string                `json:"decoder"`
	DebitScores  map[AccountID]float64 `json:"debit_scores,omitempty"`
	CreditScores map[AccountID]float64 `json:"credit_scores,omitempty"`
}

// Decision is the complete outcome of decoding one transaction: the chosen
// allocation, a ranked list of alternative full allocations, and debug
// metadata. A Decision always satisfies the balance invariants; a request
// that cannot be decoded produces an error instead.
type Decision struct {
	Primary    []Allocation   `json:"lines"`
	Alternates [][]Allocation `json:"alternates,omitempty"`
	Debug      DecisionDebug  `json:"debug"`
}

// SideTotal sums the primary amounts on one side.
func (d *Decision) SideTotal(side Side) int64 {
	var sum int64
	for _, a := range d.Primary {
		if a.Side == side {
			sum += a.Amount
		}
	}
	return sum
}

// Lines returns the primary allocations of one side, in emission order.
func (d *Decision) Lines(side Side) []Allocation {
	var out []Allocation
	for _, a := range d.Primary {
		if a.Side == side {
			out = append(out, a)
		}
	}
	return out
}
