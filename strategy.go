package ledgerline

import (
	"context"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/etnz/ledgerline/mincost"
)

// sideAllocation pairs the candidates actually chosen for a side with their
// amounts. Both slices have the same length and every amount is positive.
type sideAllocation struct {
	cands   []ScoredCandidate
	amounts []int64
}

// strategy turns the two filtered candidate pools into one balanced
// allocation. Implementations are pure; the returned name is recorded in the
// decision debug metadata.
type strategy interface {
	decode(ctx context.Context, req DecodeRequest, debits, credits []ScoredCandidate) (d, c sideAllocation, used string)
}

// greedyStrategy decodes each side independently with largest-remainder
// rounding. Both sides target the same total, so cross-side balance holds by
// construction.
type greedyStrategy struct{}

func (greedyStrategy) decode(_ context.Context, req DecodeRequest, debits, credits []ScoredCandidate) (sideAllocation, sideAllocation, string) {
	d := greedySide(req, Debit, debits)
	c := greedySide(req, Credit, credits)
	return d, c, DecoderGreedy
}

// greedySide reduces the pool to the predicted line count, never dropping a
// forced account in the process, and decodes it.
func greedySide(req DecodeRequest, side Side, pool []ScoredCandidate) sideAllocation {
	k := req.predictedK(side, len(pool))
	forced := accountSet(req.Forced)
	chosen := pool
	if len(chosen) > k {
		chosen = truncateKeepingForced(pool, forced, k)
	}
	used, amounts := decodeSide(chosen, req.Total, forced)
	return sideAllocation{cands: used, amounts: amounts}
}

// flowStrategy formulates the joint assignment as a transportation problem
// and solves it as an integer min-cost flow within a bounded time budget.
// On timeout, solver failure or a degenerate result it falls back to the
// greedy strategy; the fallback is recorded in debug metadata, never
// surfaced as an error.
type flowStrategy struct {
	timeout time.Duration
}

// costScale converts log-probability costs to integers. Probabilities are
// floored at minProbability so costs stay finite.
const (
	costScale      = 1_000_000
	minProbability = 1e-9
	// deviationPenalty is the extra unit cost of allocating beyond a
	// candidate's share target. Expressed in the same log-probability scale.
	deviationPenalty = costScale
)

func (f flowStrategy) decode(ctx context.Context, req DecodeRequest, debits, credits []ScoredCandidate) (sideAllocation, sideAllocation, string) {
	timeout := f.timeout
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	d, c, err := solveTransport(ctx, req.Total, debits, credits)
	if err != nil || !keepsForced(req.Forced, d, c) {
		gd, gc, _ := greedyStrategy{}.decode(ctx, req, debits, credits)
		return gd, gc, DecoderGreedyFallback
	}
	return d, c, DecoderMinCost
}

// keepsForced reports whether every forced account that survived filtering
// received a positive amount. The flow solver may starve a forced account
// whose probability is low; that solution is rejected in favor of the greedy
// one rather than violating the force rule.
func keepsForced(forced []AccountID, d, c sideAllocation) bool {
	if len(forced) == 0 {
		return true
	}
	got := make(map[AccountID]bool, len(d.cands)+len(c.cands))
	for _, cand := range d.cands {
		got[cand.Account] = true
	}
	for _, cand := range c.cands {
		got[cand.Account] = true
	}
	for _, id := range forced {
		if !got[id] {
			return false
		}
	}
	return true
}

// solveTransport builds and solves the flow network:
//
//	source -> one node per debit candidate -> one node per credit candidate -> sink
//
// Every source->debit and credit->sink arc is split in two: a cheap arc with
// the capacity of the candidate's share target, and an overflow arc with a
// deviation penalty. Unit costs derive from -log(probability), so cheaper
// arcs favor higher-confidence accounts.
func solveTransport(ctx context.Context, total int64, debits, credits []ScoredCandidate) (sideAllocation, sideAllocation, error) {
	nd, nc := len(debits), len(credits)
	// Node layout: 0 source, 1..nd debits, nd+1..nd+nc credits, last sink.
	source := 0
	sink := nd + nc + 1
	g := mincost.NewGraph(nd + nc + 2)

	dArcs := addSideArcs(g, total, debits, func(i int) (int, int) { return source, 1 + i })
	cArcs := addSideArcs(g, total, credits, func(j int) (int, int) { return nd + 1 + j, sink })
	for i := 0; i < nd; i++ {
		for j := 0; j < nc; j++ {
			g.AddArc(1+i, nd+1+j, total, 0)
		}
	}

	if _, err := g.Solve(ctx, source, sink, total); err != nil {
		return sideAllocation{}, sideAllocation{}, err
	}

	d := collectFlows(g, debits, dArcs)
	c := collectFlows(g, credits, cArcs)
	return d, c, nil
}

// addSideArcs adds the split base/overflow arc pair per candidate and returns
// the arc handles, two per candidate.
func addSideArcs(g *mincost.Graph, total int64, cands []ScoredCandidate, ends func(int) (int, int)) [][2]int {
	shares := normalizeShares(cands)
	handles := make([][2]int, len(cands))
	for i, cand := range cands {
		from, to := ends(i)
		cost := unitCost(cand.Probability)
		target := shares[i].Mul(decimal.NewFromInt(total)).Floor().IntPart()
		if target > total {
			target = total
		}
		handles[i][0] = g.AddArc(from, to, target, cost)
		handles[i][1] = g.AddArc(from, to, total-target, cost+deviationPenalty)
	}
	return handles
}

// collectFlows reads back per-candidate amounts, dropping zero-flow lines.
func collectFlows(g *mincost.Graph, cands []ScoredCandidate, handles [][2]int) sideAllocation {
	var out sideAllocation
	for i, h := range handles {
		amount := g.ArcFlow(h[0]) + g.ArcFlow(h[1])
		if amount == 0 {
			continue
		}
		out.cands = append(out.cands, cands[i])
		out.amounts = append(out.amounts, amount)
	}
	return out
}

// unitCost maps a probability to a non-negative integer arc cost.
func unitCost(p float64) int64 {
	if p < minProbability {
		p = minProbability
	}
	if p > 1 {
		p = 1
	}
	return int64(-math.Log(p) * costScale)
}

// strategyFor returns the strategy implementation for a request selector.
func strategyFor(name StrategyName, timeout time.Duration) strategy {
	if name == StrategyCombinatorial {
		return flowStrategy{timeout: timeout}
	}
	return greedyStrategy{}
}
