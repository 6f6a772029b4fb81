package ledgerline

import (
	"fmt"
	"sort"
)

// filterCandidates applies block rules, the probability threshold and force
// rules to one side's scored pool, and returns the surviving candidates
// ordered by descending probability (ties broken by ascending account id, so
// the order is stable across runs).
//
// A side can never come out empty: when the threshold excludes everything and
// nothing is forced, the single best-scored candidate is retained anyway.
// Only an empty input pool is fatal.
func filterCandidates(side Side, pool []ScoredCandidate, threshold float64, forced, blocked map[AccountID]bool, maxK int) ([]ScoredCandidate, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("%s: %w", side, ErrEmptyCandidates)
	}

	kept := make([]ScoredCandidate, 0, len(pool))
	seen := make(map[AccountID]bool, len(pool))
	for _, c := range pool {
		if blocked[c.Account] || seen[c.Account] {
			continue
		}
		seen[c.Account] = true
		// A zero probability means the account cannot appear at all; a full
		// weight external blend zeroes every other candidate this way.
		if (c.Probability > 0 && c.Probability >= threshold) || forced[c.Account] {
			kept = append(kept, c)
		}
	}

	// Forced accounts absent from the scored pool are assumed valid external
	// identifiers and join with probability 1 and no share estimate.
	missing := make([]AccountID, 0, len(forced))
	for id := range forced {
		if !seen[id] && !blocked[id] {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	for _, id := range missing {
		kept = append(kept, ScoredCandidate{Account: id, Probability: 1})
	}

	if len(kept) == 0 {
		// Threshold excluded everything: fall back to the best original
		// candidate that is not blocked.
		best, ok := bestCandidate(pool, blocked)
		if !ok {
			return nil, fmt.Errorf("%s: all candidates blocked: %w", side, ErrEmptyCandidates)
		}
		kept = append(kept, best)
	}

	sortCandidates(kept)

	if len(kept) > maxK {
		kept = truncateKeepingForced(kept, forced, maxK)
	}
	return kept, nil
}

// sortCandidates orders by descending probability, ties by ascending account
// id for determinism.
func sortCandidates(cands []ScoredCandidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Probability != cands[j].Probability {
			return cands[i].Probability > cands[j].Probability
		}
		return cands[i].Account < cands[j].Account
	})
}

// bestCandidate returns the highest-probability unblocked candidate.
func bestCandidate(pool []ScoredCandidate, blocked map[AccountID]bool) (ScoredCandidate, bool) {
	var best ScoredCandidate
	found := false
	for _, c := range pool {
		if blocked[c.Account] {
			continue
		}
		if !found || c.Probability > best.Probability ||
			(c.Probability == best.Probability && c.Account < best.Account) {
			best, found = c, true
		}
	}
	return best, found
}

// truncateKeepingForced drops the lowest-probability non-forced entries first.
// When forced accounts alone exceed maxK, the best maxK of them are kept so
// the per-side line bound always holds.
func truncateKeepingForced(cands []ScoredCandidate, forced map[AccountID]bool, maxK int) []ScoredCandidate {
	kept := make([]ScoredCandidate, 0, maxK)
	// First pass: every forced entry, in order.
	for _, c := range cands {
		if forced[c.Account] && len(kept) < maxK {
			kept = append(kept, c)
		}
	}
	// Second pass: fill the remainder with the best non-forced entries.
	for _, c := range cands {
		if len(kept) == maxK {
			break
		}
		if !forced[c.Account] {
			kept = append(kept, c)
		}
	}
	sortCandidates(kept)
	return kept
}
