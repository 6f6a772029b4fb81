package predictor

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Static predicts pairs from a fixed table of description keywords. It backs
// tests and offline runs where no model is reachable.
type Static struct {
	// Rules maps a lowercase description substring to its pair. When several
	// keywords match, the lexicographically smallest keyword wins, so the
	// outcome does not depend on map iteration order.
	Rules map[string]Pair
	// Default, when set, answers for transactions no rule matches.
	Default *Pair
}

// Predict implements PairwisePredictor.
func (s *Static) Predict(_ context.Context, tx Transaction) (Pair, error) {
	desc := strings.ToLower(tx.Description)
	keywords := make([]string, 0, len(s.Rules))
	for kw := range s.Rules {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return s.Rules[kw], nil
		}
	}
	if s.Default != nil {
		return *s.Default, nil
	}
	return Pair{}, fmt.Errorf("no rule matches transaction %q", tx.ID)
}
