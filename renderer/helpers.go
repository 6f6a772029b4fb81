package renderer

import (
	"sort"

	"github.com/etnz/ledgerline"
)

// sortedAccounts returns the score map's keys in a stable order.
func sortedAccounts(scores map[ledgerline.AccountID]float64) []ledgerline.AccountID {
	ids := make([]ledgerline.AccountID, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
