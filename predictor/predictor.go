// Package predictor defines the capability interface for external
// single-pair predictors and its concrete adapters.
//
// A pairwise predictor looks at one transaction and names exactly one debit
// account and one credit account. The decoder blends that verdict into its
// scored candidates; how much it counts is the caller's blend weight, not the
// predictor's concern.
package predictor

import "context"

// Transaction is the minimal view of a transaction a predictor needs.
type Transaction struct {
	ID          string
	Description string
	// Amount is the transaction total in minor units.
	Amount   int64
	Currency string
}

// Pair is a predictor's verdict: one debit account and one credit account.
type Pair struct {
	Debit  string `json:"debit"`
	Credit string `json:"credit"`
}

// PairwisePredictor predicts the single most likely debit/credit account
// pair for a transaction. Implementations must be safe for concurrent use,
// since batches decode in parallel.
type PairwisePredictor interface {
	Predict(ctx context.Context, tx Transaction) (Pair, error)
}
