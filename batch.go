package ledgerline

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// BatchResult is the per-transaction outcome of a batch decode. Exactly one
// of Decision and Err is set.
type BatchResult struct {
	ID       string
	Decision *Decision
	Err      error
}

// defaultBatchWorkers bounds the decoding parallelism when the caller does
// not care.
const defaultBatchWorkers = 8

// DecodeAll decodes a batch of independent requests in parallel and returns
// one result per request, in input order. A fatal error on one transaction
// never aborts the batch. Failures and combinatorial fallbacks are logged on
// log; pass zerolog.Nop() to silence.
func (d *Decoder) DecodeAll(ctx context.Context, log zerolog.Logger, reqs []DecodeRequest) []BatchResult {
	return d.decodeAll(ctx, log, reqs, defaultBatchWorkers)
}

func (d *Decoder) decodeAll(ctx context.Context, log zerolog.Logger, reqs []DecodeRequest, workers int) []BatchResult {
	if len(reqs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(reqs) {
		workers = len(reqs)
	}

	results := make([]BatchResult, len(reqs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range reqs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			req := reqs[i]
			decision, err := d.Decode(ctx, req)
			results[i] = BatchResult{ID: req.ID, Decision: decision, Err: err}
			switch {
			case err != nil:
				log.Warn().Str("transaction", req.ID).Err(err).Msg("decode failed")
			case decision.Debug.DecoderUsed == DecoderGreedyFallback:
				log.Info().Str("transaction", req.ID).Msg("combinatorial solve fell back to greedy")
			}
		}(i)
	}
	wg.Wait()
	return results
}
