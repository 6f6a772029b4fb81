package ledgerline

import "errors"

// Fatal decoding errors. They are reported per transaction and never abort a
// batch; the decoder returns either a complete, invariant-satisfying Decision
// or one of these, never a partial result.
var (
	// ErrInvalidTotal reports a request whose total is not strictly positive.
	ErrInvalidTotal = errors.New("total must be a strictly positive amount of minor units")

	// ErrEmptyCandidates reports a side with no scored candidates at all.
	// This is a data problem upstream, not a transient one.
	ErrEmptyCandidates = errors.New("no scored candidates for side")

	// ErrForceBlockConflict reports an account present in both the forced and
	// the blocked sets. The configuration is contradictory and is rejected
	// before any filtering happens.
	ErrForceBlockConflict = errors.New("account is both forced and blocked")
)
