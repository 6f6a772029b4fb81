// Package ledgerline turns probabilistic per-account predictions into a
// balanced set of double-entry bookkeeping lines.
//
// A scoring stage (external to this package) looks at a transaction and
// produces, for each side of the entry, a list of candidate accounts with a
// selection probability and an estimated share of the side's total. This
// package owns everything after that point: filtering candidates against
// thresholds and force/block rules, normalizing shares, and decoding the
// result into integer minor-unit amounts whose debit total exactly equals
// the credit total.
//
// Decoding a request is a pure computation: no I/O, no retained state, and a
// deterministic result for identical inputs. The only blocking call is the
// optional combinatorial solver, which is bounded by a timeout and falls back
// to the greedy decoder.
package ledgerline
