package ledgerline

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeShares(t *testing.T) {
	tests := []struct {
		name  string
		cands []ScoredCandidate
		want  []string
	}{
		{
			name:  "single candidate takes everything",
			cands: []ScoredCandidate{cand("Cash", 0.5)},
			want:  []string{"1"},
		},
		{
			name: "shares rescaled over survivors",
			cands: []ScoredCandidate{
				candShare("Cash", 0.7, "2"),
				candShare("Bank", 0.2, "1"),
				candShare("Fees", 0.1, "1"),
			},
			want: []string{"0.5", "0.25", "0.25"},
		},
		{
			name:  "missing shares fall back to uniform",
			cands: []ScoredCandidate{cand("Cash", 0.7), cand("Bank", 0.3)},
			want:  []string{"0.5", "0.5"},
		},
		{
			name: "negative share treated as zero",
			cands: []ScoredCandidate{
				candShare("Cash", 0.7, "-1"),
				candShare("Bank", 0.3, "1"),
			},
			want: []string{"0", "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeShares(tt.cands)
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeShares() returned %d shares, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].String() != want {
					t.Errorf("share[%d] = %s, want %s", i, got[i], want)
				}
			}
		})
	}
}

// The last share absorbs the rounding residue, so the sum is exactly one even
// for fractions with no finite decimal expansion.
func TestNormalizeShares_ExactSum(t *testing.T) {
	tests := []struct {
		name  string
		cands []ScoredCandidate
	}{
		{
			name:  "uniform thirds",
			cands: []ScoredCandidate{cand("A", 0.5), cand("B", 0.3), cand("C", 0.2)},
		},
		{
			name: "sevenths",
			cands: []ScoredCandidate{
				candShare("A", 0.5, "1"),
				candShare("B", 0.3, "2"),
				candShare("C", 0.2, "4"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sum decimal.Decimal
			for _, s := range normalizeShares(tt.cands) {
				if s.IsNegative() {
					t.Errorf("negative share %s", s)
				}
				sum = sum.Add(s)
			}
			if !sum.Equal(decimalOne) {
				t.Errorf("sum of shares = %s, want exactly 1", sum)
			}
		})
	}
}
