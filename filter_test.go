package ledgerline

import (
	"errors"
	"reflect"
	"testing"
)

func TestFilterCandidates(t *testing.T) {
	tests := []struct {
		name      string
		pool      []ScoredCandidate
		threshold float64
		forced    []AccountID
		blocked   []AccountID
		maxK      int
		want      []AccountID
	}{
		{
			name: "sorted by descending probability",
			pool: []ScoredCandidate{cand("Bank", 0.3), cand("Cash", 0.7)},
			maxK: 4,
			want: []AccountID{"Cash", "Bank"},
		},
		{
			name: "ties broken by ascending account id",
			pool: []ScoredCandidate{cand("Zulu", 0.5), cand("Alpha", 0.5)},
			maxK: 4,
			want: []AccountID{"Alpha", "Zulu"},
		},
		{
			name:    "blocked accounts removed",
			pool:    []ScoredCandidate{cand("Cash", 0.7), cand("Bank", 0.3)},
			blocked: []AccountID{"Cash"},
			maxK:    4,
			want:    []AccountID{"Bank"},
		},
		{
			name:      "threshold drops low scores",
			pool:      []ScoredCandidate{cand("Cash", 0.7), cand("Bank", 0.3)},
			threshold: 0.5,
			maxK:      4,
			want:      []AccountID{"Cash"},
		},
		{
			name:      "forced kept below threshold with its own probability",
			pool:      []ScoredCandidate{cand("Office", 0.9), cand("Tax", 0.01)},
			threshold: 0.5,
			forced:    []AccountID{"Tax"},
			maxK:      4,
			want:      []AccountID{"Office", "Tax"},
		},
		{
			name:   "forced absent from pool injected with probability 1",
			pool:   []ScoredCandidate{cand("Office", 0.9)},
			forced: []AccountID{"Vat"},
			maxK:   4,
			want:   []AccountID{"Vat", "Office"},
		},
		{
			name: "duplicate accounts deduplicated",
			pool: []ScoredCandidate{cand("Cash", 0.7), cand("Cash", 0.6), cand("Bank", 0.3)},
			maxK: 4,
			want: []AccountID{"Cash", "Bank"},
		},
		{
			name:      "threshold excluding everything falls back to the best",
			pool:      []ScoredCandidate{cand("Cash", 0.4), cand("Bank", 0.3)},
			threshold: 0.9,
			maxK:      4,
			want:      []AccountID{"Cash"},
		},
		{
			name:   "truncation keeps forced over better non-forced",
			pool:   []ScoredCandidate{cand("Cash", 0.9), cand("Bank", 0.8), cand("Tax", 0.1)},
			forced: []AccountID{"Tax"},
			maxK:   2,
			want:   []AccountID{"Cash", "Tax"},
		},
		{
			name: "zero probability dropped even under a zero threshold",
			pool: []ScoredCandidate{cand("Cash", 0), cand("Bank", 0.3)},
			maxK: 4,
			want: []AccountID{"Bank"},
		},
		{
			name: "truncation without forces keeps the best",
			pool: []ScoredCandidate{cand("Cash", 0.9), cand("Bank", 0.8), cand("Fees", 0.1)},
			maxK: 2,
			want: []AccountID{"Cash", "Bank"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := filterCandidates(Debit, tt.pool, tt.threshold, accountSet(tt.forced), accountSet(tt.blocked), tt.maxK)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(accounts(got), tt.want) {
				t.Errorf("filterCandidates() = %v, want %v", accounts(got), tt.want)
			}
		})
	}
}

func TestFilterCandidates_Errors(t *testing.T) {
	t.Run("empty pool is fatal", func(t *testing.T) {
		_, err := filterCandidates(Credit, nil, 0, nil, nil, 4)
		if !errors.Is(err, ErrEmptyCandidates) {
			t.Errorf("got %v, want ErrEmptyCandidates", err)
		}
	})

	t.Run("everything blocked is fatal", func(t *testing.T) {
		pool := []ScoredCandidate{cand("Cash", 0.7), cand("Bank", 0.3)}
		blocked := accountSet([]AccountID{"Cash", "Bank"})
		_, err := filterCandidates(Debit, pool, 0, nil, blocked, 4)
		if !errors.Is(err, ErrEmptyCandidates) {
			t.Errorf("got %v, want ErrEmptyCandidates", err)
		}
	})
}

func TestFilterCandidates_InjectedForcedProbability(t *testing.T) {
	pool := []ScoredCandidate{cand("Office", 0.9)}
	got, err := filterCandidates(Debit, pool, 0, accountSet([]AccountID{"Vat"}), nil, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Account != "Vat" || got[0].Probability != 1 {
		t.Errorf("injected forced = %+v, want Vat with probability 1", got[0])
	}
}
