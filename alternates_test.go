package ledgerline

import (
	"reflect"
	"testing"
)

func TestRankAlternates(t *testing.T) {
	req := DecodeRequest{ID: "t1", Total: 100, MaxKPerSide: 4}
	debits := []ScoredCandidate{
		candShare("Supplies", 0.8, "0.8"),
		candShare("Equipment", 0.2, "0.2"),
	}
	credits := []ScoredCandidate{
		candShare("Bank", 0.9, "0.9"),
		candShare("Cash", 0.1, "0.1"),
	}
	// Primary uses both candidates on both sides; the three other line-count
	// combinations are the candidate alternates.
	primary := assembleLines(debits, []int64{80, 20}, credits, []int64{90, 10})

	alts := rankAlternates(req, debits, credits, primary, 4)
	if len(alts) != 3 {
		t.Fatalf("got %d alternates, want 3", len(alts))
	}

	// Ranked by joint probability: {S|B} 0.72, {S,E|B} 0.144, {S|B,C} 0.072.
	wantFirst := []Allocation{
		{Account: "Supplies", Side: Debit, Amount: 100},
		{Account: "Bank", Side: Credit, Amount: 100},
	}
	if !reflect.DeepEqual(alts[0], wantFirst) {
		t.Errorf("first alternate = %v, want %v", alts[0], wantFirst)
	}
	wantSecond := []Allocation{
		{Account: "Supplies", Side: Debit, Amount: 80},
		{Account: "Equipment", Side: Debit, Amount: 20},
		{Account: "Bank", Side: Credit, Amount: 100},
	}
	if !reflect.DeepEqual(alts[1], wantSecond) {
		t.Errorf("second alternate = %v, want %v", alts[1], wantSecond)
	}
}

func TestRankAlternates_Bounds(t *testing.T) {
	req := DecodeRequest{ID: "t2", Total: 100, MaxKPerSide: 4}
	debits := []ScoredCandidate{candShare("Supplies", 0.8, "0.8"), candShare("Equipment", 0.2, "0.2")}
	credits := []ScoredCandidate{candShare("Bank", 0.9, "0.9"), candShare("Cash", 0.1, "0.1")}
	primary := assembleLines(debits[:1], []int64{100}, credits[:1], []int64{100})

	t.Run("max zero yields none", func(t *testing.T) {
		if got := rankAlternates(req, debits, credits, primary, 0); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("truncated to max", func(t *testing.T) {
		if got := rankAlternates(req, debits, credits, primary, 1); len(got) != 1 {
			t.Errorf("got %d alternates, want 1", len(got))
		}
	})
}

// A tiny total collapses every combination to a single line per side, so all
// of them deduplicate into the primary's own account set.
func TestRankAlternates_Dedup(t *testing.T) {
	req := DecodeRequest{ID: "t3", Total: 1, MaxKPerSide: 4}
	debits := []ScoredCandidate{cand("Supplies", 0.8), cand("Equipment", 0.2)}
	credits := []ScoredCandidate{cand("Bank", 0.9)}
	primary := assembleLines(debits[:1], []int64{1}, credits[:1], []int64{1})

	if got := rankAlternates(req, debits, credits, primary, 4); len(got) != 0 {
		t.Errorf("got %v, want no alternates", got)
	}
}

func TestAllocationKey(t *testing.T) {
	a := []Allocation{
		{Account: "Cash", Side: Debit, Amount: 70},
		{Account: "Bank", Side: Credit, Amount: 70},
	}
	b := []Allocation{
		{Account: "Bank", Side: Credit, Amount: 30},
		{Account: "Cash", Side: Debit, Amount: 30},
	}
	if allocationKey(a) != allocationKey(b) {
		t.Error("keys must ignore amounts and line order")
	}
	c := []Allocation{{Account: "Cash", Side: Credit, Amount: 70}}
	if allocationKey(a) == allocationKey(c) {
		t.Error("keys must distinguish sides")
	}
}
