package ledgerline

import (
	"math"
	"reflect"
	"testing"
)

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-12 }

func TestBlendSide(t *testing.T) {
	pool := []ScoredCandidate{cand("Supplies", 0.8), cand("Equipment", 0.2)}

	t.Run("weight zero is a no-op", func(t *testing.T) {
		got := blendSide(pool, "Supplies", 0)
		if !reflect.DeepEqual(got, pool) {
			t.Errorf("blendSide(w=0) = %v, want unchanged pool", got)
		}
	})

	t.Run("half blend moves the named account toward one", func(t *testing.T) {
		got := blendSide(pool, "Supplies", 0.5)
		if !approxEq(got[0].Probability, 0.9) {
			t.Errorf("named probability = %v, want 0.9", got[0].Probability)
		}
		if !approxEq(got[1].Probability, 0.1) {
			t.Errorf("other probability = %v, want 0.1", got[1].Probability)
		}
	})

	t.Run("full weight collapses to the named account", func(t *testing.T) {
		got := blendSide(pool, "Equipment", 1)
		if got[0].Probability != 0 {
			t.Errorf("other probability = %v, want 0", got[0].Probability)
		}
		if got[1].Probability != 1 {
			t.Errorf("named probability = %v, want 1", got[1].Probability)
		}
	})

	t.Run("unknown named account injected", func(t *testing.T) {
		got := blendSide(pool, "Travel", 0.3)
		if len(got) != 3 {
			t.Fatalf("got %d candidates, want 3", len(got))
		}
		last := got[2]
		if last.Account != "Travel" || !approxEq(last.Probability, 0.3) {
			t.Errorf("injected candidate = %+v, want Travel with probability 0.3", last)
		}
	})

	t.Run("input pool never mutated", func(t *testing.T) {
		before := cloneCandidates(pool)
		blendSide(pool, "Supplies", 0.7)
		if !reflect.DeepEqual(pool, before) {
			t.Errorf("pool mutated: %v, want %v", pool, before)
		}
	})
}
