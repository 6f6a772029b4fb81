package mincost

import (
	"context"
	"errors"
	"testing"
)

func TestSolve(t *testing.T) {
	// Two parallel routes from 0 to 3. The cheap one saturates first.
	//
	//	0 --(cap 5, cost 1)--> 1 --(cap 5, cost 1)--> 3
	//	0 --(cap 10, cost 3)-> 2 --(cap 10, cost 1)-> 3
	g := NewGraph(4)
	cheapIn := g.AddArc(0, 1, 5, 1)
	dearIn := g.AddArc(0, 2, 10, 3)
	cheapOut := g.AddArc(1, 3, 5, 1)
	dearOut := g.AddArc(2, 3, 10, 1)

	cost, err := g.Solve(context.Background(), 0, 3, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 units at cost 2, 3 units at cost 4.
	if want := int64(5*2 + 3*4); cost != want {
		t.Errorf("cost = %d, want %d", cost, want)
	}

	flows := map[string]struct {
		handle int
		want   int64
	}{
		"cheap in":  {cheapIn, 5},
		"cheap out": {cheapOut, 5},
		"dear in":   {dearIn, 3},
		"dear out":  {dearOut, 3},
	}
	for name, f := range flows {
		if got := g.ArcFlow(f.handle); got != f.want {
			t.Errorf("%s flow = %d, want %d", name, got, f.want)
		}
	}
}

func TestSolve_Infeasible(t *testing.T) {
	g := NewGraph(2)
	g.AddArc(0, 1, 3, 1)
	if _, err := g.Solve(context.Background(), 0, 1, 5); !errors.Is(err, ErrInfeasible) {
		t.Errorf("got %v, want ErrInfeasible", err)
	}
}

func TestSolve_Canceled(t *testing.T) {
	g := NewGraph(2)
	g.AddArc(0, 1, 10, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := g.Solve(ctx, 0, 1, 5); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestAddArc_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative cost")
		}
	}()
	NewGraph(2).AddArc(0, 1, 1, -1)
}
