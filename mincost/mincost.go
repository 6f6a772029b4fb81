// Package mincost solves small integer minimum-cost flow problems.
//
// It implements the successive shortest path algorithm with node potentials:
// as long as the requested flow value is not reached, a cheapest augmenting
// path is found with Dijkstra on reduced costs and saturated in one step.
// Arc costs must be non-negative. The graphs built by the decoder are tiny
// (a few dozen nodes), so no attention is paid to asymptotic cleverness.
package mincost

import (
	"container/heap"
	"context"
	"errors"
	"fmt"
	"math"
)

// ErrInfeasible reports that the requested flow value cannot be routed.
var ErrInfeasible = errors.New("mincost: requested flow value is infeasible")

type arc struct {
	to   int
	cap  int64 // residual capacity
	cost int64
	rev  int // index of the reverse arc in graph[to]
}

// Graph is a directed graph under construction. The zero value is not usable;
// create one with NewGraph.
type Graph struct {
	adj [][]arc
	// ids remembers (node, index) per added arc so flow can be read back.
	ids []struct{ node, idx int }
}

// NewGraph creates a graph with n nodes, numbered 0..n-1.
func NewGraph(n int) *Graph {
	return &Graph{adj: make([][]arc, n)}
}

// AddArc adds a directed arc and returns its handle for ArcFlow.
// Capacity must be non-negative and cost must be non-negative.
func (g *Graph) AddArc(from, to int, capacity, cost int64) int {
	if capacity < 0 || cost < 0 {
		panic(fmt.Sprintf("mincost: invalid arc cap=%d cost=%d", capacity, cost))
	}
	g.adj[from] = append(g.adj[from], arc{to: to, cap: capacity, cost: cost, rev: len(g.adj[to])})
	g.adj[to] = append(g.adj[to], arc{to: from, cap: 0, cost: -cost, rev: len(g.adj[from]) - 1})
	g.ids = append(g.ids, struct{ node, idx int }{from, len(g.adj[from]) - 1})
	return len(g.ids) - 1
}

// ArcFlow returns the flow pushed through the arc handle returned by AddArc.
// Only meaningful after a successful Solve.
func (g *Graph) ArcFlow(handle int) int64 {
	id := g.ids[handle]
	a := g.adj[id.node][id.idx]
	// Flow equals the residual capacity of the reverse arc.
	return g.adj[a.to][a.rev].cap
}

// Solve routes exactly want units of flow from s to t and returns the total
// cost. The context is checked between augmentations; cancellation aborts
// with the context's error.
func (g *Graph) Solve(ctx context.Context, s, t int, want int64) (int64, error) {
	n := len(g.adj)
	potential := make([]int64, n)
	dist := make([]int64, n)
	visited := make([]bool, n)
	prevNode := make([]int, n)
	prevArc := make([]int, n)

	var totalCost int64
	for want > 0 {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		// Dijkstra on reduced costs.
		for i := range dist {
			dist[i] = math.MaxInt64
			visited[i] = false
		}
		dist[s] = 0
		pq := &nodeQueue{{node: s, dist: 0}}
		for pq.Len() > 0 {
			cur := heap.Pop(pq).(nodeDist)
			u := cur.node
			if visited[u] {
				continue
			}
			visited[u] = true
			for i, a := range g.adj[u] {
				if a.cap == 0 || visited[a.to] {
					continue
				}
				nd := dist[u] + a.cost + potential[u] - potential[a.to]
				if nd < dist[a.to] {
					dist[a.to] = nd
					prevNode[a.to] = u
					prevArc[a.to] = i
					heap.Push(pq, nodeDist{node: a.to, dist: nd})
				}
			}
		}
		if !visited[t] {
			return 0, ErrInfeasible
		}
		for i := range potential {
			if visited[i] {
				potential[i] += dist[i]
			}
		}

		// Saturate the path.
		push := want
		for v := t; v != s; v = prevNode[v] {
			a := g.adj[prevNode[v]][prevArc[v]]
			if a.cap < push {
				push = a.cap
			}
		}
		for v := t; v != s; v = prevNode[v] {
			a := &g.adj[prevNode[v]][prevArc[v]]
			a.cap -= push
			g.adj[v][a.rev].cap += push
			totalCost += push * a.cost
		}
		want -= push
	}
	return totalCost, nil
}

type nodeDist struct {
	node int
	dist int64
}

type nodeQueue []nodeDist

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(nodeDist)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
