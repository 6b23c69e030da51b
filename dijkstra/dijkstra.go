package dijkstra

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/goldrush/core"
)

// Tree is the single-source shortest-path tree rooted at Source.
//
// Dist[v] is the shortest distance Source→v (+Inf when unreachable) and
// Prev[v] is v's predecessor on that path (-1 for the source and for
// unreachable nodes). A Tree is immutable once built and safe for
// concurrent reads.
type Tree struct {
	Source int
	Dist   []float64
	Prev   []int
}

// NewTree runs Dijkstra from src over g's direct edges.
//
// Preconditions: g non-nil, 0 ≤ src < g.N(). Negative weights cannot occur
// (core.New rejects them), so no pre-scan is needed here.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func NewTree(g *core.Graph, src int) (*Tree, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.N()
	if src < 0 || src >= n {
		return nil, ErrSourceOutOfRange
	}

	// 2) Prepare state: dist=+Inf, prev=-1, visited=false.
	r := &runner{
		g:       g,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	var v int
	for v = 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[src] = 0

	// 3) Seed the heap with the source and run the main loop.
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: src, dist: 0})
	r.process()

	return &Tree{Source: src, Dist: r.dist, Prev: r.prev}, nil
}

// PathTo reconstructs the node sequence src..v inclusive by walking Prev.
// Returns nil when v is unreachable or out of range.
//
// Complexity: O(path length).
func (t *Tree) PathTo(v int) []int {
	if v < 0 || v >= len(t.Dist) || math.IsInf(t.Dist[v], 1) {
		return nil
	}

	// Walk backwards counting hops, then fill front-to-back.
	var (
		hops = 1
		u    = v
	)
	for u != t.Source {
		u = t.Prev[u]
		hops++
	}
	path := make([]int, hops)
	u = v
	for i := hops - 1; i >= 0; i-- {
		path[i] = u
		u = t.Prev[u]
	}

	return path
}

// runner holds the mutable state of a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// process repeatedly extracts the closest unvisited node and relaxes its
// outgoing edges. Stale heap entries (lazy decrease-key duplicates) are
// skipped via the visited slice.
func (r *runner) process() {
	var (
		item nodeItem
		u    int
	)
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(nodeItem)
		u = item.id
		if r.visited[u] {
			continue // stale duplicate
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax scans every node as a potential neighbor of u; the instance is a
// dense matrix, so adjacency enumeration is a row walk with +Inf entries
// marking absent edges.
func (r *runner) relax(u int) {
	var (
		n       = r.g.N()
		du      = r.dist[u]
		v       int
		w       float64
		newDist float64
	)
	for v = 0; v < n; v++ {
		if v == u || r.visited[v] {
			continue
		}
		w = r.g.Dist(u, v)
		if math.IsInf(w, 1) {
			continue // no direct edge
		}
		newDist = du + w
		if newDist >= r.dist[v] {
			continue // not strictly better; avoids duplicate pushes on ties
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}
