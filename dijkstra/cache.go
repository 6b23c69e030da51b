package dijkstra

import (
	"math"
	"sort"
	"sync"

	"github.com/katalvlaran/goldrush/core"
)

// Cache precomputes and memoizes every shortest-path query the goldrush
// search operators issue, so that no O(V log V) work ever happens inside a
// mutation hot loop.
//
// Built once per instance via NewCache; afterwards it is logically
// read-only. Lazily memoized per-source trees are guarded by an RWMutex so
// independent solver restarts may share one Cache across goroutines.
type Cache struct {
	g     *core.Graph
	depot *Tree

	mu    sync.RWMutex
	trees []*Tree // trees[src], nil until first Between query from src

	// near[v] lists every node except v and the depot, ordered by direct
	// distance from v (missing edges sort last). Precomputed once.
	near [][]int
}

// NewCache eagerly builds the depot tree and the per-node neighbor lists.
//
// Fails with ErrUnreachableNode if any node has no path from the depot —
// surfaced here, before any search begins, never mid-mutation.
//
// Complexity: O(V² log V) time, O(V²) space.
func NewCache(g *core.Graph) (*Cache, error) {
	// Stage 1: depot tree + reachability audit.
	depot, err := NewTree(g, core.Depot)
	if err != nil {
		return nil, err
	}
	n := g.N()
	var v int
	for v = 0; v < n; v++ {
		if math.IsInf(depot.Dist[v], 1) {
			return nil, ErrUnreachableNode
		}
	}

	// Stage 2: sorted neighbor lists for k-nearest queries.
	near := make([][]int, n)
	var u int
	for v = 0; v < n; v++ {
		row := make([]int, 0, n-1)
		for u = 0; u < n; u++ {
			if u == v || u == core.Depot {
				continue
			}
			row = append(row, u)
		}
		src := v // capture for the comparator
		sort.SliceStable(row, func(i, j int) bool {
			return g.Dist(src, row[i]) < g.Dist(src, row[j])
		})
		near[v] = row
	}

	c := &Cache{
		g:     g,
		depot: depot,
		trees: make([]*Tree, n),
		near:  near,
	}
	c.trees[core.Depot] = depot

	return c, nil
}

// Graph returns the instance this cache was built for.
func (c *Cache) Graph() *core.Graph { return c.g }

// PathFromDepot returns the cached shortest path depot→v (inclusive of both
// endpoints) and its distance. The path slice is shared; callers must not
// mutate it.
//
// Complexity: O(path length).
func (c *Cache) PathFromDepot(v int) ([]int, float64) {
	return c.depot.PathTo(v), c.depot.Dist[v]
}

// PathToDepot returns the shortest path v→depot and its distance. Instances
// are symmetric, so this is the reversed depot path; the reversal allocates
// a fresh slice.
//
// Complexity: O(path length).
func (c *Cache) PathToDepot(v int) ([]int, float64) {
	fwd := c.depot.PathTo(v)
	if fwd == nil {
		return nil, math.Inf(1)
	}
	rev := make([]int, len(fwd))
	for i, u := range fwd {
		rev[len(fwd)-1-i] = u
	}

	return rev, c.depot.Dist[v]
}

// DistFromDepot returns the shortest distance depot→v in O(1).
func (c *Cache) DistFromDepot(v int) float64 {
	if v < 0 || v >= len(c.depot.Dist) {
		return math.Inf(1)
	}

	return c.depot.Dist[v]
}

// Between returns the shortest path u→v (inclusive) and its distance. The
// tree rooted at u is built on first use and memoized, so repeated bridge
// queries from the same node are amortized O(path length).
func (c *Cache) Between(u, v int) ([]int, float64) {
	t := c.tree(u)
	if t == nil {
		return nil, math.Inf(1)
	}
	if v < 0 || v >= len(t.Dist) {
		return nil, math.Inf(1)
	}

	return t.PathTo(v), t.Dist[v]
}

// tree returns the memoized shortest-path tree rooted at src, building it
// under the write lock when absent. Double-checked to keep the read path
// lock-cheap.
func (c *Cache) tree(src int) *Tree {
	if src < 0 || src >= c.g.N() {
		return nil
	}

	c.mu.RLock()
	t := c.trees[src]
	c.mu.RUnlock()
	if t != nil {
		return t
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.trees[src] == nil {
		// NewTree cannot fail here: g is non-nil and src is in range.
		c.trees[src], _ = NewTree(c.g, src)
	}

	return c.trees[src]
}

// KNearest returns up to k nodes nearest to v by direct distance, skipping
// v itself, the depot, and every index for which exclude returns true.
// exclude may be nil. The returned slice is freshly allocated.
//
// Complexity: amortized O(k + skipped) off the precomputed sorted list.
func (c *Cache) KNearest(v, k int, exclude func(int) bool) []int {
	if v < 0 || v >= len(c.near) || k <= 0 {
		return nil
	}
	out := make([]int, 0, k)
	for _, u := range c.near[v] {
		if exclude != nil && exclude(u) {
			continue
		}
		out = append(out, u)
		if len(out) == k {
			break
		}
	}

	return out
}
