package dijkstra

import "errors"

// Sentinel errors returned by tree and cache construction.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the requested source index does not
	// exist in the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source index out of range")

	// ErrUnreachableNode indicates that some node cannot be reached from the
	// depot. It is fatal at cache-build time: no search may begin on an
	// instance whose gold cannot all be collected.
	ErrUnreachableNode = errors.New("dijkstra: node unreachable from depot")

	// ErrTargetOutOfRange indicates a path/tree query for an index outside
	// the graph.
	ErrTargetOutOfRange = errors.New("dijkstra: target index out of range")
)

// nodeItem is one (node, distance) entry in the priority queue.
type nodeItem struct {
	id   int     // node index
	dist float64 // distance from the tree source
}

// nodePQ is a min-heap of nodeItem ordered by ascending distance. Improved
// distances push duplicates (lazy decrease-key); stale entries are skipped
// on pop via the visited check in the runner.
type nodePQ []nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
