package op

import (
	"math"

	"github.com/katalvlaran/goldrush/core"
)

// roundScale controls final cost stabilization precision (1e-9). It removes
// tiny cross-platform FP drift without affecting which edits win.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision. Non-finite values
// pass through untouched.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// Evaluator prices segments and whole solutions under fixed cost parameters
// α and β. It is immutable and safe to share across workers.
//
// Weight rule (equal split): a segment with gold total G and trip count t is
// traversed t times, and every edge of every traversal carries exactly G/t.
// For β ≤ 1 this makes the segment cost non-decreasing in t
// (t·D + t^(1−β)·Σ(α·d·G)^β), which is why the trip optimizer only runs for
// β > 1.
type Evaluator struct {
	g     *core.Graph
	alpha float64
	beta  float64
}

// NewEvaluator binds cost parameters to an instance.
func NewEvaluator(g *core.Graph, alpha, beta float64) *Evaluator {
	return &Evaluator{g: g, alpha: alpha, beta: beta}
}

// Graph returns the bound instance.
func (e *Evaluator) Graph() *core.Graph { return e.g }

// EdgeCost prices one edge of length d carrying weight w:
// d + (α·d·w)^β. Missing edges (d = +Inf) price to +Inf.
func (e *Evaluator) EdgeCost(d, w float64) float64 {
	if math.IsInf(d, 1) {
		return d
	}
	if d == 0 {
		return 0
	}

	return d + math.Pow(e.alpha*d*w, e.beta)
}

// segmentGold sums the gold over a segment's nodes.
func (e *Evaluator) segmentGold(nodes []int) float64 {
	var gold float64
	for _, v := range nodes {
		gold += e.g.Gold(v)
	}

	return gold
}

// SegmentCost prices one segment from scratch: the depot→v₁→…→vₖ→depot walk
// repeated trips times, each traversal carrying gold/trips on every edge.
// A missing direct edge anywhere makes the result +Inf (representable,
// never NaN); search operators route around such segments via cache bridges.
//
// Complexity: O(len(nodes)).
func (e *Evaluator) SegmentCost(nodes []int, trips int) float64 {
	if len(nodes) == 0 || trips < 1 {
		return 0
	}

	var (
		w   = e.segmentGold(nodes) / float64(trips)
		sum = e.EdgeCost(e.g.Dist(core.Depot, nodes[0]), w)
		i   int
	)
	for i = 1; i < len(nodes); i++ {
		sum += e.EdgeCost(e.g.Dist(nodes[i-1], nodes[i]), w)
	}
	sum += e.EdgeCost(e.g.Dist(nodes[len(nodes)-1], core.Depot), w)

	return float64(trips) * sum
}

// FullCost recomputes the total solution cost from scratch, ignoring every
// cached per-segment figure. This is the ground truth the delta discipline
// is tested against.
//
// Complexity: O(total path length).
func (e *Evaluator) FullCost(sol *Solution) float64 {
	if sol == nil {
		return 0
	}
	var sum float64
	for _, s := range sol.segs {
		sum += e.SegmentCost(s.nodes, s.trips)
	}

	return sum
}
