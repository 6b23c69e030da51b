// Package dijkstra provides the shortest-path machinery the goldrush search
// operators rely on: single-source shortest-path trees over a core.Graph and
// a Cache that amortizes every query the solvers issue in their hot loops.
//
// Tree computes Dijkstra from one source with a min-heap priority queue
// under the lazy decrease-key strategy: improved distances push duplicate
// heap entries and stale pops are skipped via a visited check.
//
// Cache is built once per problem instance:
//
//   - the depot tree is computed eagerly; if any node is unreachable from
//     the depot, NewCache fails with ErrUnreachableNode before any search
//     loop can start,
//   - per-node neighbor lists (every other node ordered by direct distance,
//     finite edges first) are precomputed for k-nearest queries,
//   - trees rooted at arbitrary nodes are computed lazily on first use and
//     memoized, so bridge queries are amortized O(1) across a search run.
//
// Complexity:
//
//   - Tree build: O((V + E) log V) time, O(V + E) space.
//   - Cache build: O(V² log V) (depot tree + neighbor list sort).
//   - PathFromDepot / PathToDepot / Between: O(path length) after the
//     owning tree exists.
//   - KNearest: amortized O(k + skipped) off the precomputed lists.
//
// The package is deliberately free of options: goldrush instances are
// symmetric with non-negative weights by core.New's contract, so the only
// failure mode left is unreachability.
package dijkstra
