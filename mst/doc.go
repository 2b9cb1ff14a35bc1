// Package mst computes minimum spanning forests over an integer vertex
// universe [0, n) and an explicit weighted edge list.
//
// What & Why
//
//   - Given an undirected weighted graph G = (V, E), a minimum spanning tree is
//     a subset T ⊆ E that connects every vertex without cycles and minimizes
//     the sum of weights. When G is disconnected no such tree exists; both
//     algorithms here then return a minimum spanning forest (one tree per
//     connected component) instead of an error.
//
//   - Road planning is the motivating use: villages are vertices, candidate
//     roads are edges, and the forest is the cheapest network that keeps every
//     reachable village reachable.
//
// Algorithms Provided
//
//   - Kruskal(n, edges) ([]Edge, float64, error)
//
//   - Strategy: stable-sort a copy of the edges by ascending weight, then scan
//     them once, accepting an edge iff dsu.Union reports it joins two
//     different components. Stops early after n-1 acceptances.
//
//   - Determinism: equal-weight edges keep their input order, so ties are
//     resolved in favour of the edge registered first. The accepted edges come
//     out in acceptance order, i.e. non-decreasing weight.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Prim(n, edges) ([]Edge, float64, error)
//
//   - Strategy: grow a tree with a min-heap of frontier edges, restarting from
//     the lowest-numbered unvisited vertex whenever the heap runs dry, so every
//     component gets its own tree.
//
//   - Complexity: O(E log E) time, O(V + E) memory.
//
//   - Use-Case: cross-checking Kruskal; both yield the same total weight.
//
// Input contract
//
//	Endpoints must lie in [0, n). An out-of-range endpoint is a caller bug and
//	panics. Self-loops are harmless: Union(u, u) is always false, so they are
//	never selected. A negative n returns an error wrapping dsu.ErrNegativeSize.
//
// Usage
//
//	edges := []mst.Edge{
//		{ID: 0, From: 0, To: 1, Weight: 1},
//		{ID: 1, From: 1, To: 2, Weight: 2},
//		{ID: 2, From: 0, To: 2, Weight: 3},
//	}
//	tree, total, err := mst.Kruskal(3, edges)
//	// tree = [{0 0 1 1} {1 1 2 2}], total = 3
package mst
