package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/roadnet/dsu"
)

// Kruskal computes a minimum spanning forest of the n-vertex graph given by edges.
//
// Steps:
//  1. Copy edges and stable-sort the copy by ascending Weight (the input slice is not touched).
//  2. Create a fresh DSU over n vertices.
//  3. For each edge in order, accept it iff Union(From, To) merges two components.
//  4. Stop once n-1 edges are accepted; otherwise exhaust the list and return a forest.
//
// The returned slice is in acceptance order and never nil. The float64 is the
// sum of accepted weights. The only error is a wrapped dsu.ErrNegativeSize.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(n int, edges []Edge) ([]Edge, float64, error) {
	// 1. Fresh disjoint-set per run; fails only for n < 0.
	set, err := dsu.New(n)
	if err != nil {
		return nil, 0, fmt.Errorf("mst: kruskal: %w", err)
	}

	// 2. Sort a copy; stable keeps registration order among equal weights.
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Greedy scan.
	var (
		limit       = n - 1
		selected    = make([]Edge, 0, max(limit, 0))
		totalWeight float64
	)
	for _, e := range sorted {
		if len(selected) >= limit {
			// A full spanning tree is already in hand.
			break
		}
		if set.Union(e.From, e.To) {
			selected = append(selected, e)
			totalWeight += e.Weight
		}
	}

	return selected, totalWeight, nil
}
