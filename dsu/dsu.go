package dsu

import "errors"

// ErrNegativeSize indicates that New was asked for a universe with fewer than zero elements.
var ErrNegativeSize = errors.New("dsu: negative universe size")

// DSU is a disjoint-set forest over the elements 0..n-1.
//
// parent[x] is the parent of x (parent[r] == r for roots);
// rank[r] is an upper bound on the height of the tree rooted at r;
// sets counts the disjoint sets currently present.
type DSU struct {
	parent []int
	rank   []int
	sets   int
}

// New creates n singleton sets, one per element 0..n-1.
// Returns ErrNegativeSize if n < 0. New(0) yields an empty, usable DSU.
// Complexity: O(n).
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d, nil
}

// Find returns the canonical representative of the set containing x.
// Every node on the path from x to the root is re-linked directly to the root.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) int {
	// 1. Walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2. Second pass: point every visited node straight at the root.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing a and b.
// It reports true if a merge happened and false if a and b were already in
// the same set (including a == b), in which case nothing is mutated.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) bool {
	rootA := d.Find(a)
	rootB := d.Find(b)
	if rootA == rootB {
		return false
	}
	switch {
	case d.rank[rootA] < d.rank[rootB]:
		d.parent[rootA] = rootB
	case d.rank[rootA] > d.rank[rootB]:
		d.parent[rootB] = rootA
	default:
		// Equal ranks: a's root wins and grows by one.
		d.parent[rootB] = rootA
		d.rank[rootA]++
	}
	d.sets--

	return true
}

// Connected reports whether a and b belong to the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Len returns the size of the universe.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DSU) Count() int { return d.sets }

// Rank returns the current rank of x. It is meaningful as a height bound only
// while x is a root.
func (d *DSU) Rank(x int) int { return d.rank[x] }
