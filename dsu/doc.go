// Package dsu provides a disjoint-set (union-find) structure over the fixed
// integer universe [0, n).
//
// What & Why
//
//   - A DSU tracks a partition of elements into disjoint sets and answers
//     "are a and b in the same set?" in near-constant amortized time.
//   - Kruskal's algorithm (package mst) drives one DSU per run: an edge is
//     accepted iff Union reports that it joined two different sets.
//
// Heuristics
//
//   - Find applies full path compression: every node visited on the way to the
//     root is re-pointed directly at the root.
//   - Union merges by rank: the root with the smaller rank is attached under
//     the root with the larger rank. On a tie the root of the first argument
//     becomes the parent and its rank grows by exactly one. Rank is a height
//     bound, never a cardinality, and is never decremented.
//
// Complexity
//
//   - New:   O(n) time and memory.
//   - Find:  O(α(n)) amortized.
//   - Union: O(α(n)) amortized.
//
// Indices outside [0, n) are a caller bug and panic with an index-out-of-range
// runtime error. A DSU is not safe for concurrent mutation.
package dsu
