package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/dsu"
)

// Prim computes a minimum spanning forest of the n-vertex graph given by edges
// by growing trees with a min-heap of frontier edges.
//
// Steps:
//  1. Build undirected adjacency lists (self-loops dropped).
//  2. For each vertex s in ascending order that is not yet visited:
//     a. Mark s visited and push its incident edges.
//     b. Pop the lightest edge; skip it if its far end is visited, otherwise
//     accept it, mark the far end and push that vertex's edges.
//  3. Return every accepted edge and the total weight.
//
// Equal weights pop in push order. Returned edges keep the caller's orientation
// and ID. A negative n returns a wrapped dsu.ErrNegativeSize.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(n int, edges []Edge) ([]Edge, float64, error) {
	if n < 0 {
		return nil, 0, fmt.Errorf("mst: prim: %w", dsu.ErrNegativeSize)
	}

	// 1. Adjacency lists.
	adj := make([][]arc, n)
	for _, e := range edges {
		if e.From == e.To {
			continue
		}
		adj[e.From] = append(adj[e.From], arc{edge: e, to: e.To})
		adj[e.To] = append(adj[e.To], arc{edge: e, to: e.From})
	}

	var (
		visited     = make([]bool, n)
		selected    = make([]Edge, 0, max(n-1, 0))
		totalWeight float64
		pq          = &arcPQ{}
		seq         int
	)
	push := func(v int) {
		for _, a := range adj[v] {
			if !visited[a.to] {
				a.seq = seq
				seq++
				heap.Push(pq, a)
			}
		}
	}

	// 2. One tree per component.
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		visited[s] = true
		push(s)
		for pq.Len() > 0 {
			a := heap.Pop(pq).(arc)
			if visited[a.to] {
				continue
			}
			visited[a.to] = true
			selected = append(selected, a.edge)
			totalWeight += a.edge.Weight
			push(a.to)
		}
	}

	return selected, totalWeight, nil
}

// arc is an edge seen from one endpoint; to is the far end.
type arc struct {
	edge Edge
	to   int
	seq  int // push order, breaks weight ties
}

// arcPQ implements heap.Interface as a min-heap on (Weight, seq).
type arcPQ []arc

func (pq arcPQ) Len() int { return len(pq) }

func (pq arcPQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq arcPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *arcPQ) Push(x interface{}) { *pq = append(*pq, x.(arc)) }

func (pq *arcPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	a := old[n-1]
	*pq = old[:n-1]

	return a
}
