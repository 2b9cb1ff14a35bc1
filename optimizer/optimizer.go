package optimizer

import (
	"fmt"

	"github.com/katalvlaran/roadnet/mst"
	"github.com/katalvlaran/roadnet/weight"
)

// Optimizer accumulates road proposals for a fixed set of villages and
// selects the minimum-weight network that keeps every village reachable.
type Optimizer struct {
	totalNodes int
	mode       weight.Mode
	method     string
	weigh      weight.Func
	proposals  []Proposal
}

// New creates an Optimizer for villages 0..totalNodes-1.
//
// Errors:
//   - ErrNegativeNodes       : totalNodes < 0.
//   - weight.ErrUnknownMode  : mode outside weight.Modes() (wrapped).
//   - mst.ErrUnknownMethod   : method other than Kruskal or Prim (wrapped).
func New(totalNodes int, opts ...Option) (*Optimizer, error) {
	if totalNodes < 0 {
		return nil, ErrNegativeNodes
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fn, err := weight.Lookup(o.Mode)
	if err != nil {
		return nil, fmt.Errorf("optimizer: %w", err)
	}
	if !mst.ValidMethod(o.Method) {
		return nil, fmt.Errorf("optimizer: %w: %q", mst.ErrUnknownMethod, o.Method)
	}

	return &Optimizer{
		totalNodes: totalNodes,
		mode:       o.Mode,
		method:     o.Method,
		weigh:      fn,
	}, nil
}

// RegisterProposal appends a candidate road between u and v, weighting it
// with the optimizer's mode. Indices are not range-checked here.
func (o *Optimizer) RegisterProposal(u, v int, cost, benefit, distance float64) {
	o.proposals = append(o.proposals, Proposal{
		U:           u,
		V:           v,
		Weight:      o.weigh(cost, benefit, distance),
		RealCost:    cost,
		RealBenefit: benefit,
		Distance:    distance,
	})
}

// OptimizeNetworkBudget selects the minimum-weight spanning forest over all
// registered proposals and summarizes it.
//
// Selected roads are returned in the solver's acceptance order. The proposal
// list is not modified, so repeated calls return identical results.
func (o *Optimizer) OptimizeNetworkBudget() ([]Proposal, Summary, error) {
	edges := make([]mst.Edge, len(o.proposals))
	for i, p := range o.proposals {
		edges[i] = mst.Edge{ID: i, From: p.U, To: p.V, Weight: p.Weight}
	}

	tree, _, err := mst.Compute(o.totalNodes, edges, mst.WithMethod(o.method))
	if err != nil {
		return nil, Summary{}, fmt.Errorf("optimizer: %w", err)
	}

	selected := make([]Proposal, len(tree))
	for i, e := range tree {
		selected[i] = o.proposals[e.ID]
	}

	return selected, Summarize(selected, o.totalNodes), nil
}

// Summarize folds selected roads into a Summary for a universe of totalNodes villages.
// selected is assumed to be acyclic, as returned by OptimizeNetworkBudget.
func Summarize(selected []Proposal, totalNodes int) Summary {
	var s Summary
	for _, p := range selected {
		s.TotalCost += p.RealCost
		s.TotalBenefit += p.RealBenefit
		s.TotalDistance += p.Distance
		s.TotalWeight += p.Weight
	}
	s.Edges = len(selected)
	s.Components = totalNodes - len(selected)
	s.Connected = s.Components <= 1

	return s
}

// Proposals returns a copy of every registered proposal in registration order.
func (o *Optimizer) Proposals() []Proposal {
	out := make([]Proposal, len(o.proposals))
	copy(out, o.proposals)

	return out
}

// Mode returns the active weighting mode.
func (o *Optimizer) Mode() weight.Mode { return o.mode }

// Method returns the MST algorithm in use.
func (o *Optimizer) Method() string { return o.method }

// TotalNodes returns the size of the village universe.
func (o *Optimizer) TotalNodes() int { return o.totalNodes }
