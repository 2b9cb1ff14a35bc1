// Package optimizer owns a road-network planning run: the village universe,
// the weighting mode, the growing list of road proposals, and the aggregation
// of the chosen network into summary statistics.
//
// Pipeline
//
//	loader → RegisterProposal (weight.Func) → OptimizeNetworkBudget
//	       → mst.Kruskal (fresh dsu.DSU) → Summarize → report / export
//
// Errors
//
//	An unknown weighting mode or solver method is a configuration error and is
//	rejected by New. Node indices are not validated by RegisterProposal; an
//	out-of-range index panics inside the solver. A disconnected proposal set is
//	not an error: the result is a spanning forest and Summary.Connected is false.
//
// Concurrency
//
//	An Optimizer is not safe for concurrent use. Compare modes by building one
//	Optimizer per mode.
package optimizer
