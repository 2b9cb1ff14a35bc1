// Package roadnet plans village road networks: from a list of candidate
// roads it selects the subset that keeps every village reachable at the lowest
// aggregate weight, and reports the realized cost, benefit and distance.
//
// What is inside?
//
//	dsu/        disjoint-set (union-find) with path compression and union by rank
//	weight/     weighting policies: ratio (cost/benefit), cost, distance
//	mst/        Kruskal and Prim minimum spanning forests over integer vertices
//	optimizer/  the planning run: proposals in, selected network + summary out
//	loader/     CSV survey sheet reader (village names → indices)
//	layout/     seeded, deterministic plotting coordinates
//	report/     fixed-width text report
//	config/     YAML + environment configuration with validation
//	cmd/roadplan/ command-line front end (plan, export, modes)
//
// Quick example:
//
//	o, _ := optimizer.New(3)                // ratio mode, Kruskal
//	o.RegisterProposal(0, 1, 500, 50, 4)    // cost, benefit, distance
//	o.RegisterProposal(1, 2, 300, 60, 6)
//	o.RegisterProposal(0, 2, 900, 100, 9)
//	roads, summary, _ := o.OptimizeNetworkBudget()
//	// roads: 1-2, 0-2; summary.TotalCost = 1200
//
// A candidate set that does not connect every village is not an error: the
// result is a spanning forest and Summary.Connected reports false.
package roadnet
