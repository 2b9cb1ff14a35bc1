// Command roadplan selects the cheapest set of candidate village roads that
// keeps every village reachable, and prints or exports the plan.
//
// Usage:
//
//	roadplan plan roads.csv --mode ratio
//	roadplan export roads.csv --config roadnet.yaml > plan.json
//	roadplan modes
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
