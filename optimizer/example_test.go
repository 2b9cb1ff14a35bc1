package optimizer_test

import (
	"fmt"

	"github.com/katalvlaran/roadnet/optimizer"
	"github.com/katalvlaran/roadnet/weight"
)

// ExampleOptimizer_OptimizeNetworkBudget plans roads for three villages by cost-to-benefit ratio.
func ExampleOptimizer_OptimizeNetworkBudget() {
	o, err := optimizer.New(3, optimizer.WithMode(weight.ModeRatio))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	o.RegisterProposal(0, 1, 500, 50, 4)  // ratio 10
	o.RegisterProposal(1, 2, 300, 60, 6)  // ratio 5
	o.RegisterProposal(0, 2, 900, 100, 9) // ratio 9

	selected, sum, err := o.OptimizeNetworkBudget()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range selected {
		fmt.Printf("%d-%d ratio=%g\n", p.U, p.V, p.Weight)
	}
	fmt.Printf("cost=%g benefit=%g distance=%g connected=%t\n",
		sum.TotalCost, sum.TotalBenefit, sum.TotalDistance, sum.Connected)
	// Output:
	// 1-2 ratio=5
	// 0-2 ratio=9
	// cost=1200 benefit=160 distance=15 connected=true
}
