package optimizer

import (
	"errors"

	"github.com/katalvlaran/roadnet/mst"
	"github.com/katalvlaran/roadnet/weight"
)

// ErrNegativeNodes indicates a negative village count.
var ErrNegativeNodes = errors.New("optimizer: negative node count")

// Proposal is one candidate road between villages U and V.
//
// Weight is derived from the other fields by the optimizer's weighting mode
// at registration time. RealBenefit is the benefit exactly as supplied; the
// zero-benefit epsilon only affects Weight.
type Proposal struct {
	U, V        int
	Weight      float64
	RealCost    float64
	RealBenefit float64
	Distance    float64
}

// Summary aggregates the realized figures of a selected network.
type Summary struct {
	TotalCost     float64
	TotalBenefit  float64
	TotalDistance float64
	TotalWeight   float64

	// Edges is the number of selected roads.
	Edges int

	// Components is the number of connected village groups left by the selection.
	Components int

	// Connected is true when every village is reachable from every other.
	Connected bool
}

// Options configures an Optimizer.
type Options struct {
	// Mode selects the weighting policy. Default weight.DefaultMode.
	Mode weight.Mode

	// Method selects the MST algorithm. Default mst.MethodKruskal.
	Method string
}

// Option mutates Options.
type Option func(*Options)

// WithMode sets the weighting mode.
func WithMode(m weight.Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithMethod sets the MST algorithm (mst.MethodKruskal or mst.MethodPrim).
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// DefaultOptions returns ratio weighting solved with Kruskal.
func DefaultOptions() Options {
	return Options{Mode: weight.DefaultMode, Method: mst.MethodKruskal}
}
