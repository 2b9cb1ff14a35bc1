// Package report renders an optimization result as a fixed-width text report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/roadnet/optimizer"
	"github.com/katalvlaran/roadnet/weight"
)

// DefaultCurrency is used when Input.Currency is empty.
const DefaultCurrency = "IDR"

// width of the rule lines.
const width = 95

// Input is everything the report needs from a planning run.
type Input struct {
	// Names maps village index -> display name.
	Names []string

	// Mode is the weighting mode the run used.
	Mode weight.Mode

	// Proposals is the number of candidate roads considered.
	Proposals int

	// Selected are the roads chosen, in solver order.
	Selected []optimizer.Proposal

	// Summary aggregates Selected.
	Summary optimizer.Summary

	// Currency is the code printed before amounts. Amounts are in millions.
	Currency string
}

// FormatCurrency renders an amount given in millions: values of 1000 or more
// as billions ("IDR 2.5 M"), smaller ones as millions ("IDR 850 Jt").
func FormatCurrency(value float64, code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	if value >= 1000 {
		return fmt.Sprintf("%s %g M", code, value/1000)
	}

	return fmt.Sprintf("%s %g Jt", code, value)
}

// WeightLabel returns the weight column header for m.
func WeightLabel(m weight.Mode) string {
	switch m {
	case weight.ModeDistance:
		return "Weight (Km)"
	case weight.ModeCost:
		return "Weight (Rp)"
	default:
		return "Ratio (C/B)"
	}
}

// ModeNote returns the explanatory footer for m.
func ModeNote(m weight.Mode) string {
	switch m {
	case weight.ModeDistance:
		return "*Note: DISTANCE mode (shortest total road length)"
	case weight.ModeCost:
		return "*Note: COST mode (cheapest network regardless of benefit)"
	default:
		return "*Note: RATIO mode (lower cost/benefit ratio = more efficient)"
	}
}

// Write renders in to w.
func Write(w io.Writer, in Input) error {
	var b strings.Builder
	rule := func(ch string) { b.WriteString(strings.Repeat(ch, width) + "\n") }

	mode := in.Mode
	if mode == "" {
		mode = weight.DefaultMode
	}

	b.WriteString("\n")
	rule("=")
	fmt.Fprintf(&b, "VILLAGE ROAD CONSTRUCTION PLAN (MODE: %s)\n", strings.ToUpper(string(mode)))
	rule("=")
	fmt.Fprintf(&b, "Proposals received   : %d roads\n", in.Proposals)
	fmt.Fprintf(&b, "Roads to build       : %d roads\n", len(in.Selected))
	fmt.Fprintf(&b, "Total road length    : %g km\n", in.Summary.TotalDistance)
	fmt.Fprintf(&b, "Total budget         : %s\n", FormatCurrency(in.Summary.TotalCost, in.Currency))
	fmt.Fprintf(&b, "Total economic impact: %g points\n", in.Summary.TotalBenefit)
	if !in.Summary.Connected {
		fmt.Fprintf(&b, "Warning              : network is disconnected (%d village groups)\n", in.Summary.Components)
	}
	rule("-")
	fmt.Fprintf(&b, "%-30s | %-10s | %-12s | %-8s | %-12s\n", "Selected route", "Distance", "Cost", "Benefit", WeightLabel(mode))
	rule("-")
	for _, p := range in.Selected {
		route := fmt.Sprintf("%s <--> %s", name(in.Names, p.U), name(in.Names, p.V))
		dist := "-"
		if p.Distance > 0 {
			dist = fmt.Sprintf("%g km", p.Distance)
		}
		fmt.Fprintf(&b, "%-30s | %-10s | %-12s | %-8g | %.2f\n",
			route, dist, FormatCurrency(p.RealCost, in.Currency), p.RealBenefit, p.Weight)
	}
	rule("-")
	b.WriteString(ModeNote(mode) + "\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func name(names []string, i int) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}

	return fmt.Sprintf("#%d", i)
}
