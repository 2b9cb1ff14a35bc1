package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roadnet/config"
	"github.com/katalvlaran/roadnet/layout"
	"github.com/katalvlaran/roadnet/loader"
	"github.com/katalvlaran/roadnet/mst"
	"github.com/katalvlaran/roadnet/optimizer"
	"github.com/katalvlaran/roadnet/report"
	"github.com/katalvlaran/roadnet/weight"
)

// flags holds the persistent command-line overrides.
type flags struct {
	config   string
	mode     string
	method   string
	currency string
	seed     int64
}

// run is one completed planning pass.
type run struct {
	cfg      config.Config
	data     *loader.Dataset
	opt      *optimizer.Optimizer
	selected []optimizer.Proposal
	summary  optimizer.Summary
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	root := &cobra.Command{
		Use:          "roadplan",
		Short:        "Plan a minimum-cost village road network",
		Long:         "roadplan reads candidate roads from a CSV survey sheet and selects the\ncheapest set that keeps every village reachable (a minimum spanning forest).",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&f.mode, "mode", "m", "", "weighting mode: ratio, cost or distance")
	pf.StringVar(&f.method, "method", "", "MST algorithm: "+strings.Join([]string{mst.MethodKruskal, mst.MethodPrim}, " or "))
	pf.StringVar(&f.currency, "currency", "", "three-letter currency code for the report")
	pf.Int64Var(&f.seed, "seed", 0, "layout seed for export")

	root.AddCommand(
		&cobra.Command{
			Use:   "plan <roads.csv>",
			Short: "Print the road construction report",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := execute(cmd, f, args[0])
				if err != nil {
					return err
				}

				return report.Write(cmd.OutOrStdout(), report.Input{
					Names:     r.data.Names,
					Mode:      r.opt.Mode(),
					Proposals: len(r.opt.Proposals()),
					Selected:  r.selected,
					Summary:   r.summary,
					Currency:  r.cfg.Report.Currency,
				})
			},
		},
		&cobra.Command{
			Use:   "export <roads.csv>",
			Short: "Write the plan as JSON for a visualizer",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				r, err := execute(cmd, f, args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(buildExport(r))
			},
		},
		&cobra.Command{
			Use:   "modes",
			Short: "List the supported weighting modes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				for _, m := range weight.Modes() {
					note := report.ModeNote(m)
					if m == weight.DefaultMode {
						note += " [default]"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", m, note)
				}

				return nil
			},
		},
	)

	return root
}

// resolveConfig loads the config file and applies flags that were set explicitly.
func resolveConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	c, err := config.Load(f.config)
	if err != nil {
		return config.Config{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("mode") {
		m, err := weight.ParseMode(f.mode)
		if err != nil {
			return config.Config{}, err
		}
		c.Planning.Mode = string(m)
	}
	if fs.Changed("method") {
		c.Planning.Method = strings.ToLower(f.method)
	}
	if fs.Changed("currency") {
		c.Report.Currency = strings.ToUpper(f.currency)
	}
	if fs.Changed("seed") {
		c.Layout.Seed = f.seed
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}

	return c, nil
}

// execute loads the data and runs the optimizer.
func execute(cmd *cobra.Command, f *flags, path string) (*run, error) {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return nil, err
	}
	log := newLogger(cfg, cmd.ErrOrStderr())

	data, err := loader.Load(path, loader.WithColumns(cfg.Columns), loader.WithLogger(log))
	if err != nil {
		return nil, err
	}
	mode, err := cfg.WeightMode()
	if err != nil {
		return nil, err
	}
	opt, err := optimizer.New(len(data.Names), optimizer.WithMode(mode), optimizer.WithMethod(cfg.Planning.Method))
	if err != nil {
		return nil, err
	}
	data.Register(opt)

	selected, summary, err := opt.OptimizeNetworkBudget()
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("mode", string(mode)).
		Str("method", cfg.Planning.Method).
		Int("selected", summary.Edges).
		Int("components", summary.Components).
		Float64("total_cost", summary.TotalCost).
		Msg("network optimized")
	if !summary.Connected {
		log.Warn().Int("components", summary.Components).Msg("candidate roads do not connect every village")
	}

	return &run{cfg: cfg, data: data, opt: opt, selected: selected, summary: summary}, nil
}

// Export types: the JSON contract for external visualizers.

type exportVillage struct {
	Index int          `json:"index"`
	Name  string       `json:"name"`
	Pos   layout.Point `json:"pos"`
}

type exportRoad struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	Weight   float64 `json:"weight"`
	Cost     float64 `json:"cost"`
	Benefit  float64 `json:"benefit"`
	Distance float64 `json:"distance"`
}

type exportSummary struct {
	TotalCost     float64 `json:"total_cost"`
	TotalBenefit  float64 `json:"total_benefit"`
	TotalDistance float64 `json:"total_distance"`
	TotalWeight   float64 `json:"total_weight"`
	Edges         int     `json:"edges"`
	Components    int     `json:"components"`
	Connected     bool    `json:"connected"`
}

type exportPlan struct {
	Mode      string          `json:"mode"`
	Method    string          `json:"method"`
	Currency  string          `json:"currency"`
	Villages  []exportVillage `json:"villages"`
	Proposals []exportRoad    `json:"proposals"`
	Selected  []exportRoad    `json:"selected"`
	Summary   exportSummary   `json:"summary"`
}

func buildExport(r *run) exportPlan {
	n := len(r.data.Names)
	var pts []layout.Point
	switch r.cfg.Layout.Kind {
	case config.LayoutCircle:
		pts = layout.Circle(n, r.cfg.Layout.Radius)
	default:
		pts = layout.Random(n, r.cfg.Layout.Seed)
	}

	villages := make([]exportVillage, n)
	for i, name := range r.data.Names {
		villages[i] = exportVillage{Index: i, Name: name, Pos: pts[i]}
	}
	roads := func(ps []optimizer.Proposal) []exportRoad {
		out := make([]exportRoad, len(ps))
		for i, p := range ps {
			out[i] = exportRoad{From: p.U, To: p.V, Weight: p.Weight, Cost: p.RealCost, Benefit: p.RealBenefit, Distance: p.Distance}
		}

		return out
	}
	s := r.summary

	return exportPlan{
		Mode:      string(r.opt.Mode()),
		Method:    r.opt.Method(),
		Currency:  r.cfg.Report.Currency,
		Villages:  villages,
		Proposals: roads(r.opt.Proposals()),
		Selected:  roads(r.selected),
		Summary: exportSummary{
			TotalCost:     s.TotalCost,
			TotalBenefit:  s.TotalBenefit,
			TotalDistance: s.TotalDistance,
			TotalWeight:   s.TotalWeight,
			Edges:         s.Edges,
			Components:    s.Components,
			Connected:     s.Connected,
		},
	}
}
