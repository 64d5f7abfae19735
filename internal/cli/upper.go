package cli

import (
	"fmt"

	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/spf13/cobra"
)

type upperOpts struct {
	output   outputOpts
	finishes finishOpts
	start    float64
	vent     float64
	height   float64
}

type upperOutput struct {
	EffectiveWidth float64            `json:"effective_width"`
	Layout         engine.UpperLayout `json:"layout"`
	Plan           model.Plan         `json:"plan"`
}

func newUpperCmd(root *rootOpts) *cobra.Command {
	opts := upperOpts{height: 720}

	cmd := &cobra.Command{
		Use:   "upper TOTAL_WIDTH",
		Short: "Lay out an upper section around the hood and reference cabinet",
		Long: `Upper places the range hood under the vent and a double reference cabinet
centered over the sink unit, then fills the remaining space with modules.
Without --vent the hood is centered on the wall.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseLength("width", args[0])
			if err != nil {
				return err
			}
			return runUpper(cmd, root, &opts, total)
		},
	}

	opts.output.register(cmd)
	opts.finishes.register(cmd, model.Finishes{})
	cmd.Flags().Float64Var(&opts.start, "start", 0, "left edge of the sink area (mm)")
	cmd.Flags().Float64Var(&opts.vent, "vent", 0, "vent center position (mm)")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "upper cabinet height (mm)")
	return cmd
}

func runUpper(cmd *cobra.Command, root *rootOpts, opts *upperOpts, total float64) error {
	calc, cfg, err := root.calculator(cmd.Context())
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())

	span := model.EffectiveSpace(total, opts.finishes.Finishes)
	vent := opts.vent
	if !cmd.Flags().Changed("vent") {
		vent = span / 2
	}

	layout, err := calc.PlanUpperSection(span, opts.start, vent, opts.height)
	if err != nil {
		return fmt.Errorf("cannot plan upper section: %w", err)
	}
	logger.Debug("anchors placed", "hood", layout.Hood.X, "reference", layout.Reference.X, "door_width", layout.DoorWidth)
	for _, g := range layout.Unfilled {
		logger.Debug("sub-span left empty", "start", g.Start, "end", g.End, "width", g.Width)
	}

	fill := engine.GapFillResult{
		Placements: layout.Placements,
		DoorWidth:  layout.DoorWidth,
		Leftover:   layout.Leftover,
		IsOptimal:  cfg.InTolerance(layout.Leftover),
	}
	plan := newPlan(opts.output.name, model.CategorySink, model.SectionUpper, span, fill, calc.SuggestImprovements(fill))

	out := cmd.OutOrStdout()
	if opts.output.json {
		if err := printJSON(out, upperOutput{EffectiveWidth: span, Layout: layout, Plan: plan}); err != nil {
			return err
		}
	} else {
		printTitle(out, "%s upper section, %.0f mm", plan.Name, span)
		printKeyValue(out, "Hood", fmt.Sprintf("%.0f..%.0f mm", layout.Hood.X, layout.Hood.End()))
		printKeyValue(out, "Reference", fmt.Sprintf("%.0f..%.0f mm", layout.Reference.X, layout.Reference.End()))
		printKeyValue(out, "Door width", fmt.Sprintf("%.0f mm", layout.DoorWidth))
		printRemainder(out, cfg, layout.Leftover)
		for _, g := range layout.Unfilled {
			printWarning(out, "%.0f..%.0f mm (%.0f mm) is too narrow for a module", g.Start, g.End, g.Width)
		}
		printPlacements(out, plan.Placements)
		printSuggestions(out, plan.Suggestions)
	}

	return opts.output.write(cmd, root, run{cfg: cfg, totalWidth: total, finishes: opts.finishes.Finishes, plans: []model.Plan{plan}})
}
