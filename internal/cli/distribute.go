package cli

import (
	"fmt"
	"io"

	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/spf13/cobra"
)

type distributeOpts struct {
	output   outputOpts
	finishes finishOpts
	category string
	upper    bool
	single   bool
}

type distributeOutput struct {
	EffectiveWidth float64            `json:"effective_width"`
	Status         string             `json:"status"`
	Result         model.LayoutResult `json:"result"`
	Plan           model.Plan         `json:"plan"`
}

func newDistributeCmd(root *rootOpts) *cobra.Command {
	opts := distributeOpts{}

	cmd := &cobra.Command{
		Use:   "distribute TOTAL_WIDTH",
		Short: "Distribute a wall span into cabinet modules",
		Long: `Distribute splits the width left after finishes into evenly sized doors,
pairing them into double modules with at most one trailing single module.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseLength("width", args[0])
			if err != nil {
				return err
			}
			return runDistribute(cmd, root, &opts, total)
		},
	}

	opts.output.register(cmd)
	opts.finishes.register(cmd, model.Finishes{})
	cmd.Flags().StringVar(&opts.category, "category", string(model.CategorySink), "furniture category")
	cmd.Flags().BoolVar(&opts.upper, "upper", false, "lay out an upper (wall) section")
	cmd.Flags().BoolVar(&opts.single, "single", false, "one door per module")
	return cmd
}

func runDistribute(cmd *cobra.Command, root *rootOpts, opts *distributeOpts, total float64) error {
	calc, cfg, err := root.calculator(cmd.Context())
	if err != nil {
		return err
	}
	logger := loggerFromContext(cmd.Context())

	cat, err := parseCategory(cfg, opts.category)
	if err != nil {
		return err
	}

	span := model.EffectiveSpace(total, opts.finishes.Finishes)
	section := model.SectionLower
	if opts.upper {
		section = model.SectionUpper
	}

	var r model.LayoutResult
	if opts.single {
		r, err = calc.DistributeSingleDoor(span)
	} else {
		r, err = calc.DistributeForCategory(span, cat, opts.upper)
	}
	if err != nil {
		return fmt.Errorf("cannot distribute %.0fmm: %w", span, err)
	}
	logger.Debug("distributed", "span", span, "status", r.Status, "doors", r.DoorCount, "width", r.DoorWidth)

	fill := engine.GapFillResult{
		Placements: engine.PlaceLayout(section, r),
		DoorWidth:  r.DoorWidth,
		Leftover:   r.Leftover,
		IsOptimal:  r.IsOptimal,
	}
	var suggestions []string
	if r.Status != model.StatusDegenerate {
		suggestions = calc.SuggestImprovements(fill)
	}
	plan := newPlan(opts.output.name, cat, section, span, fill, suggestions)

	out := cmd.OutOrStdout()
	if opts.output.json {
		if err := printJSON(out, distributeOutput{EffectiveWidth: span, Status: r.Status.String(), Result: r, Plan: plan}); err != nil {
			return err
		}
	} else {
		printDistribution(out, cfg, span, r, plan)
	}

	return opts.output.write(cmd, root, run{cfg: cfg, totalWidth: total, finishes: opts.finishes.Finishes, plans: []model.Plan{plan}})
}

func printDistribution(out io.Writer, cfg model.LayoutConfig, span float64, r model.LayoutResult, plan model.Plan) {
	printTitle(out, "%s %s section, %.0f mm", plan.Name, plan.Section, span)

	switch r.Status {
	case model.StatusDegenerate:
		printInfo(out, "Span is below %.0f mm; nothing to place", cfg.MinFillSpan)
		return
	case model.StatusFallback:
		printWarning(out, "No door width fits the allowance; count and width were forced")
	}

	doubles, singles := r.CountKinds()
	printKeyValue(out, "Door width", fmt.Sprintf("%.0f mm", r.DoorWidth))
	printKeyValue(out, "Modules", fmt.Sprintf("%d x 2D, %d x 1D (%d doors)", doubles, singles, r.DoorCount))
	printRemainder(out, cfg, r.Leftover)
	printPlacements(out, plan.Placements)
	printSuggestions(out, plan.Suggestions)
}
