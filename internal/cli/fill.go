package cli

import (
	"fmt"
	"strings"

	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/importer"
	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/spf13/cobra"
)

type fillOpts struct {
	output     outputOpts
	finishes   finishOpts
	obstacles  []string
	importPath string
	category   string
	upper      bool
}

type fillOutput struct {
	EffectiveWidth float64              `json:"effective_width"`
	Obstacles      []model.Obstacle     `json:"obstacles"`
	Result         engine.GapFillResult `json:"result"`
	Plan           model.Plan           `json:"plan"`
}

func newFillCmd(root *rootOpts) *cobra.Command {
	opts := fillOpts{}

	cmd := &cobra.Command{
		Use:   "fill TOTAL_WIDTH",
		Short: "Fill the space around fixed obstacles with modules",
		Long: `Fill places modules of one shared door width into every gap between fixed
obstacles. Obstacles come from --obstacle flags (LABEL:X:WIDTH or X:WIDTH)
and from a CSV, Excel or DXF file given with --import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			total, err := parseLength("width", args[0])
			if err != nil {
				return err
			}
			return runFill(cmd, root, &opts, total)
		},
	}

	opts.output.register(cmd)
	opts.finishes.register(cmd, model.Finishes{})
	cmd.Flags().StringArrayVarP(&opts.obstacles, "obstacle", "o", nil, "fixed obstacle as LABEL:X:WIDTH or X:WIDTH (repeatable)")
	cmd.Flags().StringVarP(&opts.importPath, "import", "i", "", "import obstacles from a .csv, .xlsx or .dxf file")
	cmd.Flags().StringVar(&opts.category, "category", string(model.CategorySink), "furniture category")
	cmd.Flags().BoolVar(&opts.upper, "upper", false, "lay out an upper (wall) section")
	return cmd
}

// parseObstacle parses LABEL:X:WIDTH or X:WIDTH.
func parseObstacle(s string, n int) (model.Obstacle, error) {
	parts := strings.Split(s, ":")
	o := model.Obstacle{Label: fmt.Sprintf("Obstacle %d", n)}
	switch len(parts) {
	case 2:
	case 3:
		o.Label = strings.TrimSpace(parts[0])
		parts = parts[1:]
	default:
		return model.Obstacle{}, fmt.Errorf("invalid obstacle %q: want LABEL:X:WIDTH or X:WIDTH", s)
	}
	x, err := parseLength("obstacle start", strings.TrimSpace(parts[0]))
	if err != nil {
		return model.Obstacle{}, err
	}
	w, err := parseLength("obstacle width", strings.TrimSpace(parts[1]))
	if err != nil {
		return model.Obstacle{}, err
	}
	o.X, o.Width = x, w
	return o, nil
}

// collectObstacles merges flag obstacles with imported ones.
func (o *fillOpts) collectObstacles(cmd *cobra.Command) ([]model.Obstacle, error) {
	logger := loggerFromContext(cmd.Context())

	var obstacles []model.Obstacle
	for i, s := range o.obstacles {
		obs, err := parseObstacle(s, i+1)
		if err != nil {
			return nil, err
		}
		obstacles = append(obstacles, obs)
	}

	if o.importPath != "" {
		res := importer.ImportFile(o.importPath)
		for _, w := range res.Warnings {
			logger.Warn(w, "file", o.importPath)
		}
		for _, e := range res.Errors {
			logger.Error(e, "file", o.importPath)
		}
		if len(res.Obstacles) == 0 && len(res.Errors) > 0 {
			return nil, fmt.Errorf("no obstacles imported from %s: %s", o.importPath, res.Errors[0])
		}
		logger.Info("Imported obstacles", "count", len(res.Obstacles), "file", o.importPath)
		obstacles = append(obstacles, res.Obstacles...)
	}
	return obstacles, nil
}

func runFill(cmd *cobra.Command, root *rootOpts, opts *fillOpts, total float64) error {
	obstacles, err := opts.collectObstacles(cmd)
	if err != nil {
		return err
	}
	calc, cfg, err := root.calculator(cmd.Context())
	if err != nil {
		return err
	}

	cat, err := parseCategory(cfg, opts.category)
	if err != nil {
		return err
	}

	span := model.EffectiveSpace(total, opts.finishes.Finishes)
	section := model.SectionLower
	if opts.upper {
		section = model.SectionUpper
	}

	res, err := calc.OptimizeLayout(span, obstacles, section)
	if err != nil {
		return fmt.Errorf("cannot fill %.0fmm: %w", span, err)
	}
	loggerFromContext(cmd.Context()).Debug("filled gaps", "gaps", len(res.Gaps), "door_width", res.DoorWidth, "leftover", res.Leftover)

	plan := newPlan(opts.output.name, cat, section, span, res, calc.SuggestImprovements(res))

	out := cmd.OutOrStdout()
	if opts.output.json {
		if obstacles == nil {
			obstacles = []model.Obstacle{}
		}
		if err := printJSON(out, fillOutput{EffectiveWidth: span, Obstacles: obstacles, Result: res, Plan: plan}); err != nil {
			return err
		}
	} else {
		printTitle(out, "%s %s section, %.0f mm, %d obstacle(s)", plan.Name, section, span, len(obstacles))
		printKeyValue(out, "Door width", fmt.Sprintf("%.0f mm", res.DoorWidth))
		printKeyValue(out, "Gaps", fmt.Sprintf("%d", len(res.Gaps)))
		printRemainder(out, cfg, res.Leftover)
		printPlacements(out, plan.Placements)
		printSuggestions(out, plan.Suggestions)
	}

	return opts.output.write(cmd, root, run{cfg: cfg, totalWidth: total, finishes: opts.finishes.Finishes, plans: []model.Plan{plan}})
}
