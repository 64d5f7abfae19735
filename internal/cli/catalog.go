package cli

import (
	"fmt"
	"strings"

	"github.com/piwi3910/CabinetFit/internal/catalog"
	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/spf13/cobra"
)

func newRecommendCmd(root *rootOpts) *cobra.Command {
	var (
		asJSON bool
		brand  string
		tall   bool
	)

	cmd := &cobra.Command{
		Use:   "recommend WIDTH HEIGHT",
		Short: "Recommend refrigerators that fit a space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseLength("width", args[0])
			if err != nil {
				return err
			}
			height, err := parseLength("height", args[1])
			if err != nil {
				return err
			}
			calc, _, err := root.calculator(cmd.Context())
			if err != nil {
				return err
			}

			cat := catalog.New()
			recs := cat.Recommend(calc, catalog.RecommendRequest{
				TotalWidth:  width,
				TotalHeight: height,
				Brand:       brand,
				IncludeTall: tall,
			})
			loggerFromContext(cmd.Context()).Debug("ranked catalog", "brand", brand, "results", len(recs))

			out := cmd.OutOrStdout()
			if asJSON {
				if recs == nil {
					recs = []catalog.Recommendation{}
				}
				return printJSON(out, recs)
			}
			if len(recs) == 0 {
				printWarning(out, "No model fits %.0f x %.0f mm", width, height)
				return nil
			}

			printTitle(out, "Top %d for %.0f x %.0f mm", len(recs), width, height)
			rows := make([][]string, 0, len(recs))
			for i, r := range recs {
				addTall := ""
				if r.CanAddTall {
					addTall = iconSuccess
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					r.Entry.ID,
					r.Entry.Name,
					fmt.Sprintf("%.0f", r.Footprint),
					fmt.Sprintf("%.0f", r.Leftover),
					fmt.Sprintf("%.0f", r.Score),
					fmt.Sprintf("%.0f", r.UpperHeight),
					addTall,
				})
			}
			printTable(out, []string{"#", "ID", "Model", "Footprint", "Leftover", "Score", "Upper", "Tall"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&brand, "brand", "", "limit to one brand (lg, samsung)")
	cmd.Flags().BoolVar(&tall, "tall", false, "reserve room for a tall cabinet")
	return cmd
}

type fridgeOpts struct {
	output    outputOpts
	finishes  finishOpts
	tall      bool
	tallWidth float64
}

func newFridgeCmd(root *rootOpts) *cobra.Command {
	opts := fridgeOpts{}

	cmd := &cobra.Command{
		Use:   "fridge MODEL_ID WIDTH HEIGHT",
		Short: "Lay out a refrigerator cabinet for a catalog model",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			width, err := parseLength("width", args[1])
			if err != nil {
				return err
			}
			height, err := parseLength("height", args[2])
			if err != nil {
				return err
			}
			cfg, err := root.layoutConfig(cmd.Context())
			if err != nil {
				return err
			}

			cat := catalog.New()
			layout, err := cat.FridgeLayout(catalog.LayoutRequest{
				ModelID:     args[0],
				TotalWidth:  width,
				TotalHeight: height,
				Finishes:    opts.finishes.Finishes,
				IncludeTall: opts.tall,
				TallWidth:   opts.tallWidth,
			})
			if err != nil {
				return err
			}

			fill := engine.GapFillResult{
				Placements: layout.Placements,
				Leftover:   layout.Leftover,
				IsOptimal:  layout.Valid,
			}
			plan := newPlan(opts.output.name, model.CategoryFridge, model.SectionLower, layout.EffectiveWidth, fill, nil)

			out := cmd.OutOrStdout()
			if opts.output.json {
				if err := printJSON(out, layout); err != nil {
					return err
				}
			} else {
				printFridgeLayout(cmd, cat, layout, plan)
			}

			return opts.output.write(cmd, root, run{cfg: cfg, totalWidth: width, finishes: opts.finishes.Finishes, plans: []model.Plan{plan}})
		},
	}

	opts.output.register(cmd)
	opts.finishes.register(cmd, model.DefaultFinishes())
	cmd.Flags().BoolVar(&opts.tall, "tall", false, "add a tall cabinet beside the appliance")
	cmd.Flags().Float64Var(&opts.tallWidth, "tall-width", 0, "tall cabinet width (mm), 0 for the default")
	return cmd
}

func printFridgeLayout(cmd *cobra.Command, cat *catalog.Catalog, layout catalog.FridgeLayout, plan model.Plan) {
	out := cmd.OutOrStdout()
	h := layout.Heights

	printTitle(out, "%s (%s)", layout.Entry.Name, layout.Entry.ID)
	printKeyValue(out, "Footprint", fmt.Sprintf("%.0f mm", layout.Entry.UnitFootprint()))
	printKeyValue(out, "Heights", fmt.Sprintf("molding %.0f / upper %.0f / body %.0f (middle %.0f, lower %.0f) / pedestal %.0f",
		h.Molding, h.Upper, h.Body, h.Middle, h.Lower, h.Pedestal))
	printKeyValue(out, "Used", fmt.Sprintf("%.0f of %.0f mm", layout.UsedWidth, layout.EffectiveWidth))
	printKeyValue(out, "Leftover", fmt.Sprintf("%.0f mm", layout.Leftover))
	printPlacements(out, plan.Placements)
	if layout.Valid {
		printSuccess(out, "Leftover is within %.0f mm", cat.Rules.MaxLeftover)
	} else {
		printWarning(out, "Leftover must be between 0 and %.0f mm", cat.Rules.MaxLeftover)
	}
}

func newModelsCmd() *cobra.Command {
	var (
		asJSON bool
		filter catalog.Filter
		family string
		typ    string
	)

	cmd := &cobra.Command{
		Use:   "models",
		Short: "List refrigerator models in the built-in catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.New()
			filter.Type = model.ApplianceType(typ)

			var entries []model.CatalogEntry
			if family != "" {
				if filter.Brand == "" {
					return fmt.Errorf("--family requires --brand")
				}
				entries = cat.Models(filter.Brand, family)
			} else {
				entries = cat.Search(filter)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				if entries == nil {
					entries = []model.CatalogEntry{}
				}
				return printJSON(out, entries)
			}
			if len(entries) == 0 {
				printWarning(out, "No models match")
				if filter.Brand != "" {
					printInfo(out, "Families: %s", strings.Join(cat.Categories(filter.Brand), ", "))
				} else {
					printInfo(out, "Brands: %s", strings.Join(cat.Brands(), ", "))
				}
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.ID,
					e.Brand,
					e.Category,
					e.Name,
					string(e.Type),
					fmt.Sprintf("%.0f x %.0f x %.0f", e.Width, e.Height, e.Depth),
					fmt.Sprintf("%.0f", e.UnitFootprint()),
				})
			}
			printTable(out, []string{"ID", "Brand", "Family", "Name", "Type", "W x H x D", "Footprint"}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&filter.Brand, "brand", "", "brand key (lg, samsung)")
	cmd.Flags().StringVar(&family, "family", "", "product family within the brand")
	cmd.Flags().StringVarP(&filter.Query, "query", "q", "", "search name, ID or family")
	cmd.Flags().Float64Var(&filter.MinWidth, "min-width", 0, "minimum appliance width (mm)")
	cmd.Flags().Float64Var(&filter.MaxWidth, "max-width", 0, "maximum appliance width (mm)")
	cmd.Flags().StringVar(&typ, "type", "", "installation type (builtin, freestanding)")
	return cmd
}
