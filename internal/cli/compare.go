package cli

import (
	"fmt"

	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/spf13/cobra"
)

type compareRow struct {
	Name         string  `json:"name"`
	TargetWidth  float64 `json:"target_width"`
	Modules      int     `json:"modules"`
	Doors        int     `json:"doors"`
	DoorWidth    float64 `json:"door_width"`
	Leftover     float64 `json:"leftover"`
	WastePercent float64 `json:"waste_percent"`
	Optimal      bool    `json:"optimal"`
	Error        string  `json:"error,omitempty"`
}

func newCompareCmd(root *rootOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare SPAN",
		Short: "Compare distributions of a span under alternative settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := parseLength("span", args[0])
			if err != nil {
				return err
			}
			cfg, err := root.layoutConfig(cmd.Context())
			if err != nil {
				return err
			}

			results := engine.CompareScenarios(engine.BuildDefaultScenarios(cfg), span)
			rows := make([]compareRow, 0, len(results))
			for _, r := range results {
				row := compareRow{
					Name:         r.Scenario.Name,
					TargetWidth:  r.Scenario.Config.TargetWidth,
					Modules:      r.ModuleCount,
					Doors:        r.DoorCount,
					DoorWidth:    r.Result.DoorWidth,
					Leftover:     r.Leftover,
					WastePercent: r.WastePercent,
					Optimal:      r.Result.IsOptimal,
				}
				if r.Err != nil {
					row.Error = r.Err.Error()
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, rows)
			}

			printTitle(out, "Scenarios for %.0f mm", span)
			cells := make([][]string, 0, len(rows))
			for _, r := range rows {
				if r.Error != "" {
					cells = append(cells, []string{r.Name, "", "", "", "", r.Error})
					continue
				}
				optimal := ""
				if r.Optimal {
					optimal = iconSuccess
				}
				cells = append(cells, []string{
					r.Name,
					fmt.Sprintf("%d / %d", r.Modules, r.Doors),
					fmt.Sprintf("%.0f", r.DoorWidth),
					fmt.Sprintf("%.1f", r.Leftover),
					fmt.Sprintf("%.2f%%", r.WastePercent),
					optimal,
				})
			}
			printTable(out, []string{"Scenario", "Modules/Doors", "Door", "Leftover", "Waste", "Optimal"}, cells)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
