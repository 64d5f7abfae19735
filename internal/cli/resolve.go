package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type resolveOutput struct {
	Span      float64 `json:"span"`
	Count     int     `json:"count"`
	DoorWidth float64 `json:"door_width"`
	Leftover  float64 `json:"leftover"`
}

func newResolveCmd(root *rootOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve SPAN COUNT",
		Short: "Resolve the door width for a span and door count",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			span, err := parseLength("span", args[0])
			if err != nil {
				return err
			}
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid door count %q: %w", args[1], err)
			}

			calc, cfg, err := root.calculator(cmd.Context())
			if err != nil {
				return err
			}
			width, err := calc.ResolveWidth(span, count)
			if err != nil {
				return fmt.Errorf("cannot resolve %d doors in %.0fmm: %w", count, span, err)
			}

			res := resolveOutput{Span: span, Count: count, DoorWidth: width, Leftover: span - width*float64(count)}
			out := cmd.OutOrStdout()
			if asJSON {
				return printJSON(out, res)
			}
			printKeyValue(out, "Door width", fmt.Sprintf("%.0f mm", res.DoorWidth))
			printKeyValue(out, "Doors", strconv.Itoa(res.Count))
			printRemainder(out, cfg, res.Leftover)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}
