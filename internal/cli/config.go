package cli

import (
	"fmt"
	"os"

	"github.com/piwi3910/CabinetFit/internal/project"
	"github.com/spf13/cobra"
)

func newConfigCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and write layout configuration",
	}
	cmd.AddCommand(newConfigInitCmd(root))
	cmd.AddCommand(newConfigShowCmd(root))
	return cmd
}

func newConfigInitCmd(root *rootOpts) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write the active layout constants to a .toml or .yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg, err := root.layoutConfig(cmd.Context())
			if err != nil {
				return err
			}
			if err := project.SaveLayoutConfig(path, cfg); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote layout config")
			printFile(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(root *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active layout constants as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.layoutConfig(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cfg)
		},
	}
}
