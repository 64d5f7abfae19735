package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/piwi3910/CabinetFit/internal/project"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds the persistent flags shared by every command.
type rootOpts struct {
	verbose       bool
	configPath    string // layout constants (.toml/.yaml)
	appConfigPath string // application preferences (.json)
}

// layoutConfig returns the layout constants for this run: the --config file
// when given, otherwise the default layout saved in the application config.
func (o *rootOpts) layoutConfig(ctx context.Context) (model.LayoutConfig, error) {
	logger := loggerFromContext(ctx)
	if o.configPath != "" {
		cfg, err := project.LoadLayoutConfig(o.configPath)
		if err != nil {
			return model.LayoutConfig{}, err
		}
		logger.Debug("loaded layout config", "path", o.configPath)
		return cfg, nil
	}

	app, err := project.LoadAppConfig(o.appConfigPath)
	if err != nil {
		return model.LayoutConfig{}, fmt.Errorf("failed to load app config: %w", err)
	}
	if err := app.DefaultLayout.Validate(); err != nil {
		return model.LayoutConfig{}, fmt.Errorf("invalid default layout in %s: %w", o.appConfigPath, err)
	}
	logger.Debug("using default layout", "app_config", o.appConfigPath)
	return app.DefaultLayout, nil
}

// calculator builds an engine for this run's layout constants.
func (o *rootOpts) calculator(ctx context.Context) (*engine.Calculator, model.LayoutConfig, error) {
	cfg, err := o.layoutConfig(ctx)
	if err != nil {
		return nil, model.LayoutConfig{}, err
	}
	loggerFromContext(ctx).Debug("layout constants",
		"min", cfg.MinWidth, "max", cfg.MaxWidth, "target", cfg.TargetWidth,
		"remainder", fmt.Sprintf("%g..%g", cfg.MinRemainder, cfg.MaxRemainder))
	return engine.New(cfg), cfg, nil
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOpts{appConfigPath: project.DefaultConfigPath()}

	root := &cobra.Command{
		Use:          "cabinetfit",
		Short:        "CabinetFit lays out cabinet modules along a wall",
		Long:         `CabinetFit computes door widths and module layouts for kitchen and furniture runs, places upper-section anchors, fills around fixed obstacles and recommends refrigerators that fit a space.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("cabinetfit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "layout constants file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&opts.appConfigPath, "app-config", opts.appConfigPath, "application preferences file")

	root.AddCommand(newResolveCmd(opts))
	root.AddCommand(newDistributeCmd(opts))
	root.AddCommand(newUpperCmd(opts))
	root.AddCommand(newFillCmd(opts))
	root.AddCommand(newCompareCmd(opts))
	root.AddCommand(newRecommendCmd(opts))
	root.AddCommand(newFridgeCmd(opts))
	root.AddCommand(newModelsCmd())
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newBackupCmd(opts))

	return root
}

// Execute runs the cabinetfit CLI and returns an error if any command fails.
// Errors are returned unprinted; the caller reports them.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	root.SilenceErrors = true
	return root.ExecuteContext(ctx)
}
