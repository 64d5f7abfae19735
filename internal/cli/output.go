package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/piwi3910/CabinetFit/internal/engine"
	"github.com/piwi3910/CabinetFit/internal/export"
	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/piwi3910/CabinetFit/internal/project"
	"github.com/spf13/cobra"
)

// maxRecentProjects bounds the recent list kept in the application config.
const maxRecentProjects = 10

// outputOpts holds the output flags of commands that produce plans.
type outputOpts struct {
	json   bool
	name   string
	pdf    string
	labels string
	xlsx   string
	save   string
}

func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&o.name, "name", "Layout", "plan name used in exports")
	cmd.Flags().StringVar(&o.pdf, "pdf", "", "write an elevation PDF")
	cmd.Flags().StringVar(&o.labels, "labels", "", "write a PDF of QR module labels")
	cmd.Flags().StringVar(&o.xlsx, "xlsx", "", "write an Excel module schedule")
	cmd.Flags().StringVar(&o.save, "save", "", "save the plans as a project file")
}

// run describes the plans a command produced, for writing to files.
type run struct {
	cfg        model.LayoutConfig
	totalWidth float64
	finishes   model.Finishes
	plans      []model.Plan
}

// write exports r to every file requested on the command line.
func (o *outputOpts) write(cmd *cobra.Command, root *rootOpts, r run) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	if o.pdf != "" {
		prog := newProgress(logger)
		if err := export.ExportPDF(o.pdf, r.plans, r.cfg); err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}
		prog.done("Wrote elevation PDF")
		if !o.json {
			printFile(out, o.pdf)
		}
	}
	if o.labels != "" {
		prog := newProgress(logger)
		if err := export.ExportLabels(o.labels, r.plans); err != nil {
			return fmt.Errorf("failed to export labels: %w", err)
		}
		prog.done("Wrote module labels")
		if !o.json {
			printFile(out, o.labels)
		}
	}
	if o.xlsx != "" {
		prog := newProgress(logger)
		if err := export.ExportSchedule(o.xlsx, r.plans); err != nil {
			return fmt.Errorf("failed to export schedule: %w", err)
		}
		prog.done("Wrote module schedule")
		if !o.json {
			printFile(out, o.xlsx)
		}
	}
	if o.save != "" {
		if err := o.saveProject(root, r); err != nil {
			return err
		}
		logger.Info("Saved project", "path", o.save)
		if !o.json {
			printFile(out, o.save)
		}
	}
	return nil
}

// saveProject writes the plans to a project file and records it as recent.
func (o *outputOpts) saveProject(root *rootOpts, r run) error {
	app, err := project.LoadAppConfig(root.appConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load app config: %w", err)
	}

	p := model.NewProject()
	p.Name = o.name
	p.Config = r.cfg
	p.Finishes = r.finishes
	p.Width = r.totalWidth
	p.Plans = r.plans
	if err := project.SaveProject(o.save, p); err != nil {
		return err
	}

	app.AddRecentProject(o.save, maxRecentProjects)
	if err := project.SaveAppConfig(root.appConfigPath, app); err != nil {
		return fmt.Errorf("failed to update recent projects: %w", err)
	}
	return nil
}

// finishOpts holds the trim widths subtracted from a total width.
type finishOpts struct {
	model.Finishes
}

func (f *finishOpts) register(cmd *cobra.Command, defaults model.Finishes) {
	f.Finishes = defaults
	cmd.Flags().Float64Var(&f.Left, "left", defaults.Left, "left finish width (mm)")
	cmd.Flags().Float64Var(&f.Right, "right", defaults.Right, "right finish width (mm)")
	cmd.Flags().Float64Var(&f.Corner1, "corner1", defaults.Corner1, "first corner finish width (mm)")
	cmd.Flags().Float64Var(&f.Corner2, "corner2", defaults.Corner2, "second corner finish width (mm)")
}

// parseLength parses a positional millimetre argument.
func parseLength(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}

// parseCategory resolves a --category value against the rule table of cfg.
func parseCategory(cfg model.LayoutConfig, s string) (model.Category, error) {
	cat := model.Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := cfg.Categories[cat]; ok {
		return cat, nil
	}
	known := make([]string, 0, len(cfg.Categories))
	for c := range cfg.Categories {
		known = append(known, string(c))
	}
	sort.Strings(known)
	return "", fmt.Errorf("unknown category %q (known: %s)", s, strings.Join(known, ", "))
}

// newPlan builds a plan from a filled layout.
func newPlan(name string, cat model.Category, section model.Section, width float64, r engine.GapFillResult, suggestions []string) model.Plan {
	plan := model.NewPlan(name, cat, section, width)
	if r.Placements != nil {
		plan.Placements = r.Placements
	}
	plan.DoorWidth = r.DoorWidth
	plan.Leftover = r.Leftover
	plan.IsOptimal = r.IsOptimal
	plan.Suggestions = suggestions
	return plan
}
