package cli

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/piwi3910/CabinetFit/internal/model"
	"github.com/piwi3910/CabinetFit/internal/project"
	"github.com/spf13/cobra"
)

func newBackupCmd(root *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore preferences and projects",
	}
	cmd.AddCommand(newBackupExportCmd(root))
	cmd.AddCommand(newBackupImportCmd(root))
	return cmd
}

func newBackupExportCmd(root *rootOpts) *cobra.Command {
	var recent bool

	cmd := &cobra.Command{
		Use:   "export FILE [PROJECT...]",
		Short: "Bundle the application config and projects into one file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			app, err := project.LoadAppConfig(root.appConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load app config: %w", err)
			}

			paths := args[1:]
			if recent {
				paths = append(paths, app.RecentProjects...)
			}

			projects := make([]model.Project, 0, len(paths))
			for _, path := range paths {
				p, err := project.LoadProject(path)
				if err != nil {
					logger.Warn("skipping project", "path", path, "err", err)
					continue
				}
				projects = append(projects, p)
			}

			if err := project.ExportAllData(args[0], app, projects); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Exported config and %d project(s)", len(projects))
			printFile(out, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&recent, "recent", false, "include every recent project")
	return cmd
}

func newBackupImportCmd(root *rootOpts) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Restore the application config and write bundled projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if err := project.SaveAppConfig(root.appConfigPath, backup.Config); err != nil {
				return fmt.Errorf("failed to restore app config: %w", err)
			}
			printSuccess(out, "Restored config from backup %s (%s)", backup.Version, backup.CreatedAt)

			for i, p := range backup.Projects {
				path := filepath.Join(dir, fmt.Sprintf("%02d-%s%s", i+1, fileSlug(p.Name), project.ProjectExt))
				if err := project.SaveProject(path, p); err != nil {
					return err
				}
				printFile(out, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory for restored projects")
	return cmd
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// fileSlug turns a project name into a file name fragment.
func fileSlug(name string) string {
	s := strings.Trim(slugUnsafe.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if s == "" {
		return "project"
	}
	return s
}
