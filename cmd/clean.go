package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devsweep/internal/clean"
	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/scan"
	"github.com/lakshaymaurya-felt/devsweep/internal/ui"
)

var (
	dryRun    bool
	cleanAll  bool
	assumeYes bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Interactively select and clean projects",
	Long:  "Find and remove build artifacts (node_modules, target, build, dist, etc.) from project directories.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
	cleanCmd.Flags().BoolVarP(&cleanAll, "all", "a", false, "Clean all found projects without selecting")
	cleanCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}

// cleanReport is the JSON shape of a clean run.
type cleanReport struct {
	DryRun          bool           `json:"dry_run"`
	ProjectsCleaned int            `json:"projects_cleaned"`
	TotalBytesFreed uint64         `json:"total_bytes_freed"`
	Errors          []string       `json:"errors"`
	Results         []clean.Result `json:"results"`
}

func runClean(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	out := cmd.OutOrStdout()
	interactive := ui.IsInteractive(os.Stdin) && ui.IsInteractive(os.Stdout)

	projects, err := a.findProjects(a.roots(args))
	if err != nil {
		return err
	}
	scan.SortBySize(projects)

	if len(projects) == 0 {
		return reportEmpty(out, ui.RenderProjects(nil))
	}
	if !jsonOutput {
		fmt.Fprint(out, ui.RenderProjects(projects))
	}

	selected, err := selectProjects(projects, interactive)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return reportEmpty(out, fmt.Sprintf("  %s Nothing selected.\n\n", ui.IconInfo))
	}

	if !dryRun && !assumeYes {
		if !interactive {
			return errors.New("refusing to delete without confirmation: pass --yes or run in a terminal")
		}
		ok, err := ui.Confirm(fmt.Sprintf("Clean %d projects? This will free %s and cannot be undone!",
			len(selected), core.FormatSize(scan.TotalBytes(selected))))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(out, "  %s Aborted.\n\n", ui.ErrorStyle().Render(ui.IconCross))
			return nil
		}
	}

	if !jsonOutput {
		action := "Cleaning"
		if dryRun {
			action = "Would clean"
		}
		fmt.Fprintf(out, "\n  %s %s %d projects...\n", ui.DimStyle().Render(ui.IconArrow), action, len(selected))
	}

	results := a.executor().Clean(selected, dryRun)

	if jsonOutput {
		return writeJSON(out, cleanReport{
			DryRun:          dryRun,
			ProjectsCleaned: len(results),
			TotalBytesFreed: clean.TotalFreed(results),
			Errors:          clean.AllErrors(results),
			Results:         results,
		})
	}
	fmt.Fprint(out, ui.RenderCleanSummary(results, dryRun))
	a.printWarnings(cmd.ErrOrStderr())
	return nil
}

// reportEmpty ends a run that has nothing to clean: an empty report in JSON
// mode, message otherwise.
func reportEmpty(out io.Writer, message string) error {
	if jsonOutput {
		return writeJSON(out, cleanReport{DryRun: dryRun, Errors: []string{}, Results: []clean.Result{}})
	}
	fmt.Fprint(out, message)
	return nil
}

// selectProjects returns every project for --all, otherwise asks the user.
func selectProjects(projects []project.ScannedProject, interactive bool) ([]project.ScannedProject, error) {
	if cleanAll {
		return projects, nil
	}
	if !interactive {
		return nil, errors.New("interactive selection needs a terminal: pass --all to clean every project")
	}

	indices, err := ui.RunPicker(ui.NewPickerModel(projects))
	if err != nil {
		return nil, err
	}
	selected := make([]project.ScannedProject, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, projects[i])
	}
	return selected, nil
}
