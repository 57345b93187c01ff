package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/scan"
	"github.com/lakshaymaurya-felt/devsweep/internal/ui"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan for projects and show what can be cleaned (default)",
	Long:  "Find project directories and list their build artifacts and dependency caches, largest first.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().String("min-size", "", "Minimum cleanable size to show (e.g., 50MB)")
}

func runScan(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	projects, err := a.findProjects(a.roots(args))
	if err != nil {
		return err
	}

	if s, _ := cmd.Flags().GetString("min-size"); s != "" {
		threshold, err := core.ParseSize(s)
		if err != nil {
			return fmt.Errorf("invalid --min-size %q: %w", s, err)
		}
		projects = scan.MinSize(projects, threshold)
	}
	scan.SortBySize(projects)

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), projects)
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderProjects(projects))
	a.printWarnings(cmd.ErrOrStderr())
	return nil
}
