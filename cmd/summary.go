package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/scan"
	"github.com/lakshaymaurya-felt/devsweep/internal/ui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [path]",
	Short: "Show a quick summary of reclaimable space",
	Long:  "Total reclaimable space grouped by project type, with the free space of the scanned volume.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

type summaryReport struct {
	scan.Summary
	ReclaimableHuman string            `json:"total_reclaimable_human"`
	Volume           *scan.VolumeUsage `json:"volume,omitempty"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	roots := a.roots(args)
	projects, err := a.findProjects(roots)
	if err != nil {
		return err
	}
	sum := scan.Summarize(projects)

	var vol *scan.VolumeUsage
	if v, err := scan.Volume(roots[0]); err == nil {
		vol = &v
	} else {
		a.logger.Debug("volume usage unavailable", "path", roots[0], "err", err)
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), summaryReport{
			Summary:          sum,
			ReclaimableHuman: core.FormatSize(sum.ReclaimableBytes),
			Volume:           vol,
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), ui.RenderSummary(roots[0], sum, vol))
	a.printWarnings(cmd.ErrOrStderr())
	return nil
}
