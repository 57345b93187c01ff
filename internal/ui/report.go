package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lakshaymaurya-felt/devsweep/internal/clean"
	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
	"github.com/lakshaymaurya-felt/devsweep/internal/scan"
)

// RenderProjects renders the scan results table followed by a total line.
func RenderProjects(projects []project.ScannedProject) string {
	if len(projects) == 0 {
		return "\n  " + lipgloss.NewStyle().Foreground(ColorPrimary).Render(IconInfo) +
			" No projects with cleanable artifacts found.\n"
	}

	rows := make([][]string, 0, len(projects))
	for i, p := range projects {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			p.Name,
			p.Kind,
			core.FormatSize(p.TotalCleanableBytes),
			core.FormatAge(p.LastModified),
			strings.Join(p.TargetNames(), ", "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(DimStyle()).
		Headers("#", "PROJECT", "KIND", "SIZE", "LAST ACTIVE", "TARGETS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Bold(true).Foreground(ColorPrimary)
			case col == 3:
				return base.Foreground(ColorWarning).Align(lipgloss.Right)
			case col == 0 || col == 4:
				return base.Foreground(ColorTextDim)
			}
			return base
		})

	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(t.String())
	s.WriteString("\n\n")
	fmt.Fprintf(&s, "  %s %s projects, %s reclaimable\n\n",
		IconBroom,
		strconv.Itoa(len(projects)),
		SizeStyle().Render(core.FormatSize(scan.TotalBytes(projects))))
	return s.String()
}

// RenderCleanSummary reports bytes freed and every target-level error.
func RenderCleanSummary(results []clean.Result, dryRun bool) string {
	var s strings.Builder
	s.WriteString("\n")
	if dryRun {
		fmt.Fprintf(&s, "  %s nothing was deleted\n\n", TagWarningStyle().Render(" DRY RUN "))
	}

	for _, r := range results {
		mark := SuccessStyle().Render(IconCheck)
		if len(r.Errors) > 0 {
			mark = ErrorStyle().Render(IconCross)
		}
		fmt.Fprintf(&s, "  %s %-30s %s\n", mark, r.ProjectName, SizeStyle().Render(core.FormatSize(r.BytesFreed)))
		for _, e := range r.Errors {
			fmt.Fprintf(&s, "      %s %s\n", ErrorStyle().Render(IconWarning), e)
		}
	}

	verb := "Freed"
	if dryRun {
		verb = "Would free"
	}
	errs := clean.AllErrors(results)
	s.WriteString("\n")
	fmt.Fprintf(&s, "  %s %s across %d projects",
		verb, SizeStyle().Render(core.FormatSize(clean.TotalFreed(results))), len(results))
	if len(errs) > 0 {
		fmt.Fprintf(&s, " (%s)", ErrorStyle().Render(fmt.Sprintf("%d errors", len(errs))))
	}
	s.WriteString("\n\n")
	return s.String()
}

// RenderSummary prints totals, the per-kind breakdown and, when known, the
// free space of the scanned volume.
func RenderSummary(root string, sum scan.Summary, vol *scan.VolumeUsage) string {
	var s strings.Builder
	fmt.Fprintf(&s, "\n  %s\n\n", TitleStyle().Render("dev-sweep summary for "+root))
	fmt.Fprintf(&s, "  Total projects:     %s\n",
		lipgloss.NewStyle().Foreground(ColorPrimary).Render(strconv.Itoa(sum.TotalProjects)))
	fmt.Fprintf(&s, "  Reclaimable space:  %s\n", SizeStyle().Render(core.FormatSize(sum.ReclaimableBytes)))
	if vol != nil {
		fmt.Fprintf(&s, "  Volume free:        %s of %s (%.1f%% used)\n",
			core.FormatSize(vol.Free), core.FormatSize(vol.Total), vol.UsedPercent)
	}
	s.WriteString("\n")

	if len(sum.ByKind) > 0 {
		fmt.Fprintf(&s, "  %s\n", DimStyle().Render("By project type:"))
		for _, k := range sum.ByKind {
			fmt.Fprintf(&s, "    %12s  %s projects, %s\n",
				k.Kind,
				lipgloss.NewStyle().Foreground(ColorPrimary).Render(strconv.Itoa(k.Projects)),
				SizeStyle().Render(core.FormatSize(k.ReclaimableBytes)))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// ProjectLabel is the one-line description used by the picker.
func ProjectLabel(p project.ScannedProject) string {
	return fmt.Sprintf("%s (%s) %s [%s]",
		p.Name, p.Kind, core.FormatSize(p.TotalCleanableBytes), strings.Join(p.TargetNames(), ", "))
}
