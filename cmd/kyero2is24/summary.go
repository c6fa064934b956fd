package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/RubenBarrionuevo/kyero2is24/pkg/services"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C792EA")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#C3E88D"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFCB6B"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F07178")).
			Bold(true)
)

// printSummary renders the end-of-run report on the terminal. The log file
// carries the same numbers in the final summary line.
func printSummary(rep *services.Report, runErr error) {
	if rep == nil {
		return
	}

	fmt.Println(titleStyle.Render("Run summary"))
	fmt.Printf("  properties parsed     %d\n", rep.Parsed)
	if rep.SkippedType > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  unsupported type      %d", rep.SkippedType)))
	}
	if rep.Dropped > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("  dropped by validation %d", rep.Dropped)))
	}
	if rep.OutputPath != "" {
		fmt.Printf("  records written       %d -> %s\n", rep.Written, rep.OutputPath)
	}

	s := rep.Sync
	if s.Downloaded+s.Skipped+s.Failed+s.Removed+s.RemoveFailed > 0 {
		fmt.Println(okStyle.Render(fmt.Sprintf("  images downloaded     %d (skipped %d)", s.Downloaded, s.Skipped)))
		if s.Failed > 0 {
			fmt.Println(warnStyle.Render(fmt.Sprintf("  images failed         %d", s.Failed)))
		}
		if s.Removed > 0 || s.RemoveFailed > 0 {
			fmt.Printf("  stale dirs removed    %d (failed %d)\n", s.Removed, s.RemoveFailed)
		}
	}

	if runErr != nil {
		fmt.Println(errStyle.Render(fmt.Sprintf("  aborted: %v", runErr)))
	}
}
