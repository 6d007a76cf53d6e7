package release

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	reportHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	reportCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Prints a size-annotated listing of the distribution directory.
func Report(dist string) error {
	entries, err := os.ReadDir(dist)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
		}
		rows = append(rows, []string{entry.Name(), humanSize(info.Size())})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return reportHeaderStyle
			}
			return reportCellStyle
		}).
		Headers("ARTIFACT", "SIZE").
		Rows(rows...)

	fmt.Println(t)
	return nil
}

// Prints the final distribution listing for a run.
//
// Failure to list the directory is tolerated and never affects the
// run's outcome.
func (p *pipeline) report() {
	if err := Report(p.dist); err != nil {
		slog.Warn("failed to list distribution directory", "dist", p.dist, "error", err)
	}
}

// Formats a byte count for the report, using binary units.
//
// Covers the full int64 range; sparse files in the distribution
// directory can report sizes far beyond any real artifact.
func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
