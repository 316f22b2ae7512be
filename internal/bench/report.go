package bench

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/countnums/internal/format"
	"github.com/agbru/countnums/internal/ui"
)

var reportHeaders = []string{"Benchmark", "Mean", "StdDev", "Median", "Min", "Max", "Throughput", "Count"}

// Rows returns the table cells for reports, one row per case.
func Rows(reports []Report) [][]string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Label,
			r.Mean.String(),
			"± " + r.StdDev.String(),
			r.Median.String(),
			r.Min.String(),
			r.Max.String(),
			format.FormatThroughput(r.Throughput),
			fmt.Sprint(r.Count),
		})
	}
	return rows
}

// WriteReport renders the benchmark results as a table using the active
// report theme. The header gives the sequence length and its in-memory size.
func WriteReport(out io.Writer, size int, threshold uint64, reports []Report) {
	theme := ui.GetCurrentReportTheme()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Foreground(theme.Text).Padding(0, 1)
	labelStyle := cellStyle.Foreground(theme.Success)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(reportHeaders...).
		Rows(Rows(reports)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		})

	fmt.Fprintf(out, "%d nums (%s), threshold %d\n", size, format.FormatBytes(uint64(size)*8), threshold)
	fmt.Fprintln(out, t.Render())
}
