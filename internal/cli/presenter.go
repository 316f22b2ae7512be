package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/countnums/internal/format"
	"github.com/agbru/countnums/internal/orchestration"
	"github.com/agbru/countnums/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for count results in the
// command-line interface.
type CLIResultPresenter struct {
	// Quiet reduces the final result to the count alone.
	Quiet bool
}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentComparisonTable displays the comparison summary table with
// algorithm names, durations, counts and the slowdown relative to the
// fastest run. Uses manual padding to correctly handle ANSI color codes.
// Nothing is printed in quiet mode.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.CountResult, size int, out io.Writer) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(out, "%s--- Comparison Summary (%d nums) ---%s\n", ui.ColorBold(), size, ui.ColorReset())

	maxNameLen := len("Algorithm")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Algorithm.Name()))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res)))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sCount%s   %sRelative%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	fastest, _ := orchestration.Fastest(results)
	for _, res := range results {
		name := res.Algorithm.Name()
		duration := displayDuration(res)
		countColor := ui.ColorGreen()
		if res.Count != results[0].Count {
			countColor = ui.ColorRed()
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%-5d%s   %s\n",
			ui.ColorBlue(), name, ui.ColorReset(), padRight("", maxNameLen-len(name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			countColor, res.Count, ui.ColorReset(),
			relative(res, fastest))
	}
	fmt.Fprintln(out)
}

// PresentResult displays the final result line, or just the count in quiet mode.
func (p CLIResultPresenter) PresentResult(res orchestration.CountResult, size int, out io.Writer) {
	if p.Quiet {
		DisplayQuietResult(out, res)
		return
	}
	DisplayResult(out, res, size)
}

func displayDuration(res orchestration.CountResult) string {
	if res.Duration <= 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// relative renders how many times slower res was than fastest.
func relative(res, fastest orchestration.CountResult) string {
	if fastest.Duration <= 0 || res.Duration <= 0 {
		return "-"
	}
	return fmt.Sprintf("x%.2f", float64(res.Duration)/float64(fastest.Duration))
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}
