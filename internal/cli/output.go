// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatResultLine], [FormatQuietResult].
//
//   - Generate* functions write scripts for other tools.
//     Examples: [GenerateCompletion].

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agbru/countnums/internal/orchestration"
)

// FormatResultLine formats a result as the single line printed on success,
// for example "ForWithBranch took 1.2µs on 5 nums: 2".
//
// Parameters:
//   - res: The timed result.
//   - size: The length of the sequence.
//
// Returns:
//   - string: The formatted line, without a trailing newline.
func FormatResultLine(res orchestration.CountResult, size int) string {
	return fmt.Sprintf("%s took %s on %d nums: %d", res.Algorithm.Name(), res.Duration, size, res.Count)
}

// FormatQuietResult formats a result for quiet mode output: the count alone.
func FormatQuietResult(res orchestration.CountResult) string {
	return strconv.Itoa(res.Count)
}

// DisplayResult writes the result line to out.
func DisplayResult(out io.Writer, res orchestration.CountResult, size int) {
	fmt.Fprintln(out, FormatResultLine(res, size))
}

// DisplayQuietResult writes only the count to out.
func DisplayQuietResult(out io.Writer, res orchestration.CountResult) {
	fmt.Fprintln(out, FormatQuietResult(res))
}
