package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/agbru/countnums/internal/counting"
	apperrors "github.com/agbru/countnums/internal/errors"
)

// TimeCount runs algo once over nums and measures the elapsed time with clock.
// Exactly one counting function is invoked between the two clock readings.
func TimeCount(clock Clock, algo counting.Algorithm, nums []uint64, threshold uint64) CountResult {
	start := clock.Now()
	count := algo.Run(nums, threshold)
	elapsed := clock.Now().Sub(start)
	return CountResult{Algorithm: algo, Count: count, Duration: elapsed}
}

// ExecuteCounts times each algorithm in turn over the same sequence. The runs
// are sequential so that they do not disturb each other's timings. The context
// is checked between runs.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - algos: The algorithms to run, in order.
//   - nums: The sequence, shared read-only by every run.
//   - threshold: The exclusive lower bound of the count.
//   - clock: The time source.
//
// Returns:
//   - []CountResult: One result per algorithm, in the order given.
//   - error: The context error if the run was canceled.
func ExecuteCounts(ctx context.Context, algos []counting.Algorithm, nums []uint64, threshold uint64, clock Clock) ([]CountResult, error) {
	results := make([]CountResult, 0, len(algos))
	for _, algo := range algos {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, TimeCount(clock, algo, nums, threshold))
	}
	return results, nil
}

// Fastest returns the result with the shortest duration, or false if results
// is empty.
func Fastest(results []CountResult) (CountResult, bool) {
	if len(results) == 0 {
		return CountResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Duration < best.Duration {
			best = r
		}
	}
	return best, true
}

// AnalyzeComparisonResults sorts results by duration, displays the comparison
// table and checks that every algorithm produced the same count.
//
// Parameters:
//   - results: The results to analyze; sorted in place.
//   - size: The length of the sequence the results were computed on.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - error: nil when all counts agree, an apperrors.MismatchError otherwise.
func AnalyzeComparisonResults(results []CountResult, size int, presenter ResultPresenter, out io.Writer) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to compare")
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Duration < results[j].Duration
	})

	presenter.PresentComparisonTable(results, size, out)

	counts := make(map[string]int, len(results))
	mismatch := false
	for _, r := range results {
		counts[r.Algorithm.Name()] = r.Count
		if r.Count != results[0].Count {
			mismatch = true
		}
	}
	if mismatch {
		return apperrors.MismatchError{Counts: counts}
	}

	presenter.PresentResult(results[0], size, out)
	return nil
}
