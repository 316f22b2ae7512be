//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"time"

	"github.com/agbru/countnums/internal/counting"
)

// CountResult encapsulates the outcome of a single timed count.
// It serves as the shared domain type between orchestration and presentation layers.
type CountResult struct {
	// Algorithm is the algorithm that produced the result.
	Algorithm counting.Algorithm
	// Count is the number of elements greater than the threshold.
	Count int
	// Duration is the wall-clock time of the single invocation.
	Duration time.Duration
}

// Clock is the time source used to measure a count. Production code uses
// SystemClock; tests substitute a mock to make durations deterministic.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ResultPresenter defines the interface for presenting count results.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays all results of a comparison run.
	PresentComparisonTable(results []CountResult, size int, out io.Writer)

	// PresentResult displays a single result.
	PresentResult(result CountResult, size int, out io.Writer)
}
