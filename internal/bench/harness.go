package bench

import (
	"context"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/agbru/countnums/internal/counting"
)

const (
	// DefaultInputPath is the benchmark input, relative to the repository root.
	DefaultInputPath = "benches/nums.json"
	// DefaultThreshold is the threshold every benchmark case counts against.
	DefaultThreshold uint64 = 500
)

// Options controls how long each case is measured.
type Options struct {
	// WarmUp is the time spent running a case before any sample is taken.
	WarmUp time.Duration
	// SampleTime is the target duration of one sample.
	SampleTime time.Duration
	// Samples is the number of timed samples per case.
	Samples int
}

// DefaultOptions returns the options used by the countbench command.
func DefaultOptions() Options {
	return Options{
		WarmUp:     time.Second,
		SampleTime: 50 * time.Millisecond,
		Samples:    50,
	}
}

// Case is one named benchmark.
type Case struct {
	Label     string
	Algorithm counting.Algorithm
}

// DefaultCases returns one case per algorithm, labeled as in reports.
func DefaultCases() []Case {
	algos := counting.Algorithms()
	cases := make([]Case, 0, len(algos))
	for _, a := range algos {
		cases = append(cases, Case{Label: a.BenchLabel(), Algorithm: a})
	}
	return cases
}

// Report summarizes the samples of one case. Durations are per call.
type Report struct {
	Label      string
	Algorithm  counting.Algorithm
	Count      int
	Iterations int
	Samples    []float64 // nanoseconds per call, one entry per sample

	Mean   time.Duration
	StdDev time.Duration
	Median time.Duration
	Min    time.Duration
	Max    time.Duration

	// Throughput is the number of elements scanned per second at the mean.
	Throughput float64
}

// sink receives every benchmark result so the calls cannot be elided.
var sink int

// Consume hands v to the package sink.
//
//go:noinline
func Consume(v int) {
	sink = v
}

// Run measures every case against nums. onCase, when non-nil, is called
// before each case starts. Run stops between samples once ctx is done and
// returns the reports completed so far with the context error.
func Run(ctx context.Context, cases []Case, nums []uint64, threshold uint64, opts Options, onCase func(Case)) ([]Report, error) {
	if opts.Samples < 1 {
		opts.Samples = 1
	}
	reports := make([]Report, 0, len(cases))
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		if onCase != nil {
			onCase(c)
		}
		r, err := runCase(ctx, c, nums, threshold, opts)
		if err != nil {
			return reports, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func runCase(ctx context.Context, c Case, nums []uint64, threshold uint64, opts Options) (Report, error) {
	iters := calibrate(c.Algorithm, nums, threshold, opts)

	samples := make([]float64, 0, opts.Samples)
	for range opts.Samples {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		elapsed := timeIterations(c.Algorithm, nums, threshold, iters)
		samples = append(samples, float64(elapsed.Nanoseconds())/float64(iters))
	}

	r := Report{
		Label:      c.Label,
		Algorithm:  c.Algorithm,
		Count:      c.Algorithm.Run(nums, threshold),
		Iterations: iters,
		Samples:    samples,
	}
	summarize(&r, len(nums))
	return r, nil
}

// calibrate runs the algorithm for the warm-up period, doubling the batch
// size each round, and returns the iteration count that fills one sample.
func calibrate(algo counting.Algorithm, nums []uint64, threshold uint64, opts Options) int {
	var (
		total time.Duration
		calls int
	)
	batch := 1
	for total < opts.WarmUp || calls == 0 {
		total += timeIterations(algo, nums, threshold, batch)
		calls += batch
		batch *= 2
	}

	perCall := total / time.Duration(calls)
	if perCall <= 0 {
		perCall = 1
	}
	return max(1, int(opts.SampleTime/perCall))
}

func timeIterations(algo counting.Algorithm, nums []uint64, threshold uint64, iters int) time.Duration {
	start := time.Now()
	for range iters {
		Consume(algo.Run(nums, threshold))
	}
	return time.Since(start)
}

func summarize(r *Report, size int) {
	sorted := slices.Clone(r.Samples)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 {
		std = 0
	}
	r.Mean = nanos(mean)
	r.StdDev = nanos(std)
	r.Median = nanos(stat.Quantile(0.5, stat.Empirical, sorted, nil))
	r.Min = nanos(floats.Min(sorted))
	r.Max = nanos(floats.Max(sorted))
	if mean > 0 {
		r.Throughput = float64(size) / (mean / 1e9)
	}
}

func nanos(ns float64) time.Duration {
	return time.Duration(ns + 0.5)
}
