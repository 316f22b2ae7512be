package app

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/countnums/internal/cli"
	apperrors "github.com/agbru/countnums/internal/errors"
	"github.com/agbru/countnums/internal/input"
	"github.com/agbru/countnums/internal/logging"
	"github.com/agbru/countnums/internal/metrics"
	"github.com/agbru/countnums/internal/orchestration"
)

// runCount loads the input, times the selected algorithm (or all of them in
// comparison mode) and presents the outcome.
func (a *Application) runCount(ctx context.Context, out io.Writer) error {
	nums, err := a.loadInput(ctx)
	if err != nil {
		return err
	}

	results, err := a.executeCounts(ctx, nums)
	if err != nil {
		return err
	}

	presenter := cli.CLIResultPresenter{Quiet: a.Config.Quiet}
	if a.Config.Compare {
		if err := orchestration.AnalyzeComparisonResults(results, len(nums), presenter, out); err != nil {
			return err
		}
	} else {
		presenter.PresentResult(results[0], len(nums), out)
	}

	return a.writeMetrics(len(nums), results)
}

// loadInput reads the input file inside a tracing span and logs its shape.
func (a *Application) loadInput(ctx context.Context) ([]uint64, error) {
	_, span := a.tracer.Start(ctx, "input.Load",
		trace.WithAttributes(attribute.String("input.path", a.Config.InputPath)))
	defer span.End()

	before := a.memory.Snapshot()
	nums, err := input.Load(a.Config.InputPath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, apperrors.Stage(err))
		return nil, err
	}
	after := a.memory.Snapshot()

	span.SetAttributes(attribute.Int("input.size", len(nums)))
	a.Logger.Debug("input loaded",
		logging.String("path", a.Config.InputPath),
		logging.Int("size", len(nums)),
		logging.Int("heap_growth_bytes", int(before.HeapGrowth(after))),
	)
	return nums, nil
}

// executeCounts runs the configured algorithms inside a tracing span.
func (a *Application) executeCounts(ctx context.Context, nums []uint64) ([]orchestration.CountResult, error) {
	algos := a.Config.Algorithms()
	ctx, span := a.tracer.Start(ctx, "count",
		trace.WithAttributes(
			attribute.Int("count.algorithms", len(algos)),
			attribute.Int64("count.threshold", int64(min(a.Config.Threshold, 1<<63-1))),
		))
	defer span.End()

	results, err := orchestration.ExecuteCounts(ctx, algos, nums, a.Config.Threshold, a.Clock)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "canceled")
		return nil, err
	}
	for _, res := range results {
		a.Logger.Debug("count finished",
			logging.String("algorithm", res.Algorithm.Name()),
			logging.Int("count", res.Count),
			logging.Duration("elapsed", res.Duration),
			logging.Uint64("threshold", a.Config.Threshold),
		)
	}
	return results, nil
}

// writeMetrics exports the results when --metrics-file is set.
func (a *Application) writeMetrics(size int, results []orchestration.CountResult) error {
	if a.Config.MetricsFile == "" {
		return nil
	}
	samples := make([]metrics.CountSample, 0, len(results))
	for _, res := range results {
		samples = append(samples, metrics.CountSample{
			Algorithm: res.Algorithm.Name(),
			Count:     res.Count,
			Duration:  res.Duration,
		})
	}

	collector := metrics.NewCountCollector()
	collector.Observe(size, a.Config.Threshold, samples)
	if err := collector.WriteTextfile(a.Config.MetricsFile); err != nil {
		return apperrors.WrapError(err, "writing metrics to %s", a.Config.MetricsFile)
	}
	a.Logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
	return nil
}
