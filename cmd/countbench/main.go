// Command countbench benchmarks every counting algorithm on benches/nums.json
// (or -input) and prints a summary table.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/countnums/internal/bench"
	"github.com/agbru/countnums/internal/cli"
	apperrors "github.com/agbru/countnums/internal/errors"
	"github.com/agbru/countnums/internal/input"
	"github.com/agbru/countnums/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, out, errOut io.Writer) int {
	opts := bench.DefaultOptions()
	fs := flag.NewFlagSet("countbench", flag.ContinueOnError)
	fs.SetOutput(errOut)
	path := fs.String("input", bench.DefaultInputPath, "JSON array of numbers to benchmark on.")
	threshold := fs.Uint64("threshold", bench.DefaultThreshold, "Exclusive lower bound of the count.")
	fs.DurationVar(&opts.WarmUp, "warmup", opts.WarmUp, "Warm-up time per algorithm.")
	fs.DurationVar(&opts.SampleTime, "sample-time", opts.SampleTime, "Target duration of one sample.")
	fs.IntVar(&opts.Samples, "samples", opts.Samples, "Number of samples per algorithm.")
	noColor := fs.Bool("no-color", false, "Disable colored output.")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		return apperrors.HandleError(apperrors.ArgumentError{Message: err.Error()}, errOut)
	}
	if fs.NArg() > 0 {
		return apperrors.HandleError(apperrors.ArgumentError{
			Message: fmt.Sprintf("unexpected argument %q", fs.Arg(0)),
		}, errOut)
	}

	ui.InitTheme(*noColor || !cli.IsTerminal(out))

	nums, err := input.Load(*path)
	if err != nil {
		return apperrors.HandleError(err, errOut)
	}

	bench.CaptureEnvironment().Write(out)
	fmt.Fprintln(out)

	spin := cli.NewSpinner(errOut)
	spin.Start()
	reports, err := bench.Run(ctx, bench.DefaultCases(), nums, *threshold, opts, func(c bench.Case) {
		spin.UpdateSuffix(" benchmarking " + c.Label)
	})
	spin.Stop()
	if err != nil {
		return apperrors.HandleError(err, errOut)
	}

	bench.WriteReport(out, len(nums), *threshold, reports)
	return apperrors.ExitSuccess
}
