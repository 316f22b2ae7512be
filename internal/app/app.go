// Package app wires configuration, input loading, counting and presentation
// into the countnums command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/countnums/internal/cli"
	"github.com/agbru/countnums/internal/config"
	"github.com/agbru/countnums/internal/counting"
	apperrors "github.com/agbru/countnums/internal/errors"
	"github.com/agbru/countnums/internal/logging"
	"github.com/agbru/countnums/internal/metrics"
	"github.com/agbru/countnums/internal/orchestration"
	"github.com/agbru/countnums/internal/ui"
)

const tracerName = "github.com/agbru/countnums/internal/app"

// Application represents the countnums application instance.
type Application struct {
	Config    config.AppConfig
	Clock     orchestration.Clock
	Logger    logging.Logger
	ErrWriter io.Writer

	tracer trace.Tracer
	memory *metrics.MemoryCollector
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithClock sets the time source used to measure counts.
func WithClock(c orchestration.Clock) AppOption {
	return func(a *Application) { a.Clock = c }
}

// WithLogger sets the diagnostics logger. By default a console logger on the
// error writer is created when the application runs.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// Arguments are fully validated here; no file is touched.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{
		ErrWriter: errWriter,
		tracer:    otel.Tracer(tracerName),
		memory:    metrics.NewMemoryCollector(),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.Clock == nil {
		app.Clock = orchestration.SystemClock{}
	}

	programName := "countnums"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	noColor := a.Config.NoColor || !cli.IsTerminal(out)
	ui.InitTheme(noColor)
	if a.Logger == nil {
		level := zerolog.WarnLevel
		if a.Config.Verbose {
			level = zerolog.DebugLevel
		}
		if cli.IsTerminal(a.ErrWriter) {
			a.Logger = logging.NewConsoleLogger(a.ErrWriter, "countnums", level, noColor)
		} else {
			a.Logger = logging.NewLogger(a.ErrWriter, "countnums", level)
		}
	}

	err := a.runCount(ctx, out)
	if err != nil {
		a.Logger.Debug("run failed", logging.String("stage", apperrors.Stage(err)), logging.Err(err))
	}
	return apperrors.HandleError(err, a.ErrWriter)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	names := append(counting.Names(), config.CompareAll)
	if err := cli.GenerateCompletion(out, a.Config.Completion, names); err != nil {
		return apperrors.HandleError(apperrors.ArgumentError{Argument: "completion", Value: a.Config.Completion, Message: err.Error()}, a.ErrWriter)
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
