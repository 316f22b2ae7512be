// Package config parses the command line of the countnums runner into an
// AppConfig. All argument validation happens here, before any input is read.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/agbru/countnums/internal/counting"
	apperrors "github.com/agbru/countnums/internal/errors"
)

// CompareAll is the algorithm argument that runs every algorithm and compares
// their results.
const CompareAll = "all"

// positionalNames lists the required positional arguments, in order.
var positionalNames = []string{"input-path", "algorithm", "threshold"}

// AppConfig is the fully validated configuration of one run.
type AppConfig struct {
	// InputPath is the JSON file holding the number sequence.
	InputPath string
	// Algorithm is the selected counting algorithm. Ignored when Compare is set.
	Algorithm counting.Algorithm
	// Compare runs every algorithm instead of a single one.
	Compare bool
	// Threshold is the exclusive lower bound of the count.
	Threshold uint64

	// Verbose enables debug diagnostics on standard error.
	Verbose bool
	// Quiet prints only the count.
	Quiet bool
	// NoColor disables ANSI colors.
	NoColor bool
	// MetricsFile, when set, receives the results in Prometheus text format.
	MetricsFile string
	// Completion, when set, prints a completion script for that shell and
	// skips the positional arguments.
	Completion string
}

// Algorithms returns the algorithms this run executes.
func (c AppConfig) Algorithms() []counting.Algorithm {
	if c.Compare {
		return counting.Algorithms()
	}
	return []counting.Algorithm{c.Algorithm}
}

// ParseConfig parses the command-line arguments (without the program name).
// Flags may appear before, between or after the three positional arguments.
//
// Parameters:
//   - programName: The name shown in the usage message.
//   - args: The command-line arguments.
//   - errWriter: Where usage and flag errors are printed.
//
// Returns:
//   - AppConfig: The validated configuration.
//   - error: flag.ErrHelp when help was requested, or an apperrors.ArgumentError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.BoolVar(&cfg.Verbose, "v", false, "Log diagnostics to standard error (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log diagnostics to standard error.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print only the count (shorthand).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the count.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write results to this file in Prometheus text format.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script for the given shell (bash, zsh, fish).")
	fs.Usage = func() { printUsage(fs, programName) }

	positionals, err := parseInterleaved(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.ArgumentError{Message: err.Error()}
	}

	if cfg.Completion != "" {
		return cfg, nil
	}
	if err := cfg.applyPositionals(positionals); err != nil {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <input-path> <algorithm> <threshold>\n", programName)
		return cfg, err
	}
	return cfg, nil
}

// parseInterleaved runs fs over args repeatedly so that flags following a
// positional argument are still honoured. A "--" in flag position ends flag
// parsing; a "--" given as the value of a flag (--metrics-file --) does not.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positionals []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positionals, nil
		}
		if hitTerminator(fs, args[:len(args)-len(rest)]) {
			return append(positionals, rest...), nil
		}
		positionals = append(positionals, rest[0])
		args = rest[1:]
	}
}

// hitTerminator reports whether consumed, the arguments fs.Parse accepted,
// ends with a "--" terminator rather than a flag value spelled "--".
func hitTerminator(fs *flag.FlagSet, consumed []string) bool {
	for i := 0; i < len(consumed); i++ {
		if consumed[i] == "--" {
			return true
		}
		if takesSeparateValue(fs, consumed[i]) {
			i++
		}
	}
	return false
}

// takesSeparateValue reports whether arg is a non-boolean flag written
// without "=", so that the next argument is its value.
func takesSeparateValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if name == "" || strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return false
	}
	return true
}

func (c *AppConfig) applyPositionals(positionals []string) error {
	if len(positionals) != len(positionalNames) {
		return apperrors.ArgumentError{Message: fmt.Sprintf(
			"expected %d arguments (%s), got %d",
			len(positionalNames), strings.Join(positionalNames, ", "), len(positionals))}
	}

	path, algo, threshold := positionals[0], positionals[1], positionals[2]
	if path == "" {
		return apperrors.NewArgumentError("input-path", "", "must not be empty")
	}
	c.InputPath = path

	if strings.EqualFold(strings.TrimSpace(algo), CompareAll) {
		c.Compare = true
	} else {
		a, err := counting.Parse(algo)
		if err != nil {
			return apperrors.NewArgumentError("algorithm", algo,
				"expected one of %s or %s", strings.Join(counting.Names(), ", "), CompareAll)
		}
		c.Algorithm = a
	}

	t, err := ParseThreshold(threshold)
	if err != nil {
		return err
	}
	c.Threshold = t
	return nil
}

// ParseThreshold parses a non-negative decimal integer that fits in a uint64.
func ParseThreshold(s string) (uint64, error) {
	t, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err == nil {
		return t, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, apperrors.NewArgumentError("threshold", s, "must not exceed %d", uint64(math.MaxUint64))
	}
	return 0, apperrors.NewArgumentError("threshold", s, "must be a non-negative integer")
}

func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <input-path> <algorithm> <threshold>\n\n", programName)
	fmt.Fprintf(out, "Counts the numbers in <input-path> (a JSON array of non-negative integers)\n")
	fmt.Fprintf(out, "that are strictly greater than <threshold>.\n\n")
	fmt.Fprintf(out, "Algorithms: %s, or %s to compare them.\n\n", strings.Join(counting.Names(), ", "), CompareAll)
	fmt.Fprintf(out, "Flags:\n")
	fs.PrintDefaults()
}
