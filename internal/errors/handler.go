package apperrors

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Stage returns a short label for the part of the run that produced err:
// "arguments", "loading", "parsing", "comparison", "canceled" or "run".
func Stage(err error) string {
	var (
		argErr      ArgumentError
		fileErr     FileError
		parseErr    ParseError
		mismatchErr MismatchError
	)
	switch {
	case errors.As(err, &argErr):
		return "arguments"
	case errors.As(err, &fileErr):
		return "loading"
	case errors.As(err, &parseErr):
		return "parsing"
	case errors.As(err, &mismatchErr):
		return "comparison"
	case IsContextError(err):
		return "canceled"
	default:
		return "run"
	}
}

// ExitCode maps an error to the process exit status. A nil error maps to
// ExitSuccess and a help request (flag.ErrHelp) is not treated as a failure.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	switch Stage(err) {
	case "arguments":
		return ExitErrorArgument
	case "loading":
		return ExitErrorFile
	case "parsing":
		return ExitErrorParse
	case "comparison":
		return ExitErrorMismatch
	case "canceled":
		return ExitErrorCanceled
	default:
		return ExitErrorGeneric
	}
}

// HandleError writes a diagnostic naming the failing stage to out and returns
// the matching exit code. It writes nothing for a nil error or a help request.
//
// Parameters:
//   - err: The error to report.
//   - out: The diagnostic stream (usually standard error).
//
// Returns:
//   - int: The exit code for the process.
func HandleError(err error, out io.Writer) int {
	code := ExitCode(err)
	if code == ExitSuccess {
		return code
	}
	fmt.Fprintf(out, "Error (%s): %v\n", Stage(err), err)
	return code
}
