package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorArgument = 2   // Indicates an invalid command-line argument.
	ExitErrorFile     = 3   // Indicates the input file could not be read.
	ExitErrorParse    = 4   // Indicates the input file content is invalid.
	ExitErrorMismatch = 5   // Indicates a result mismatch between algorithms.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ArgumentError represents an invalid command-line argument, such as an
// unrecognized algorithm name or a threshold that is not a non-negative
// integer. It is raised before any input is read.
type ArgumentError struct {
	// Argument names the offending argument (e.g. "algorithm").
	Argument string
	// Value is the raw value supplied by the user, if any.
	Value string
	// Message explains what is wrong with the value.
	Message string
}

// Error returns a formatted message describing the invalid argument.
func (e ArgumentError) Error() string {
	if e.Argument == "" {
		return e.Message
	}
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Argument, e.Message)
	}
	return fmt.Sprintf("%s %q: %s", e.Argument, e.Value, e.Message)
}

// NewArgumentError creates a new ArgumentError with a formatted message.
//
// Parameters:
//   - argument: The name of the offending argument.
//   - value: The raw value supplied by the user.
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ArgumentError instance.
func NewArgumentError(argument, value, format string, a ...any) error {
	return ArgumentError{Argument: argument, Value: value, Message: fmt.Sprintf(format, a...)}
}

// FileError reports that the input file could not be opened or read.
type FileError struct {
	// Path is the file that could not be read.
	Path string
	// Cause is the underlying I/O error.
	Cause error
}

// Error returns a message naming the file and the I/O failure.
func (e FileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying I/O error, so that errors.Is(err,
// fs.ErrNotExist) works through a FileError.
func (e FileError) Unwrap() error { return e.Cause }

// ParseError reports that the input file content is not a JSON array of
// non-negative integers.
type ParseError struct {
	// Path is the file whose content was rejected. It may be empty when
	// parsing an in-memory buffer.
	Path string
	// Cause describes what was wrong with the content.
	Cause error
}

// Error returns a message naming the file and the parse failure.
func (e ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid input: %v", e.Cause)
	}
	return fmt.Sprintf("invalid input in %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying parse error.
func (e ParseError) Unwrap() error { return e.Cause }

// MismatchError reports that the algorithms disagreed on a count.
type MismatchError struct {
	// Counts maps each algorithm name to the count it produced.
	Counts map[string]int
}

// Error returns a message listing the disagreeing counts.
func (e MismatchError) Error() string {
	return fmt.Sprintf("algorithms disagree: %v", e.Counts)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
