// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Argument with value",
			err:      NewArgumentError("algorithm", "loop", "unknown algorithm"),
			expected: `algorithm "loop": unknown algorithm`,
		},
		{
			name:     "Argument without value",
			err:      NewArgumentError("threshold", "", "missing"),
			expected: "threshold: missing",
		},
		{
			name:     "Message only",
			err:      ArgumentError{Message: "expected 3 arguments, got 1"},
			expected: "expected 3 arguments, got 1",
		},
		{
			name:     "Formatted message",
			err:      NewArgumentError("threshold", "-1", "must be between 0 and %d", 10),
			expected: `threshold "-1": must be between 0 and 10`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var argErr ArgumentError
			if !errors.As(tt.err, &argErr) {
				t.Error("expected error to be ArgumentError type")
			}
		})
	}
}

func TestFileError(t *testing.T) {
	t.Parallel()
	err := FileError{Path: "nums.json", Cause: fs.ErrNotExist}

	if !strings.Contains(err.Error(), "nums.json") {
		t.Errorf("message should name the path, got %q", err.Error())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is should see through FileError")
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()
	cause := errors.New("element 1: \"-2\" is not a non-negative integer")

	withPath := ParseError{Path: "bad.json", Cause: cause}
	if got := withPath.Error(); got != "invalid input in bad.json: "+cause.Error() {
		t.Errorf("unexpected message %q", got)
	}
	withoutPath := ParseError{Cause: cause}
	if got := withoutPath.Error(); got != "invalid input: "+cause.Error() {
		t.Errorf("unexpected message %q", got)
	}
	if !errors.Is(withPath, cause) {
		t.Error("errors.Is should see through ParseError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
	base := errors.New("base")
	wrapped := WrapError(base, "loading %s", "x.json")
	if wrapped.Error() != "loading x.json: base" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should match base with errors.Is")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("op: %w", context.Canceled), true},
		{"other", errors.New("x"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		err   error
		code  int
		stage string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"help", flag.ErrHelp, ExitSuccess, ""},
		{"argument", NewArgumentError("algorithm", "x", "unknown"), ExitErrorArgument, "arguments"},
		{"file", FileError{Path: "p", Cause: fs.ErrNotExist}, ExitErrorFile, "loading"},
		{"parse", ParseError{Path: "p", Cause: errors.New("bad")}, ExitErrorParse, "parsing"},
		{"wrapped parse", fmt.Errorf("run: %w", ParseError{Cause: errors.New("bad")}), ExitErrorParse, "parsing"},
		{"mismatch", MismatchError{Counts: map[string]int{"Count": 1, "Fold": 2}}, ExitErrorMismatch, "comparison"},
		{"canceled", context.Canceled, ExitErrorCanceled, "canceled"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "run"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.code {
				t.Errorf("ExitCode() = %d, want %d", got, tt.code)
			}
			if tt.stage != "" {
				if got := Stage(tt.err); got != tt.stage {
					t.Errorf("Stage() = %q, want %q", got, tt.stage)
				}
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	t.Run("Writes stage and message", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		code := HandleError(FileError{Path: "missing.json", Cause: fs.ErrNotExist}, &buf)
		if code != ExitErrorFile {
			t.Errorf("code = %d, want %d", code, ExitErrorFile)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "Error (loading): ") || !strings.Contains(out, "missing.json") {
			t.Errorf("unexpected diagnostic %q", out)
		}
	})

	t.Run("Silent on success", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if code := HandleError(nil, &buf); code != ExitSuccess {
			t.Errorf("code = %d, want 0", code)
		}
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})
}
