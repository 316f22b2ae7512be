package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/countnums/internal/errors"
)

var quickFlags = []string{"-warmup", "1ms", "-sample-time", "50us", "-samples", "3", "-no-color"}

func TestRun_PrintsReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nums.json")
	require.NoError(t, os.WriteFile(path, []byte("[1, 600, 3, 999, 500]"), 0o600))

	var out, errOut bytes.Buffer
	code := run(context.Background(), append(quickFlags, "-input", path), &out, &errOut)
	require.Equal(t, apperrors.ExitSuccess, code, errOut.String())

	text := out.String()
	assert.Contains(t, text, "SIMD:")
	assert.Contains(t, text, "5 nums (40 B), threshold 500")
	for _, label := range []string{".count", ".fold", "for if", "for no if"} {
		assert.Contains(t, text, label)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"missing input", []string{"-input", filepath.Join(t.TempDir(), "nope.json")}, apperrors.ExitErrorFile},
		{"unknown flag", []string{"-bogus"}, apperrors.ExitErrorArgument},
		{"stray argument", []string{"extra"}, apperrors.ExitErrorArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(context.Background(), tt.args, &out, &errOut)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, errOut.String(), "Error (")
		})
	}
}

func TestRun_Canceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nums.json")
	require.NoError(t, os.WriteFile(path, []byte("[1, 2, 3]"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	code := run(ctx, append(quickFlags, "-input", path), &out, &errOut)
	assert.Equal(t, apperrors.ExitErrorCanceled, code)
}

func TestRun_Help(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-h"}, &out, &errOut)
	assert.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, errOut.String(), "-samples")
}
