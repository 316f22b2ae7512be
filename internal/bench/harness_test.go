package bench

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/countnums/internal/counting"
	"github.com/agbru/countnums/internal/ui"
)

var quickOptions = Options{
	WarmUp:     time.Millisecond,
	SampleTime: 100 * time.Microsecond,
	Samples:    5,
}

func TestDefaultCases(t *testing.T) {
	t.Parallel()
	cases := DefaultCases()
	labels := make([]string, 0, len(cases))
	for _, c := range cases {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{".count", ".fold", "for if", "for no if"}, labels)
}

func TestRun_ProducesOneReportPerCase(t *testing.T) {
	t.Parallel()
	nums := []uint64{1, 600, 3, 999, 500}
	var started []string

	reports, err := Run(context.Background(), DefaultCases(), nums, 500, quickOptions, func(c Case) {
		started = append(started, c.Label)
	})
	require.NoError(t, err)
	require.Len(t, reports, 4)
	assert.Len(t, started, 4)

	for _, r := range reports {
		assert.Equal(t, 2, r.Count, r.Label)
		assert.Len(t, r.Samples, quickOptions.Samples)
		assert.GreaterOrEqual(t, r.Iterations, 1)
		assert.LessOrEqual(t, r.Min, r.Median)
		assert.LessOrEqual(t, r.Median, r.Max)
		assert.LessOrEqual(t, r.Min, r.Mean)
		assert.LessOrEqual(t, r.Mean, r.Max)
	}
}

func TestRun_StopsWhenCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := Run(ctx, DefaultCases(), []uint64{1, 2, 3}, 0, quickOptions, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reports)
}

func TestRun_ZeroSamplesStillMeasuresOnce(t *testing.T) {
	t.Parallel()
	opts := quickOptions
	opts.Samples = 0
	reports, err := Run(context.Background(), DefaultCases()[:1], []uint64{7}, 0, opts, nil)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Len(t, reports[0].Samples, 1)
	assert.Zero(t, reports[0].StdDev)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	r := Report{Samples: []float64{40, 10, 30, 20}}
	summarize(&r, 1000)

	assert.Equal(t, 25*time.Nanosecond, r.Mean)
	assert.Equal(t, 10*time.Nanosecond, r.Min)
	assert.Equal(t, 40*time.Nanosecond, r.Max)
	assert.Equal(t, 20*time.Nanosecond, r.Median)
	assert.Equal(t, 13*time.Nanosecond, r.StdDev)
	assert.InDelta(t, 4e10, r.Throughput, 1)
	assert.Equal(t, []float64{40, 10, 30, 20}, r.Samples, "samples keep their order")
}

func TestWriteReport(t *testing.T) {
	ui.InitTheme(true)
	reports := []Report{
		{Label: ".count", Algorithm: counting.Count, Count: 2, Mean: 1500 * time.Nanosecond, Throughput: 3.3e9},
		{Label: "for no if", Algorithm: counting.ForBranchless, Count: 2, Mean: time.Microsecond, Throughput: 5e9},
	}
	var buf bytes.Buffer
	WriteReport(&buf, 5, 500, reports)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "5 nums (40 B), threshold 500\n"), out)
	for _, want := range []string{"Benchmark", "Throughput", ".count", "for no if", "1.5µs", "3.30 G/s"} {
		assert.Contains(t, out, want)
	}
}

func TestEnvironmentWrite(t *testing.T) {
	ui.InitTheme(true)
	env := Environment{
		GoVersion: "go1.25.0",
		OS:        "linux",
		Arch:      "amd64",
		CPUs:      8,
		Features:  []string{"AVX2"},
	}
	env.Host.CPUPercent = 75

	var buf bytes.Buffer
	env.Write(&buf)
	out := buf.String()
	assert.Contains(t, out, "Go go1.25.0 on linux/amd64, 8 CPUs (unknown CPU)")
	assert.Contains(t, out, "SIMD: AVX2")
	assert.Contains(t, out, "Warning: the host is busy")
}

func TestCaptureEnvironment(t *testing.T) {
	t.Parallel()
	env := CaptureEnvironment()
	assert.NotEmpty(t, env.GoVersion)
	assert.Positive(t, env.CPUs)
}
