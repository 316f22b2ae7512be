package bench

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sys/cpu"

	"github.com/agbru/countnums/internal/sysmon"
	"github.com/agbru/countnums/internal/ui"
)

// Environment describes the machine a benchmark ran on.
type Environment struct {
	GoVersion string
	OS        string
	Arch      string
	CPUs      int
	CPUModel  string
	Features  []string
	Host      sysmon.Stats
}

// CaptureEnvironment records the runtime, CPU and current host load.
func CaptureEnvironment() Environment {
	return Environment{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		CPUModel:  sysmon.CPUModel(),
		Features:  cpuFeatures(),
		Host:      sysmon.Sample(),
	}
}

// cpuFeatures lists the vector extensions relevant to the branchless loop.
func cpuFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	add(cpu.X86.HasSSE42, "SSE4.2")
	add(cpu.X86.HasAVX, "AVX")
	add(cpu.X86.HasAVX2, "AVX2")
	add(cpu.X86.HasAVX512F, "AVX-512F")
	add(cpu.ARM64.HasASIMD, "ASIMD")
	add(cpu.ARM64.HasSVE, "SVE")
	return features
}

// Write prints the environment header.
func (e Environment) Write(out io.Writer) {
	model := e.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	features := "none detected"
	if len(e.Features) > 0 {
		features = strings.Join(e.Features, " ")
	}
	theme := ui.GetCurrentReportTheme()
	dim := lipgloss.NewStyle().Foreground(theme.Dim)
	warn := lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)

	fmt.Fprintf(out, "Go %s on %s/%s, %d CPUs (%s)\n", e.GoVersion, e.OS, e.Arch, e.CPUs, model)
	fmt.Fprintln(out, dim.Render("SIMD: "+features))
	fmt.Fprintln(out, dim.Render(fmt.Sprintf("Host load: CPU %.1f%%, memory %.1f%%", e.Host.CPUPercent, e.Host.MemPercent)))
	if e.Host.Busy() {
		fmt.Fprintln(out, warn.Render("Warning: the host is busy, timings may be noisy"))
	}
}
