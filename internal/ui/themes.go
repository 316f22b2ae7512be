package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the ANSI escape codes used by plain-text output such as the
// comparison table. An empty code means "no styling".
type Theme struct {
	Name string

	Label     string // algorithm names
	Value     string // measured durations
	Match     string // counts agreeing with the first result
	Mismatch  string // counts disagreeing with the first result
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme is the default 256-colour palette.
	DarkTheme = Theme{
		Name:      "dark",
		Label:     "\033[38;5;39m",
		Value:     "\033[38;5;220m",
		Match:     "\033[38;5;82m",
		Mismatch:  "\033[38;5;196m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ReportTheme is the lipgloss palette of the benchmark output.
type ReportTheme struct {
	Text    lipgloss.TerminalColor // table cells
	Border  lipgloss.TerminalColor // table borders
	Accent  lipgloss.TerminalColor // table headers
	Success lipgloss.TerminalColor // benchmark labels
	Warning lipgloss.TerminalColor // host load warnings
	Dim     lipgloss.TerminalColor // environment details
}

var (
	// DarkReportTheme pairs with DarkTheme.
	DarkReportTheme = ReportTheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#4488FF"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Dim:     lipgloss.Color("#888888"),
	}

	// NoColorReportTheme renders everything in the terminal's default colours.
	NoColorReportTheme = ReportTheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the active text theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// GetCurrentReportTheme returns the report palette matching the active theme.
func GetCurrentReportTheme() ReportTheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorReportTheme
	}
	return DarkReportTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore the
// theme they found.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects NoColorTheme when noColor is set or the NO_COLOR
// environment variable is present (https://no-color.org/), DarkTheme
// otherwise.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
