package ui

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed marks counts that disagree.
func ColorRed() string { return GetCurrentTheme().Mismatch }

// ColorGreen marks counts that agree.
func ColorGreen() string { return GetCurrentTheme().Match }

// ColorYellow marks durations.
func ColorYellow() string { return GetCurrentTheme().Value }

// ColorBlue marks algorithm names.
func ColorBlue() string { return GetCurrentTheme().Label }

// ColorBold starts bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline starts underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }
