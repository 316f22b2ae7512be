package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/agbru/countnums/internal/app.Version=v1.2.3".
var Version = "dev"

// HasVersionFlag reports whether args request the version (--version or -V).
// Only arguments before a "--" terminator are considered.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "countnums %s (%s %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
