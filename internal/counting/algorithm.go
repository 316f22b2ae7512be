package counting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Parse when a name matches none of the
// four algorithms.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm selects one of the four counting strategies.
type Algorithm uint8

const (
	// Count filters a lazy view of the sequence and counts its length.
	Count Algorithm = iota
	// Fold accumulates the count with a fold.
	Fold
	// ForWithBranch loops with a conditional increment.
	ForWithBranch
	// ForBranchless loops and adds the comparison result as an integer.
	ForBranchless
)

type algorithmInfo struct {
	cliName    string
	name       string
	benchLabel string
	aliases    []string
}

var algorithmTable = [...]algorithmInfo{
	Count:         {cliName: "count", name: "Count", benchLabel: ".count"},
	Fold:          {cliName: "fold", name: "Fold", benchLabel: ".fold"},
	ForWithBranch: {cliName: "for-if", name: "ForWithBranch", benchLabel: "for if", aliases: []string{"forwithbranch"}},
	ForBranchless: {cliName: "for-no-if", name: "ForBranchless", benchLabel: "for no if", aliases: []string{"forbranchless"}},
}

// Algorithms returns the four algorithms in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Count, Fold, ForWithBranch, ForBranchless}
}

// Names returns the command-line names of all algorithms, in declaration order.
func Names() []string {
	names := make([]string, 0, len(algorithmTable))
	for _, info := range algorithmTable {
		names = append(names, info.cliName)
	}
	return names
}

// Parse resolves a user supplied name to an Algorithm. Matching ignores case
// as well as '-', '_' and space separators, so "for-no-if", "FOR_NO_IF" and
// "ForBranchless" all select ForBranchless.
func Parse(name string) (Algorithm, error) {
	key := normalize(name)
	for i, info := range algorithmTable {
		if key == normalize(info.cliName) {
			return Algorithm(i), nil
		}
		for _, alias := range info.aliases {
			if key == alias {
				return Algorithm(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q (accepted values: %s)", ErrUnknownAlgorithm, name, strings.Join(Names(), ", "))
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
}

// Valid reports whether a is one of the four declared algorithms.
func (a Algorithm) Valid() bool {
	return int(a) < len(algorithmTable)
}

// String returns the command-line name, e.g. "for-no-if".
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
	return algorithmTable[a].cliName
}

// Name returns the display name, e.g. "ForBranchless".
func (a Algorithm) Name() string {
	if !a.Valid() {
		return a.String()
	}
	return algorithmTable[a].name
}

// BenchLabel returns the label the benchmark harness reports a under.
func (a Algorithm) BenchLabel() string {
	if !a.Valid() {
		return a.String()
	}
	return algorithmTable[a].benchLabel
}

// Run counts the elements of nums greater than threshold using a.
// It panics if a is not one of the declared algorithms.
func (a Algorithm) Run(nums []uint64, threshold uint64) int {
	switch a {
	case Count:
		return CountFilter(nums, threshold)
	case Fold:
		return CountFold(nums, threshold)
	case ForWithBranch:
		return CountForIf(nums, threshold)
	case ForBranchless:
		return CountBranchless(nums, threshold)
	default:
		panic(fmt.Sprintf("counting: %v", a))
	}
}
