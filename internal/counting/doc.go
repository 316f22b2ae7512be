// Package counting implements four equivalent strategies for counting the
// elements of a sequence that are strictly greater than a threshold.
//
// The strategies return identical results for identical inputs. They exist to
// be compared for performance: a lazy filter-then-count, a fold, a loop with a
// conditional increment and a branchless loop.
package counting
