package counting

import "slices"

// CountFilter counts the elements greater than threshold by filtering a lazy
// view of nums and taking the length of the result.
func CountFilter(nums []uint64, threshold uint64) int {
	return Len(Filter(slices.Values(nums), func(n uint64) bool {
		return n > threshold
	}))
}

// CountFold counts the elements greater than threshold with a fold that adds
// one for each matching element and zero otherwise.
func CountFold(nums []uint64, threshold uint64) int {
	return Reduce(slices.Values(nums), 0, func(acc int, n uint64) int {
		if n > threshold {
			return acc + 1
		}
		return acc
	})
}

// CountForIf counts the elements greater than threshold with a plain loop and
// a conditional increment.
func CountForIf(nums []uint64, threshold uint64) int {
	count := 0
	for _, n := range nums {
		if n > threshold {
			count++
		}
	}
	return count
}

// CountBranchless counts the elements greater than threshold by adding the
// integer value of the comparison on every iteration.
func CountBranchless(nums []uint64, threshold uint64) int {
	count := 0
	for _, n := range nums {
		count += boolToInt(n > threshold)
	}
	return count
}

// boolToInt is lowered by the compiler to a SETcc/CSET, not a jump.
func boolToInt(b bool) int {
	var i int
	if b {
		i = 1
	}
	return i
}
