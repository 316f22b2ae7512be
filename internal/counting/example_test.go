package counting_test

import (
	"fmt"

	"github.com/agbru/countnums/internal/counting"
)

func ExampleAlgorithm_Run() {
	nums := []uint64{1, 600, 3, 999, 500}
	for _, a := range counting.Algorithms() {
		fmt.Printf("%s: %d\n", a.Name(), a.Run(nums, 500))
	}
	// Output:
	// Count: 2
	// Fold: 2
	// ForWithBranch: 2
	// ForBranchless: 2
}

func ExampleParse() {
	a, err := counting.Parse("for-no-if")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Name(), a.BenchLabel())
	// Output: ForBranchless for no if
}
