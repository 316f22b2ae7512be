package counting

import (
	"encoding/binary"
	"testing"
)

// decodeFuzzInput turns raw fuzz bytes into a sequence of uint64 values,
// eight bytes per element; a trailing partial word is ignored.
func decodeFuzzInput(data []byte) []uint64 {
	nums := make([]uint64, 0, len(data)/8)
	for len(data) >= 8 {
		nums = append(nums, binary.LittleEndian.Uint64(data))
		data = data[8:]
	}
	return nums
}

// FuzzVariantsAgree feeds arbitrary sequences and thresholds to the four
// algorithms and fails on any disagreement.
func FuzzVariantsAgree(f *testing.F) {
	f.Add([]byte{}, uint64(0))
	f.Add([]byte{1, 0, 0, 0, 0, 0, 0, 0, 0xF4, 1, 0, 0, 0, 0, 0, 0}, uint64(500))
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, ^uint64(0)-1)

	f.Fuzz(func(t *testing.T, data []byte, threshold uint64) {
		nums := decodeFuzzInput(data)

		want := 0
		for _, n := range nums {
			if n > threshold {
				want++
			}
		}
		for _, a := range Algorithms() {
			if got := a.Run(nums, threshold); got != want {
				t.Fatalf("%s: got %d, want %d (threshold %d, %d nums)", a.Name(), got, want, threshold, len(nums))
			}
		}
	})
}
