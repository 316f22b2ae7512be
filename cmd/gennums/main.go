// Command gennums writes a deterministic JSON array of random non-negative
// integers, used as benchmark and test input.
//
// Usage:
//
//	go run ./cmd/gennums -n 10000 -max 1000 -seed 42 -o benches/nums.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	jsoniter "github.com/json-iterator/go"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gennums", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 10000, "Number of elements to generate.")
	maxValue := fs.Uint64("max", 1000, "Inclusive upper bound of the generated values.")
	seed := fs.Uint64("seed", 42, "Seed of the random generator.")
	outPath := fs.String("o", "", "Output file (default: standard output).")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *n < 0 {
		fmt.Fprintf(stderr, "gennums: -n must not be negative, got %d\n", *n)
		return 2
	}

	nums := generate(*n, *maxValue, *seed)
	var err error
	if *outPath != "" {
		err = writeFile(*outPath, nums)
	} else {
		err = writeJSON(stdout, nums)
	}
	if err != nil {
		fmt.Fprintf(stderr, "gennums: writing output: %v\n", err)
		return 1
	}
	return 0
}

// writeFile writes nums to path. The file is only reported as written once
// it has been flushed and closed without error.
func writeFile(path string, nums []uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeJSON(f, nums); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// generate returns n values in [0, maxValue] drawn from a PCG seeded with seed.
func generate(n int, maxValue, seed uint64) []uint64 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	nums := make([]uint64, n)
	for i := range nums {
		if maxValue == ^uint64(0) {
			nums[i] = rng.Uint64()
		} else {
			nums[i] = rng.Uint64N(maxValue + 1)
		}
	}
	return nums
}

// writeJSON streams nums as a single-line JSON array followed by a newline.
func writeJSON(w io.Writer, nums []uint64) error {
	stream := jsoniter.NewStream(jsoniter.ConfigDefault, w, 64*1024)
	stream.WriteArrayStart()
	for i, v := range nums {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteUint64(v)
	}
	stream.WriteArrayEnd()
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
