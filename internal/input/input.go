// Package input loads the number sequences the counting algorithms run on.
//
// An input file holds a single JSON array of non-negative integers, for
// example [1, 2, 3, 501, 999]. Loading either returns the whole sequence or
// an error; partial results are never returned.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	apperrors "github.com/agbru/countnums/internal/errors"
)

// bytesPerElement is a rough lower bound on the encoded size of one element
// ("7," plus a space), used to pre-size the result slice.
const bytesPerElement = 3

// Load reads the file at path and parses it as a JSON array of non-negative
// integers.
//
// Returns:
//   - []uint64: The sequence, in file order.
//   - error: An apperrors.FileError if the file cannot be read, or an
//     apperrors.ParseError if its content is invalid.
func Load(path string) ([]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.FileError{Path: path, Cause: err}
	}
	nums, err := decode(data)
	if err != nil {
		return nil, apperrors.ParseError{Path: path, Cause: err}
	}
	return nums, nil
}

// Parse parses data as a JSON array of non-negative integers. Errors are
// reported as apperrors.ParseError.
func Parse(data []byte) ([]uint64, error) {
	nums, err := decode(data)
	if err != nil {
		return nil, apperrors.ParseError{Cause: err}
	}
	return nums, nil
}

func decode(data []byte) ([]uint64, error) {
	iter := jsoniter.ParseBytes(jsoniter.ConfigDefault, data)

	if next := iter.WhatIsNext(); next != jsoniter.ArrayValue {
		return nil, fmt.Errorf("expected a JSON array, found %s", describe(next))
	}

	nums := make([]uint64, 0, len(data)/bytesPerElement)
	for i := 0; iter.ReadArray(); i++ {
		if next := iter.WhatIsNext(); next != jsoniter.NumberValue {
			return nil, fmt.Errorf("element %d: expected a non-negative integer, found %s", i, describe(next))
		}
		literal := iter.ReadNumber()
		if iter.Error != nil {
			return nil, fmt.Errorf("element %d: %w", i, iter.Error)
		}
		// JSON forbids leading zeros; ParseUint would accept them.
		if len(literal) > 1 && literal[0] == '0' {
			return nil, fmt.Errorf("element %d: %q has a leading zero", i, string(literal))
		}
		n, err := strconv.ParseUint(string(literal), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("element %d: %q is not a non-negative integer", i, string(literal))
		}
		nums = append(nums, n)
	}
	if iter.Error != nil {
		return nil, iter.Error
	}

	// Only whitespace may follow the closing bracket.
	iter.WhatIsNext()
	if !errors.Is(iter.Error, io.EOF) {
		return nil, errors.New("unexpected data after the JSON array")
	}
	return nums, nil
}

func describe(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "a string"
	case jsoniter.NumberValue:
		return "a number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "a boolean"
	case jsoniter.ArrayValue:
		return "an array"
	case jsoniter.ObjectValue:
		return "an object"
	default:
		return "invalid JSON"
	}
}
