package counting

import "iter"

// Filter returns a lazy view of seq that yields only the elements for which
// keep returns true. Nothing is buffered.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Len consumes seq and returns the number of elements it yielded.
func Len[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Reduce reduces seq to a single value, starting from init and applying f to
// the accumulator and each element in order.
func Reduce[T, A any](seq iter.Seq[T], init A, f func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}
