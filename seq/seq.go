// Package seq is the eager slice kernel behind the curried operations in fp
// and the helpers in stats. Every function returns fresh slices and never
// mutates its input.
package seq

// Map transforms each element using fn and returns a new slice with the same
// length as input. An empty input yields an empty, non-nil slice.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate, in input order. The returned
// slice shares no backing array with the input to preserve immutability.
func Filter[T any](in []T, predicate func(T) bool) []T {
	if len(in) == 0 {
		return []T{}
	}
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
// fn is never called for an empty slice, in which case init is returned.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce applies fn across elements, seeding with the first one. It returns
// false when the slice is empty.
func Reduce[T any](in []T, fn func(T, T) T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	acc := in[0]
	for i := 1; i < len(in); i++ {
		acc = fn(acc, in[i])
	}
	return acc, true
}

// BestIndex returns the index of the element that no later element beats
// according to better, or -1 for an empty slice. Ties keep the earliest
// index because better must report a strict improvement.
func BestIndex[T any](in []T, better func(candidate, current T) bool) int {
	if len(in) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(in); i++ {
		if better(in[i], in[best]) {
			best = i
		}
	}
	return best
}

// Indices returns 0..n-1.
func Indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
