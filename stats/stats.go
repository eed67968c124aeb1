// Package stats locates extrema and medians in a sample using a caller
// supplied three-way comparator, and averages numeric projections.
//
// Index helpers return -1 for an empty sample; element helpers return
// option.None.
package stats

import (
	"slices"

	"github.com/charmingruby/curry/option"
	"github.com/charmingruby/curry/seq"
)

// Comparator orders two values: negative when a sorts before b, zero when
// they are equivalent, positive otherwise.
type Comparator[T any] func(a, b T) int

// MaxIndex returns the index of the greatest element, the earliest one on
// ties.
func MaxIndex[T any](input []T, cmp Comparator[T]) int {
	return seq.BestIndex(input, func(candidate, current T) bool {
		return cmp(candidate, current) > 0
	})
}

// MinIndex returns the index of the least element, the earliest one on ties.
func MinIndex[T any](input []T, cmp Comparator[T]) int {
	return seq.BestIndex(input, func(candidate, current T) bool {
		return cmp(candidate, current) < 0
	})
}

// MedianIndex returns the index of the lower median: the element at position
// (n-1)/2 of the stable ascending order.
func MedianIndex[T any](input []T, cmp Comparator[T]) int {
	if len(input) == 0 {
		return -1
	}
	order := seq.Indices(len(input))
	slices.SortStableFunc(order, func(i, j int) int {
		return cmp(input[i], input[j])
	})
	return order[(len(order)-1)/2]
}

// MaxElement returns the greatest element.
func MaxElement[T any](input []T, cmp Comparator[T]) option.Option[T] {
	return elementAt(input, MaxIndex(input, cmp))
}

// MinElement returns the least element.
func MinElement[T any](input []T, cmp Comparator[T]) option.Option[T] {
	return elementAt(input, MinIndex(input, cmp))
}

// MedianElement returns the lower median element.
func MedianElement[T any](input []T, cmp Comparator[T]) option.Option[T] {
	return elementAt(input, MedianIndex(input, cmp))
}

// Average returns the arithmetic mean of value over input, or None for an
// empty input.
func Average[T any](input []T, value func(T) float64) option.Option[float64] {
	if len(input) == 0 {
		return option.None[float64]()
	}
	sum := seq.FoldLeft(input, 0.0, func(acc float64, v T) float64 {
		return acc + value(v)
	})
	return option.Some(sum / float64(len(input)))
}

func elementAt[T any](input []T, idx int) option.Option[T] {
	return option.Map(option.FromOk(idx, idx >= 0), func(i int) T {
		return input[i]
	})
}
