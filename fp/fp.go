// Package fp provides arity-sensitive curried operations for Go.
//
// Every operation (Map, Filter, Reduce, Add, Subtract, Prop, Pipe) can be
// invoked with zero arguments, with a prefix of its arguments, or with all of
// them. The arity is chosen by the entry point the caller uses:
//
//	double := func(n int) int { return n * 2 }
//
//	fp.MapOp[int, int]{}.Call0()              // the operation itself
//	fp.MapOp[int, int]{}.Call1(double)        // *MapCont awaiting the input
//	fp.MapOp[int, int]{}.Call2(double, xs)    // []int
//
// Calling Call0 on an operation or continuation always returns the receiver,
// so repeated zero-argument calls are referentially stable. Shorthands such as
// Map and MapWith give type inference at the call site.
//
// All operations and continuations also implement Callable, a type-erased
// view that dispatches on the number of arguments at runtime and reports
// misuse as errors instead of panics.
package fp

import "golang.org/x/exp/constraints"

// Number is a type constraint for all numeric types in Go (integers, float and
// complex numbers).
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Identity returns the supplied value unchanged. It is the unit of every pipe.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addFive := Curry(add)(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry inverts Curry.
func Uncurry[A any, B any, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}
