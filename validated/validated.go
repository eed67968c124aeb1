// Package validated accumulates multiple errors while still returning values.
//
// The pipeline CLI uses it to report every bad stage name and option at once
// instead of short-circuiting on the first failure.
package validated

import (
	"errors"

	"github.com/charmingruby/curry/result"
)

// ErrNoDetails is reported by ToResult for a value marked invalid without
// any errors.
var ErrNoDetails = errors.New("validated: invalid without details")

// Validated wraps either a successful value or a collection of validation
// errors. A value built by Invalid stays invalid even when no errors were
// supplied.
type Validated[E any, T any] struct {
	value   T
	errors  []E
	invalid bool
}

// Pair holds the values of two Validated instances combined with Zip.
type Pair[A any, B any] struct {
	First  A
	Second B
}

// Valid constructs a successful Validated value.
func Valid[E any, T any](value T) Validated[E, T] {
	return Validated[E, T]{value: value}
}

// Invalid constructs a failed Validated aggregating the provided errors.
// Calling it without errors still yields an invalid value.
func Invalid[E any, T any](errs ...E) Validated[E, T] {
	return Validated[E, T]{errors: appendErrors(nil, errs), invalid: true}
}

// IsValid reports whether the value is valid.
func (v Validated[E, T]) IsValid() bool {
	return !v.invalid
}

// Errors returns a copy of the collected errors.
func (v Validated[E, T]) Errors() []E {
	if len(v.errors) == 0 {
		return []E{}
	}
	copyErrs := make([]E, len(v.errors))
	copy(copyErrs, v.errors)
	return copyErrs
}

// Zip combines two Validated values, accumulating errors from both sides.
func Zip[E any, A any, B any](a Validated[E, A], b Validated[E, B]) Validated[E, Pair[A, B]] {
	if a.IsValid() && b.IsValid() {
		return Valid[E](Pair[A, B]{First: a.value, Second: b.value})
	}
	return Validated[E, Pair[A, B]]{
		errors:  appendErrors(appendErrors(nil, a.errors), b.errors),
		invalid: true,
	}
}

// Traverse maps the input slice to Validated values and collects either all
// values or all errors, in input order.
func Traverse[E any, A any, B any](items []A, fn func(A) Validated[E, B]) Validated[E, []B] {
	values := make([]B, 0, len(items))
	var (
		errs    []E
		invalid bool
	)
	for _, item := range items {
		res := fn(item)
		if res.IsValid() {
			values = append(values, res.value)
			continue
		}
		invalid = true
		errs = appendErrors(errs, res.errors)
	}
	if invalid {
		return Validated[E, []B]{errors: errs, invalid: true}
	}
	return Valid[E](values)
}

// ToResult converts a Validated of errors into a Result, joining errors when
// the value is invalid. An invalid value without errors fails with
// ErrNoDetails.
func ToResult[T any](v Validated[error, T]) result.Result[T] {
	if v.IsValid() {
		return result.Ok(v.value)
	}
	if err := errors.Join(v.errors...); err != nil {
		return result.Err[T](err)
	}
	return result.Err[T](ErrNoDetails)
}

func appendErrors[E any](dst []E, src []E) []E {
	if len(src) == 0 {
		return dst
	}
	if len(dst) == 0 {
		dst = make([]E, 0, len(src))
	}
	return append(dst, src...)
}
