// Package result carries a value or an error as a single value, so the
// outcome of a type-erased pipeline can be chained and rewrapped:
//
//	res := result.FlatMap(result.FromTuple(parse(args)), func(in any) result.Result[any] {
//		return pipeline.Result(in)
//	})
//	value, err := res.Unwrap()
package result

import "errors"

// ErrNil stands in for the nil error passed to Err.
var ErrNil = errors.New("result: nil error")

// Result is either a value of T or a non-nil error. The zero Result is a
// success holding the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err wraps a failure. A nil err is replaced by ErrNil so that a Result
// built by Err never reports success.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = ErrNil
	}
	return Result[T]{err: err}
}

// FromTuple converts a (value, error) return into a Result:
//
//	res := result.FromTuple(fp.Prop("a", obj))
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Err returns the error, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}

// Unwrap returns the (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value, or fallback on failure.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map applies fn to a successful value. Failures pass through untouched.
func Map[T any, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(fn(r.value))
}

// FlatMap feeds a successful value into the next fallible step. The first
// failure wins and later steps are skipped.
func FlatMap[T any, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return fn(r.value)
}

// MapErr rewrites the error of a failed Result, typically to add context:
//
//	res = result.MapErr(res, func(err error) error {
//		return fmt.Errorf("stage %q: %w", name, err)
//	})
//
// A nil fn leaves r as is.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.err == nil || fn == nil {
		return r
	}
	return Err[T](fn(r.err))
}
