// Package option models values that may be absent, such as the extremum of an
// empty sample in stats or a property a Record does not define.
package option

import (
	"errors"
	"fmt"

	"github.com/charmingruby/curry/result"
)

// ErrMissing is the error ToResult reports when no error factory is given.
var ErrMissing = errors.New("option: missing value")

// Option holds a value of type T or nothing. The zero Option is None. Some
// may wrap a nil value for nil-capable T; Get tells it apart from None.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None returns the empty Option of T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk adapts the comma-ok idiom, so lookups can be passed directly:
//
//	opt := option.FromOk(rec.Lookup(name))
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// GetOrElse returns the value, or fallback for None.
func (o Option[T]) GetOrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// Map applies fn to a present value. fn is not called for None.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(fn(o.value))
}

// ToResult turns None into a failed Result carrying errFactory's error, or
// ErrMissing when errFactory is nil or returns nil.
func (o Option[T]) ToResult(errFactory func() error) result.Result[T] {
	if o.present {
		return result.Ok(o.value)
	}

	err := ErrMissing
	if errFactory != nil {
		if e := errFactory(); e != nil {
			err = e
		}
	}
	return result.Err[T](err)
}

// String renders Some(v) or None.
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
