package fp

import "reflect"

// Variadic is the MaxArity reported by operations without a fixed upper
// bound on their argument count.
const Variadic = -1

// Callable is the type-erased view of an operation or continuation. Invoke
// dispatches on the number of arguments actually supplied:
//
//   - no arguments returns the receiver itself;
//   - fewer than MaxArity returns a continuation awaiting the rest;
//   - exactly MaxArity returns the computed value;
//   - more than MaxArity fails with ErrArityOverflow.
//
// Arguments whose dynamic type does not match the operation's type
// parameters fail with ErrArgumentType.
type Callable interface {
	MaxArity() int
	Invoke(args ...any) (any, error)
}

func overflow(op string, limit int, args []any) error {
	err := &ArityError{Op: op, Max: limit, Got: len(args)}
	log.Debugf("Rejected invocation: %v", err)
	return err
}

// arg extracts args[pos] as a T. Values whose type is assignable to T (a
// named func type passed for its underlying signature, for instance) are
// converted. An untyped nil is accepted wherever T itself can be nil. Funcs
// must be non-nil, typed or not.
func arg[T any](op string, args []any, pos int) (T, error) {
	var zero T
	want := reflect.TypeFor[T]()
	got := reflect.TypeOf(args[pos])
	nilFunc := want.Kind() == reflect.Func && got != nil &&
		got.Kind() == reflect.Func && reflect.ValueOf(args[pos]).IsNil()

	switch v, ok := args[pos].(T); {
	case nilFunc:
		// Rejected below.

	case ok:
		return v, nil

	case got == nil:
		switch want.Kind() {
		case reflect.Slice, reflect.Map, reflect.Pointer, reflect.Interface:
			return zero, nil
		}

	case want.Kind() != reflect.Interface && got.AssignableTo(want):
		return reflect.ValueOf(args[pos]).Convert(want).Interface().(T), nil
	}

	wantName := want.String()
	if nilFunc {
		wantName = "non-nil " + wantName
	}
	err := &ArgumentError{
		Op: op, Position: pos, Want: wantName, Got: got,
	}
	log.Debugf("Rejected invocation: %v", err)
	return zero, err
}
