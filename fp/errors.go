package fp

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrArityOverflow is returned when an operation receives more
	// arguments than its remaining maximum arity. Extra arguments are never
	// silently ignored.
	ErrArityOverflow = errors.New("fp: arity overflow")

	// ErrArgumentType is returned by the dynamic layer when an argument
	// does not have the Go type the operation expects.
	ErrArgumentType = errors.New("fp: argument type mismatch")

	// ErrMissingProperty is returned when prop is asked for a property the
	// object does not have.
	ErrMissingProperty = errors.New("fp: missing property")

	// ErrCompositionMismatch is returned when a pipeline stage cannot
	// consume the value produced by its predecessor.
	ErrCompositionMismatch = errors.New("fp: composition mismatch")

	// ErrEmptyFoldWithoutSeed is returned when a seedless fold receives an
	// empty input.
	ErrEmptyFoldWithoutSeed = errors.New("fp: empty fold without seed")
)

// ArityError reports an invocation with too many arguments.
type ArityError struct {
	Op  string
	Max int
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("fp: %s accepts at most %d argument(s), got %d",
		e.Op, e.Max, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArityOverflow
}

// ArgumentError reports a dynamically supplied argument of the wrong type.
// Position is zero based relative to the invocation that supplied it.
type ArgumentError struct {
	Op       string
	Position int
	Want     string
	Got      reflect.Type
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("fp: %s argument %d: want %v, got %v",
		e.Op, e.Position, e.Want, typeName(e.Got))
}

func (e *ArgumentError) Unwrap() error {
	return ErrArgumentType
}

// MissingPropertyError names the property that could not be resolved.
type MissingPropertyError struct {
	Name string
}

func (e *MissingPropertyError) Error() string {
	return fmt.Sprintf("fp: missing property %q", e.Name)
}

func (e *MissingPropertyError) Unwrap() error {
	return ErrMissingProperty
}

// CompositionMismatchError carries the zero based position of the pipeline
// stage that could not accept its input. Err holds the underlying dispatch
// error when the stage is itself a Callable.
type CompositionMismatchError struct {
	Stage  int
	Reason string
	Err    error
}

func (e *CompositionMismatchError) Error() string {
	return fmt.Sprintf("fp: pipe stage %d: %s", e.Stage, e.Reason)
}

func (e *CompositionMismatchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrCompositionMismatch}
	}
	return []error{ErrCompositionMismatch, e.Err}
}

// StageError wraps an error returned by a pipeline stage itself.
type StageError struct {
	Stage int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("fp: pipe stage %d failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
