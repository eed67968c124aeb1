package fp

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/charmingruby/curry/option"
	"github.com/charmingruby/curry/result"
)

var errorType = reflect.TypeFor[error]()

// PipeAny is the type-erased pipe. Invoked with no arguments it returns
// itself; invoked with one or more stages it returns a *Pipeline.
var PipeAny = PipeAnyOp{}

// PipeAnyOp composes stages whose types are only checked once values flow
// through them. A stage is either a Go func returning T or (T, error), or a
// Callable.
type PipeAnyOp struct{}

// MaxArity implements Callable.
func (PipeAnyOp) MaxArity() int {
	return Variadic
}

// Invoke implements Callable.
func (op PipeAnyOp) Invoke(stages ...any) (any, error) {
	if len(stages) == 0 {
		return op, nil
	}

	p, err := op.Compose(stages...)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Compose builds a pipeline from one or more stages. Nested pipelines are
// flattened so pipe(pipe(f, g), h) and pipe(f, g, h) behave identically. Only
// the shape of each stage is checked here; whether adjacent stages fit is
// decided on invocation.
func (PipeAnyOp) Compose(stages ...any) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, &ArgumentError{
			Op: "pipe", Position: 0, Want: "at least one stage",
		}
	}

	p := &Pipeline{stages: make([]stage, 0, len(stages))}
	for i, s := range stages {
		switch s := s.(type) {
		case *Pipeline:
			if s.Len() == 0 {
				return nil, rejectStage(i, "non-empty *Pipeline", s)
			}
			p.stages = append(p.stages, s.stages...)

		case Callable:
			if nilPointer(s) {
				return nil, rejectStage(i, "non-nil Callable", s)
			}
			p.stages = append(p.stages, stage{callable: s})

		default:
			fn := reflect.ValueOf(s)
			if !validStage(fn) {
				return nil, rejectStage(
					i, "func returning T or (T, error), or Callable", s,
				)
			}
			p.stages = append(p.stages, stage{fn: fn})
		}
	}

	return p, nil
}

func rejectStage(pos int, want string, s any) error {
	err := &ArgumentError{
		Op: "pipe", Position: pos, Want: want, Got: reflect.TypeOf(s),
	}
	log.Debugf("Rejected pipe stage: %v", err)
	return err
}

// nilPointer reports whether v is a typed nil pointer, such as a nil
// continuation stored in a Callable.
func nilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func validStage(fn reflect.Value) bool {
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return false
	}
	t := fn.Type()
	switch t.NumOut() {
	case 1:
		return true
	case 2:
		return t.Out(1) == errorType
	default:
		return false
	}
}

// Pipeline is the callable produced by PipeAny. The first stage receives the
// full argument list of the invocation, every later stage the single value
// produced by its predecessor. A Pipeline always runs its stages when
// invoked, including with zero arguments, since its first stage may take
// none.
type Pipeline struct {
	stages []stage
}

// Len returns the number of stages after flattening. A nil or zero
// Pipeline has none.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.stages)
}

// MaxArity reports the arity of the first stage, or 0 for a Pipeline without
// stages.
func (p *Pipeline) MaxArity() int {
	if p.Len() == 0 {
		return 0
	}
	return p.stages[0].arity()
}

// Invoke runs the pipeline. Stages that cannot accept their input fail with
// a *CompositionMismatchError; errors returned by stages themselves are
// wrapped in a *StageError.
//
// A Pipeline not built by PipeAny has no stages and fails with
// ErrArgumentType.
func (p *Pipeline) Invoke(args ...any) (any, error) {
	if p.Len() == 0 {
		return nil, &ArgumentError{
			Op: "pipe", Position: 0, Want: "at least one stage",
		}
	}

	var out any
	for i, s := range p.stages {
		log.Tracef("Running pipe stage %d/%d with %d argument(s)",
			i+1, len(p.stages), len(args))

		var err error
		out, err = s.call(i, args)
		if err != nil {
			log.Debugf("Pipe stopped: %v", err)
			return nil, err
		}
		args = []any{out}
	}
	return out, nil
}

// Result runs the pipeline and wraps the outcome in a result.Result.
func (p *Pipeline) Result(args ...any) result.Result[any] {
	return result.FromTuple(p.Invoke(args...))
}

type stage struct {
	fn       reflect.Value
	callable Callable
}

func (s stage) arity() int {
	if s.callable != nil {
		return s.callable.MaxArity()
	}
	t := s.fn.Type()
	if t.IsVariadic() {
		return Variadic
	}
	return t.NumIn()
}

func (s stage) call(pos int, args []any) (any, error) {
	if s.callable != nil {
		out, err := s.callable.Invoke(args...)
		switch {
		case err == nil:
			return out, nil
		case errors.Is(err, ErrArityOverflow), errors.Is(err, ErrArgumentType):
			return nil, &CompositionMismatchError{
				Stage: pos, Reason: err.Error(), Err: err,
			}
		default:
			return nil, &StageError{Stage: pos, Err: err}
		}
	}

	in, err := stageArgs(s.fn.Type(), args)
	if err != nil {
		return nil, &CompositionMismatchError{Stage: pos, Reason: err.Error()}
	}

	results := s.fn.Call(in)
	if len(results) == 2 && !results[1].IsNil() {
		return nil, &StageError{
			Stage: pos, Err: results[1].Interface().(error),
		}
	}
	return results[0].Interface(), nil
}

// stageArgs converts args to reflect values matching the parameters of t.
func stageArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	n := t.NumIn()
	switch {
	case t.IsVariadic() && len(args) < n-1:
		return nil, fmt.Errorf("want at least %d argument(s), got %d",
			n-1, len(args))
	case !t.IsVariadic() && len(args) != n:
		return nil, fmt.Errorf("want %d argument(s), got %d", n, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var want reflect.Type
		if t.IsVariadic() && i >= n-1 {
			want = t.In(n - 1).Elem()
		} else {
			want = t.In(i)
		}

		if a == nil {
			switch want.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface,
				reflect.Map, reflect.Pointer, reflect.Slice:

				in[i] = reflect.Zero(want)
				continue
			}
			return nil, fmt.Errorf("argument %d: cannot use nil as %v",
				i, want)
		}

		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(want) {
			return nil, fmt.Errorf("argument %d: cannot use %v as %v",
				i, v.Type(), want)
		}
		in[i] = v
	}
	return in, nil
}

// Record is implemented by objects that resolve their own properties.
type Record interface {
	Lookup(name string) (any, bool)
}

// PropAny is the type-erased prop: a property name followed by any object.
var PropAny = PropAnyOp{}

// PropAnyOp projects named properties out of Records, structs (exported
// fields, through pointers) and maps with string-kinded keys.
type PropAnyOp struct{}

// MaxArity implements Callable.
func (PropAnyOp) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (op PropAnyOp) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return op, nil
	case 1:
		name, err := arg[string]("prop", args, 0)
		if err != nil {
			return nil, err
		}
		return &PropAnyCont{name: name}, nil
	case 2:
		name, err := arg[string]("prop", args, 0)
		if err != nil {
			return nil, err
		}
		return lookupAny(name, args[1])
	default:
		return nil, overflow("prop", 2, args)
	}
}

// PropAnyCont is a type-erased projector with its property name bound.
type PropAnyCont struct {
	name string
}

// MaxArity implements Callable.
func (*PropAnyCont) MaxArity() int {
	return 1
}

// Invoke implements Callable.
func (c *PropAnyCont) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 1:
		return lookupAny(c.name, args[0])
	default:
		return nil, overflow("prop", 1, args)
	}
}

func lookupAny(name string, obj any) (any, error) {
	missing := &MissingPropertyError{Name: name}

	if rec, ok := obj.(Record); ok && !nilPointer(obj) {
		return option.FromOk(rec.Lookup(name)).
			ToResult(func() error { return missing }).
			Unwrap()
	}

	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, missing
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		field, ok := v.Type().FieldByName(name)
		if !ok || !field.IsExported() {
			return nil, missing
		}
		fv, err := v.FieldByIndexErr(field.Index)
		if err != nil || !fv.CanInterface() {
			return nil, missing
		}
		return fv.Interface(), nil

	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, missing
		}
		key := reflect.ValueOf(name).Convert(v.Type().Key())
		mv := v.MapIndex(key)
		if !mv.IsValid() {
			return nil, missing
		}
		return mv.Interface(), nil

	default:
		return nil, missing
	}
}
