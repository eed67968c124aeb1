package fp

import "github.com/charmingruby/curry/seq"

// MapOp is the curried map operation of maximum arity 2: a mapper followed by
// the input slice.
type MapOp[A any, B any] struct{}

// Call0 returns the operation itself.
func (op MapOp[A, B]) Call0() MapOp[A, B] {
	return op
}

// Call1 binds the mapper and returns a continuation awaiting the input.
func (MapOp[A, B]) Call1(mapper func(A) B) *MapCont[A, B] {
	return &MapCont[A, B]{mapper: mapper}
}

// Call2 applies mapper to every element of input, preserving order.
func (MapOp[A, B]) Call2(mapper func(A) B, input []A) []B {
	return seq.Map(input, mapper)
}

// MaxArity implements Callable.
func (MapOp[A, B]) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (op MapOp[A, B]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return op, nil
	case 1:
		mapper, err := arg[func(A) B]("map", args, 0)
		if err != nil {
			return nil, err
		}
		return op.Call1(mapper), nil
	case 2:
		mapper, err := arg[func(A) B]("map", args, 0)
		if err != nil {
			return nil, err
		}
		input, err := arg[[]A]("map", args, 1)
		if err != nil {
			return nil, err
		}
		return op.Call2(mapper, input), nil
	default:
		return nil, overflow("map", 2, args)
	}
}

// MapCont is a map with its mapper bound.
type MapCont[A any, B any] struct {
	mapper func(A) B
}

// Call0 returns the continuation itself.
func (c *MapCont[A, B]) Call0() *MapCont[A, B] {
	return c
}

// Call1 maps input with the bound mapper.
func (c *MapCont[A, B]) Call1(input []A) []B {
	return seq.Map(input, c.mapper)
}

// MaxArity implements Callable.
func (*MapCont[A, B]) MaxArity() int {
	return 1
}

// Invoke implements Callable.
func (c *MapCont[A, B]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 1:
		input, err := arg[[]A]("map", args, 0)
		if err != nil {
			return nil, err
		}
		return c.Call1(input), nil
	default:
		return nil, overflow("map", 1, args)
	}
}

// Map applies mapper to every element of input.
//
// Example:
//
//	doubled := fp.Map(func(n int) int { return n * 2 }, []int{1, 2, 3})
func Map[A any, B any](mapper func(A) B, input []A) []B {
	return MapOp[A, B]{}.Call2(mapper, input)
}

// MapWith binds mapper and returns a reusable continuation.
func MapWith[A any, B any](mapper func(A) B) *MapCont[A, B] {
	return MapOp[A, B]{}.Call1(mapper)
}
