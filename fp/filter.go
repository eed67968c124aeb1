package fp

import "github.com/charmingruby/curry/seq"

// FilterOp is the curried filter operation of maximum arity 2: a predicate
// followed by the input slice.
type FilterOp[A any] struct{}

// Call0 returns the operation itself.
func (op FilterOp[A]) Call0() FilterOp[A] {
	return op
}

// Call1 binds the predicate and returns a continuation awaiting the input.
func (FilterOp[A]) Call1(predicate func(A) bool) *FilterCont[A] {
	return &FilterCont[A]{predicate: predicate}
}

// Call2 keeps the elements of input for which predicate holds. The result
// never shares a backing array with input.
func (FilterOp[A]) Call2(predicate func(A) bool, input []A) []A {
	return seq.Filter(input, predicate)
}

// MaxArity implements Callable.
func (FilterOp[A]) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (op FilterOp[A]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return op, nil
	case 1:
		predicate, err := arg[func(A) bool]("filter", args, 0)
		if err != nil {
			return nil, err
		}
		return op.Call1(predicate), nil
	case 2:
		predicate, err := arg[func(A) bool]("filter", args, 0)
		if err != nil {
			return nil, err
		}
		input, err := arg[[]A]("filter", args, 1)
		if err != nil {
			return nil, err
		}
		return op.Call2(predicate, input), nil
	default:
		return nil, overflow("filter", 2, args)
	}
}

// FilterCont is a filter with its predicate bound.
type FilterCont[A any] struct {
	predicate func(A) bool
}

// Call0 returns the continuation itself.
func (c *FilterCont[A]) Call0() *FilterCont[A] {
	return c
}

// Call1 filters input with the bound predicate.
func (c *FilterCont[A]) Call1(input []A) []A {
	return seq.Filter(input, c.predicate)
}

// MaxArity implements Callable.
func (*FilterCont[A]) MaxArity() int {
	return 1
}

// Invoke implements Callable.
func (c *FilterCont[A]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 1:
		input, err := arg[[]A]("filter", args, 0)
		if err != nil {
			return nil, err
		}
		return c.Call1(input), nil
	default:
		return nil, overflow("filter", 1, args)
	}
}

// Filter keeps the elements of input satisfying predicate.
func Filter[A any](predicate func(A) bool, input []A) []A {
	return FilterOp[A]{}.Call2(predicate, input)
}

// FilterWith binds predicate and returns a reusable continuation.
func FilterWith[A any](predicate func(A) bool) *FilterCont[A] {
	return FilterOp[A]{}.Call1(predicate)
}
