package fp

import "github.com/charmingruby/curry/seq"

// ReduceOp is the curried left fold of maximum arity 3: a reducer, a seed
// and the input slice. The reducer receives the accumulator first.
//
// Every partial form is reachable:
//
//	r := func(acc, n int) int { return acc + n }
//	op := fp.ReduceOp[int, int]{}
//
//	op.Call3(r, 0, xs)
//	op.Call1(r).Call2(0, xs)
//	op.Call1(r).Call1(0).Call1(xs)
//	op.Call2(r, 0).Call1(xs)
type ReduceOp[A any, B any] struct{}

// Call0 returns the operation itself.
func (op ReduceOp[A, B]) Call0() ReduceOp[A, B] {
	return op
}

// Call1 binds the reducer and returns a continuation of arity 2.
func (ReduceOp[A, B]) Call1(reducer func(B, A) B) *ReduceCont2[A, B] {
	return &ReduceCont2[A, B]{reducer: reducer}
}

// Call2 binds the reducer and the seed and returns a continuation of arity 1.
func (ReduceOp[A, B]) Call2(reducer func(B, A) B, seed B) *ReduceCont1[A, B] {
	return &ReduceCont1[A, B]{reducer: reducer, seed: seed}
}

// Call3 folds input left to right starting from seed. An empty input yields
// seed without calling reducer.
func (ReduceOp[A, B]) Call3(reducer func(B, A) B, seed B, input []A) B {
	return seq.FoldLeft(input, seed, reducer)
}

// MaxArity implements Callable.
func (ReduceOp[A, B]) MaxArity() int {
	return 3
}

// Invoke implements Callable.
func (op ReduceOp[A, B]) Invoke(args ...any) (any, error) {
	if len(args) == 0 {
		return op, nil
	}
	if len(args) > 3 {
		return nil, overflow("reduce", 3, args)
	}

	reducer, err := arg[func(B, A) B]("reduce", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return op.Call1(reducer), nil
	}

	seed, err := arg[B]("reduce", args, 1)
	if err != nil {
		return nil, err
	}
	if len(args) == 2 {
		return op.Call2(reducer, seed), nil
	}

	input, err := arg[[]A]("reduce", args, 2)
	if err != nil {
		return nil, err
	}
	return op.Call3(reducer, seed, input), nil
}

// ReduceCont2 is a reduce with its reducer bound. It accepts the seed alone
// or the seed together with the input.
type ReduceCont2[A any, B any] struct {
	reducer func(B, A) B
}

// Call0 returns the continuation itself.
func (c *ReduceCont2[A, B]) Call0() *ReduceCont2[A, B] {
	return c
}

// Call1 binds the seed and returns a continuation awaiting the input.
func (c *ReduceCont2[A, B]) Call1(seed B) *ReduceCont1[A, B] {
	return &ReduceCont1[A, B]{reducer: c.reducer, seed: seed}
}

// Call2 folds input from seed with the bound reducer.
func (c *ReduceCont2[A, B]) Call2(seed B, input []A) B {
	return seq.FoldLeft(input, seed, c.reducer)
}

// MaxArity implements Callable.
func (*ReduceCont2[A, B]) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (c *ReduceCont2[A, B]) Invoke(args ...any) (any, error) {
	if len(args) == 0 {
		return c, nil
	}
	if len(args) > 2 {
		return nil, overflow("reduce", 2, args)
	}

	seed, err := arg[B]("reduce", args, 0)
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		return c.Call1(seed), nil
	}

	input, err := arg[[]A]("reduce", args, 1)
	if err != nil {
		return nil, err
	}
	return c.Call2(seed, input), nil
}

// ReduceCont1 is a reduce with its reducer and seed bound.
type ReduceCont1[A any, B any] struct {
	reducer func(B, A) B
	seed    B
}

// Call0 returns the continuation itself.
func (c *ReduceCont1[A, B]) Call0() *ReduceCont1[A, B] {
	return c
}

// Call1 folds input with the bound reducer and seed.
func (c *ReduceCont1[A, B]) Call1(input []A) B {
	return seq.FoldLeft(input, c.seed, c.reducer)
}

// MaxArity implements Callable.
func (*ReduceCont1[A, B]) MaxArity() int {
	return 1
}

// Invoke implements Callable.
func (c *ReduceCont1[A, B]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 1:
		input, err := arg[[]A]("reduce", args, 0)
		if err != nil {
			return nil, err
		}
		return c.Call1(input), nil
	default:
		return nil, overflow("reduce", 1, args)
	}
}

// Reduce folds input left to right starting from seed.
func Reduce[A any, B any](reducer func(B, A) B, seed B, input []A) B {
	return ReduceOp[A, B]{}.Call3(reducer, seed, input)
}

// ReduceWith binds reducer and returns a continuation of arity 2.
func ReduceWith[A any, B any](reducer func(B, A) B) *ReduceCont2[A, B] {
	return ReduceOp[A, B]{}.Call1(reducer)
}

// ReduceFrom binds reducer and seed and returns a continuation of arity 1.
func ReduceFrom[A any, B any](reducer func(B, A) B, seed B) *ReduceCont1[A, B] {
	return ReduceOp[A, B]{}.Call2(reducer, seed)
}

// Fold1 folds input using its first element as the seed. It fails with
// ErrEmptyFoldWithoutSeed when input is empty rather than inventing a
// default.
func Fold1[A any](reducer func(A, A) A, input []A) (A, error) {
	acc, ok := seq.Reduce(input, reducer)
	if !ok {
		return acc, ErrEmptyFoldWithoutSeed
	}
	return acc, nil
}
