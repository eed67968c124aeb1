package fp

// AddOp is curried addition of maximum arity 2.
type AddOp[N Number] struct{}

// Call0 returns the operation itself.
func (op AddOp[N]) Call0() AddOp[N] {
	return op
}

// Call1 binds the first operand.
func (AddOp[N]) Call1(a N) *ArithCont[N] {
	return &ArithCont[N]{op: "add", a: a, apply: add[N]}
}

// Call2 returns a + b.
func (AddOp[N]) Call2(a, b N) N {
	return add(a, b)
}

// MaxArity implements Callable.
func (AddOp[N]) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (op AddOp[N]) Invoke(args ...any) (any, error) {
	return invokeArith(op, "add", add[N], args)
}

// SubtractOp is curried subtraction of maximum arity 2.
type SubtractOp[N Number] struct{}

// Call0 returns the operation itself.
func (op SubtractOp[N]) Call0() SubtractOp[N] {
	return op
}

// Call1 binds the minuend.
func (SubtractOp[N]) Call1(a N) *ArithCont[N] {
	return &ArithCont[N]{op: "subtract", a: a, apply: subtract[N]}
}

// Call2 returns a - b.
func (SubtractOp[N]) Call2(a, b N) N {
	return subtract(a, b)
}

// MaxArity implements Callable.
func (SubtractOp[N]) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (op SubtractOp[N]) Invoke(args ...any) (any, error) {
	return invokeArith(op, "subtract", subtract[N], args)
}

// ArithCont is an arithmetic operation with its first operand bound.
type ArithCont[N Number] struct {
	op    string
	a     N
	apply func(N, N) N
}

// Call0 returns the continuation itself.
func (c *ArithCont[N]) Call0() *ArithCont[N] {
	return c
}

// Call1 applies the bound operand and b.
func (c *ArithCont[N]) Call1(b N) N {
	return c.apply(c.a, b)
}

// MaxArity implements Callable.
func (*ArithCont[N]) MaxArity() int {
	return 1
}

// Invoke implements Callable.
func (c *ArithCont[N]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 1:
		b, err := arg[N](c.op, args, 0)
		if err != nil {
			return nil, err
		}
		return c.Call1(b), nil
	default:
		return nil, overflow(c.op, 1, args)
	}
}

// Add returns a + b.
func Add[N Number](a, b N) N {
	return AddOp[N]{}.Call2(a, b)
}

// AddTo binds a and returns a continuation computing a + b.
func AddTo[N Number](a N) *ArithCont[N] {
	return AddOp[N]{}.Call1(a)
}

// Subtract returns a - b.
func Subtract[N Number](a, b N) N {
	return SubtractOp[N]{}.Call2(a, b)
}

// SubtractFrom binds a and returns a continuation computing a - b.
func SubtractFrom[N Number](a N) *ArithCont[N] {
	return SubtractOp[N]{}.Call1(a)
}

func add[N Number](a, b N) N {
	return a + b
}

func subtract[N Number](a, b N) N {
	return a - b
}

func invokeArith[N Number](self Callable, op string, apply func(N, N) N,
	args []any) (any, error) {

	switch len(args) {
	case 0:
		return self, nil
	case 1:
		a, err := arg[N](op, args, 0)
		if err != nil {
			return nil, err
		}
		return &ArithCont[N]{op: op, a: a, apply: apply}, nil
	case 2:
		a, err := arg[N](op, args, 0)
		if err != nil {
			return nil, err
		}
		b, err := arg[N](op, args, 1)
		if err != nil {
			return nil, err
		}
		return apply(a, b), nil
	default:
		return nil, overflow(op, 2, args)
	}
}
