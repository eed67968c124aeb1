package fp

import "fmt"

// PropOp is curried property projection of maximum arity 2 over map-shaped
// objects: a property name followed by the object.
type PropOp[K comparable, V any] struct{}

// Call0 returns the operation itself.
func (op PropOp[K, V]) Call0() PropOp[K, V] {
	return op
}

// Call1 binds the property name and returns a reusable projector.
func (PropOp[K, V]) Call1(name K) *PropCont[K, V] {
	return &PropCont[K, V]{name: name}
}

// Call2 returns obj[name], or a *MissingPropertyError when the key is
// absent.
func (PropOp[K, V]) Call2(name K, obj map[K]V) (V, error) {
	return lookup(name, obj)
}

// MaxArity implements Callable.
func (PropOp[K, V]) MaxArity() int {
	return 2
}

// Invoke implements Callable.
func (op PropOp[K, V]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return op, nil
	case 1:
		name, err := arg[K]("prop", args, 0)
		if err != nil {
			return nil, err
		}
		return op.Call1(name), nil
	case 2:
		name, err := arg[K]("prop", args, 0)
		if err != nil {
			return nil, err
		}
		obj, err := arg[map[K]V]("prop", args, 1)
		if err != nil {
			return nil, err
		}
		return op.Call2(name, obj)
	default:
		return nil, overflow("prop", 2, args)
	}
}

// PropCont is a projector with its property name bound.
type PropCont[K comparable, V any] struct {
	name K
}

// Call0 returns the continuation itself.
func (c *PropCont[K, V]) Call0() *PropCont[K, V] {
	return c
}

// Call1 projects the bound property out of obj.
func (c *PropCont[K, V]) Call1(obj map[K]V) (V, error) {
	return lookup(c.name, obj)
}

// Name returns the bound property name.
func (c *PropCont[K, V]) Name() K {
	return c.name
}

// MaxArity implements Callable.
func (*PropCont[K, V]) MaxArity() int {
	return 1
}

// Invoke implements Callable.
func (c *PropCont[K, V]) Invoke(args ...any) (any, error) {
	switch len(args) {
	case 0:
		return c, nil
	case 1:
		obj, err := arg[map[K]V]("prop", args, 0)
		if err != nil {
			return nil, err
		}
		return c.Call1(obj)
	default:
		return nil, overflow("prop", 1, args)
	}
}

// Prop returns obj[name], failing with ErrMissingProperty when absent.
//
// Example:
//
//	v, err := fp.Prop("a", map[string]int{"a": 1, "b": 2})
func Prop[K comparable, V any](name K, obj map[K]V) (V, error) {
	return PropOp[K, V]{}.Call2(name, obj)
}

// PropOf binds name and returns a projector over any later object.
func PropOf[K comparable, V any](name K) *PropCont[K, V] {
	return PropOp[K, V]{}.Call1(name)
}

func lookup[K comparable, V any](name K, obj map[K]V) (V, error) {
	v, ok := obj[name]
	if !ok {
		return v, &MissingPropertyError{Name: fmt.Sprint(name)}
	}
	return v, nil
}
