package fp

// PipeOp composes stages of a single carrier type left to right.
type PipeOp[T any] struct{}

// Call0 returns the operation itself.
func (op PipeOp[T]) Call0() PipeOp[T] {
	return op
}

// Call composes first and rest so that the output of each stage becomes the
// sole input of the next. The stage list is copied; later changes to rest
// do not affect the returned function.
//
// Example:
//
//	inc := fp.PipeOp[int]{}.Call(
//		fp.AddTo(1).Call1,
//		func(n int) int { return n * 2 },
//	)
//	inc(3) // 8
func (PipeOp[T]) Call(first func(T) T, rest ...func(T) T) func(T) T {
	stages := make([]func(T) T, 0, len(rest)+1)
	stages = append(stages, first)
	stages = append(stages, rest...)

	return func(value T) T {
		for _, stage := range stages {
			value = stage(value)
		}
		return value
	}
}

// Pipe composes homogeneous stages left to right.
func Pipe[T any](first func(T) T, rest ...func(T) T) func(T) T {
	return PipeOp[T]{}.Call(first, rest...)
}

// Pipe1 is the single stage pipe; it returns f.
func Pipe1[A, B any](f func(A) B) func(A) B {
	return f
}

// Pipe2 is left to right composition: Pipe2(f, g)(x) == g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 composes three stages left to right.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C,
	h func(C) D) func(A) D {

	return Pipe2(Pipe2(f, g), h)
}

// Pipe4 composes four stages left to right.
func Pipe4[A, B, C, D, E any](f func(A) B, g func(B) C, h func(C) D,
	i func(D) E) func(A) E {

	return Pipe2(Pipe3(f, g, h), i)
}

// Pipe5 composes five stages left to right.
func Pipe5[A, B, C, D, E, F any](f func(A) B, g func(B) C, h func(C) D,
	i func(D) E, j func(E) F) func(A) F {

	return Pipe2(Pipe4(f, g, h, i), j)
}
