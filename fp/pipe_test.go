package fp_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/curry/fp"
)

func TestPipeHomogeneous(t *testing.T) {
	require.Equal(t, double(3), fp.Pipe(double)(3))
	require.Equal(t, double(inc(3)), fp.Pipe(inc, double)(3))
	require.Equal(t, 8, fp.PipeOp[int]{}.Call(fp.AddTo(1).Call1, double)(3))
	require.Equal(t, 3, fp.Pipe(fp.Identity[int])(3))
}

func TestPipeCopiesStages(t *testing.T) {
	rest := []func(int) int{double}
	piped := fp.Pipe(inc, rest...)
	rest[0] = inc
	require.Equal(t, 8, piped(3))
}

func TestPipeAssociativity(t *testing.T) {
	square := func(n int) int { return n * n }
	for _, x := range []int{-2, 0, 3, 10} {
		nested := fp.Pipe(fp.Pipe(inc, double), square)
		flat := fp.Pipe(inc, double, square)
		require.Equal(t, flat(x), nested(x))
	}
}

func TestPipeTyped(t *testing.T) {
	toString := strconv.Itoa
	shout := strings.ToUpper
	length := func(s string) int { return len(s) }
	exclaim := func(s string) string { return s + "!" }

	require.Equal(t, "7", fp.Pipe1(toString)(7))
	require.Equal(t, 2, fp.Pipe2(toString, length)(42))
	require.Equal(t, "12!", fp.Pipe3(inc, toString, exclaim)(11))
	require.Equal(t, 3, fp.Pipe4(inc, toString, exclaim, length)(11))
	require.Equal(t, "24!", fp.Pipe5(inc, double, toString, shout, exclaim)(11))
}
