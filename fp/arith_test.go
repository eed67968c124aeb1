package fp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/curry/fp"
)

func TestAdd(t *testing.T) {
	require.Equal(t, 5, fp.Add(2, 3))
	require.Equal(t, 5, fp.AddTo(2).Call1(3))
	require.Equal(t, 5, fp.AddOp[int]{}.Call2(2, 3))
	require.Equal(t, 5, fp.AddOp[int]{}.Call0().Call1(2).Call0().Call1(3))
	require.InDelta(t, 0.75, fp.Add(0.5, 0.25), 1e-12)
	require.Equal(t, complex(1, 2), fp.Add(complex(1, 0), complex(0, 2)))
}

func TestSubtract(t *testing.T) {
	require.Equal(t, 3, fp.Subtract(5, 2))
	require.Equal(t, 3, fp.SubtractFrom(5).Call1(2))
	require.Equal(t, 3, fp.SubtractOp[int]{}.Call1(5).Call1(2))
	require.Equal(t, -3, fp.Subtract(2, 5))
}

func TestArithmeticUsesNativeOverflow(t *testing.T) {
	require.Equal(t, int8(-128), fp.Add[int8](127, 1))
	require.Equal(t, uint(0), fp.SubtractFrom[uint](1).Call1(1))
}

func TestAddToComposesWithMap(t *testing.T) {
	require.Equal(t, []int{11, 12}, fp.Map(fp.AddTo(10).Call1, []int{1, 2}))
}
