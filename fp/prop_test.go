package fp_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/curry/fp"
)

func TestProp(t *testing.T) {
	obj := map[string]int{"a": 1, "b": 2}

	v, err := fp.Prop("a", obj)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = fp.PropOf[string, int]("a").Call1(obj)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = fp.PropOp[string, int]{}.Call2("b", obj)
	require.NoError(t, err)
	require.Equal(t, 2, v)
}

func TestPropMissing(t *testing.T) {
	_, err := fp.Prop("z", map[string]int{"a": 1})
	require.ErrorIs(t, err, fp.ErrMissingProperty)

	var missing *fp.MissingPropertyError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "z", missing.Name)

	_, err = fp.PropOf[string, int]("a").Call1(nil)
	require.ErrorIs(t, err, fp.ErrMissingProperty)
}

func TestPropZeroValueIsNotMissing(t *testing.T) {
	v, err := fp.Prop("a", map[string]*int{"a": nil})
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestPropProjectorIsReusable(t *testing.T) {
	name := fp.PropOf[string, string]("name")
	require.Equal(t, "name", name.Name())

	people := []map[string]string{{"name": "ana"}, {"name": "bia"}}
	for i, want := range []string{"ana", "bia"} {
		got, err := name.Call1(people[i])
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
