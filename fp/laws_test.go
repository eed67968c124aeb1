package fp_test

import (
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/charmingruby/curry/fp"
)

func TestCurryingEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "xs")
		k := rapid.IntRange(-10, 10).Draw(t, "k")
		a := rapid.Int().Draw(t, "a")
		b := rapid.Int().Draw(t, "b")

		mapper := func(n int) int { return n*k + 1 }
		if !slices.Equal(fp.Map(mapper, xs), fp.MapWith(mapper).Call1(xs)) {
			t.Fatalf("map(f, xs) != map(f)(xs)")
		}

		pred := func(n int) bool { return n%3 == k%3 }
		if !slices.Equal(fp.Filter(pred, xs), fp.FilterWith(pred).Call1(xs)) {
			t.Fatalf("filter(p, xs) != filter(p)(xs)")
		}

		if fp.Add(a, b) != fp.AddTo(a).Call1(b) {
			t.Fatalf("add(a, b) != add(a)(b)")
		}
		if fp.Subtract(a, b) != fp.SubtractFrom(a).Call1(b) {
			t.Fatalf("subtract(a, b) != subtract(a)(b)")
		}

		obj := map[int]int{a: b}
		full, err1 := fp.Prop(a, obj)
		curried, err2 := fp.PropOf[int, int](a).Call1(obj)
		if full != curried || err1 != nil || err2 != nil {
			t.Fatalf("prop(k, obj) != prop(k)(obj)")
		}
	})
}

func TestReduceThreeLevelEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOf(rapid.IntRange(-1000, 1000)).Draw(t, "xs")
		seed := rapid.IntRange(-1000, 1000).Draw(t, "seed")

		// Non-commutative so that order mistakes show up.
		r := func(acc, n int) int { return acc*31 - n }
		op := fp.ReduceOp[int, int]{}

		want := op.Call3(r, seed, xs)
		got := []int{
			op.Call1(r).Call2(seed, xs),
			op.Call1(r).Call1(seed).Call1(xs),
			op.Call2(r, seed).Call1(xs),
		}
		for i, v := range got {
			if v != want {
				t.Fatalf("path %d: got %d, want %d", i, v, want)
			}
		}
	})
}

func TestReduceEmptyInputLaw(t *testing.T) {
	law := func(seed int, k int) bool {
		r := func(acc, n int) int { return acc*k + n }
		return fp.Reduce(r, seed, []int{}) == seed
	}
	require.NoError(t, quick.Check(law, nil))
}

func TestMapFilterPreserveOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		xs := rapid.SliceOfDistinct(rapid.Int(), rapid.ID[int]).Draw(t, "xs")

		mapped := fp.Map(fp.Identity[int], xs)
		if !slices.Equal(mapped, xs) {
			t.Fatalf("map reordered %v into %v", xs, mapped)
		}

		kept := fp.Filter(func(n int) bool { return n%2 == 0 }, xs)
		last := -1
		for _, v := range kept {
			idx := slices.Index(xs, v)
			if idx <= last {
				t.Fatalf("filter reordered %v into %v", xs, kept)
			}
			last = idx
		}
	})
}

func TestPipeLaws(t *testing.T) {
	f := func(n int) int { return n + 3 }
	g := func(n int) int { return n * 7 }
	h := func(n int) int { return n - 11 }

	identity := func(x int) bool {
		return fp.Pipe(f)(x) == f(x)
	}
	require.NoError(t, quick.Check(identity, nil))

	composition := func(x int) bool {
		return fp.Pipe(f, g)(x) == g(f(x))
	}
	require.NoError(t, quick.Check(composition, nil))

	associativity := func(x int) bool {
		return fp.Pipe(fp.Pipe(f, g), h)(x) == fp.Pipe(f, g, h)(x)
	}
	require.NoError(t, quick.Check(associativity, nil))
}
