package option

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/application-research/go-monads"
)

func TestOptionBasic(t *testing.T) {
	some := Some(10)
	require.True(t, some.IsSome())
	require.False(t, some.IsNone())

	value, ok := some.Unwrap()
	require.True(t, ok)
	require.Equal(t, 10, value)

	none := None[int]()
	require.True(t, none.IsNone())
	_, ok = none.Unwrap()
	require.False(t, ok)

	var zero Option[string]
	require.True(t, zero.IsNone())
	require.Equal(t, None[string](), zero)
}

func TestNilPolicy(t *testing.T) {
	var nilPtr *int
	require.True(t, Of(nilPtr).IsNone())
	require.True(t, Of[error](nil).IsNone())
	require.True(t, Of([]int(nil)).IsSome(), "nil slices are empty values")

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, monads.ErrInvalidState)
	}()
	Some(nilPtr)
}

func TestConstructors(t *testing.T) {
	n := 4
	require.Equal(t, Some(4), FromPtr(&n))
	require.Equal(t, None[int](), FromPtr[int](nil))

	m := map[string]int{"a": 1}
	v, ok := m["a"]
	require.Equal(t, Some(1), FromPair(v, ok))
	v, ok = m["b"]
	require.Equal(t, None[int](), FromPair(v, ok))
}

func TestGet(t *testing.T) {
	value, err := Some("x").Get()
	require.NoError(t, err)
	require.Equal(t, "x", value)

	_, err = None[string]().Get()
	require.ErrorIs(t, err, monads.ErrUnwrap)
	var uerr *monads.UnwrapError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "None", uerr.Variant)

	require.Equal(t, "x", Some("x").MustGet())
	require.Panics(t, func() { None[string]().MustGet() })
}

func TestGetOrElse(t *testing.T) {
	require.Equal(t, 3, Some(3).GetOrElse(9))
	require.Equal(t, 9, None[int]().GetOrElse(9))
	require.Equal(t, 0, None[int]().GetOrZero())
	require.Equal(t, 3, Some(3).GetOrZero())
}

func TestOrElse(t *testing.T) {
	require.Equal(t, Some(1), Some(1).OrElse(Some(2)))
	require.Equal(t, Some(2), None[int]().OrElse(Some(2)))
	require.Equal(t, None[int](), None[int]().OrElse(None[int]()))

	calls := 0
	fallback := func() Option[int] {
		calls++
		return Some(7)
	}
	require.Equal(t, Some(1), Some(1).OrElseGet(fallback))
	require.Zero(t, calls)
	require.Equal(t, Some(7), None[int]().OrElseGet(fallback))
	require.Equal(t, 1, calls)
}

func TestFilter(t *testing.T) {
	even := func(x int) bool { return x%2 == 0 }
	require.Equal(t, Some(2), Some(2).Filter(even))
	require.Equal(t, None[int](), Some(3).Filter(even))
	require.Equal(t, None[int](), None[int]().Filter(even))
}

func TestPtr(t *testing.T) {
	require.Nil(t, None[int]().Ptr())
	ptr := Some(5).Ptr()
	require.NotNil(t, ptr)
	require.Equal(t, 5, *ptr)
}

func TestCallbacks(t *testing.T) {
	var seen []string
	Some(1).IfSome(func(int) { seen = append(seen, "some") })
	None[int]().IfSome(func(int) { seen = append(seen, "unexpected") })
	Some(1).IfSomeOrElse(func(int) { seen = append(seen, "orElse:some") }, func() { seen = append(seen, "unexpected") })
	None[int]().IfSomeOrElse(func(int) { seen = append(seen, "unexpected") }, func() { seen = append(seen, "orElse:none") })
	assert.Equal(t, []string{"some", "orElse:some", "orElse:none"}, seen)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(5)", Some(5).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestMap(t *testing.T) {
	require.Equal(t, Some(10), Map(Some(5), func(x int) int { return x * 2 }))

	calls := 0
	require.Equal(t, None[int](), Map(None[int](), func(x int) int {
		calls++
		return x
	}))
	require.Zero(t, calls)

	// the original Maybe.transform chain
	got := Map(Map(Map(Some(5), func(v int) int { return v * v * v }), strconv.Itoa), func(s string) string {
		return strings.Repeat(s, 2)
	})
	require.Equal(t, Some("125125"), got)

	// a transform yielding nil gives None
	require.True(t, Map(Some(1), func(int) *int { return nil }).IsNone())
}

func TestFlatMapLaws(t *testing.T) {
	f := func(x int) Option[int] {
		if x < 0 {
			return None[int]()
		}
		return Some(x + 1)
	}
	g := func(x int) Option[string] {
		if x%2 == 0 {
			return None[string]()
		}
		return Some(strconv.Itoa(x))
	}

	for _, opt := range []Option[int]{Some(-1), Some(0), Some(1), Some(2), None[int]()} {
		require.Equal(t, opt, FlatMap(opt, Some[int]))

		left := FlatMap(FlatMap(opt, f), g)
		right := FlatMap(opt, func(x int) Option[string] { return FlatMap(f(x), g) })
		require.Equal(t, left, right)
	}

	require.True(t, FlatMap(Some(5), func(int) Option[int] { return None[int]() }).IsNone())
}

func TestFold(t *testing.T) {
	describe := func(o Option[int]) string {
		return Fold(o, strconv.Itoa, func() string { return "none" })
	}
	require.Equal(t, "4", describe(Some(4)))
	require.Equal(t, "none", describe(None[int]()))
}

func TestFlatten(t *testing.T) {
	require.Equal(t, Some(1), Flatten(Some(Some(1))))
	require.Equal(t, None[int](), Flatten(Some(None[int]())))
	require.Equal(t, None[int](), Flatten(None[Option[int]]()))
}

func TestEquality(t *testing.T) {
	require.True(t, Equal(Some(1), Some(1)))
	require.False(t, Equal(Some(1), Some(2)))
	require.False(t, Equal(Some(0), None[int]()))
	require.True(t, Equal(None[int](), None[int]()))

	eq := func(a, b []int) bool { return len(a) == len(b) }
	require.True(t, EqualFunc(Some([]int{1}), Some([]int{2}), eq))
	require.True(t, EqualFunc(None[[]int](), None[[]int](), eq))
	require.False(t, EqualFunc(Some([]int{1}), None[[]int](), eq))
}

func TestValuesAndTraverse(t *testing.T) {
	require.Equal(t, []int{1, 3}, Values([]Option[int]{Some(1), None[int](), Some(3)}))
	require.Empty(t, Values[int](nil))

	lookup := map[string]int{"a": 1, "b": 2}
	find := func(k string) Option[int] {
		v, ok := lookup[k]
		return FromPair(v, ok)
	}
	require.Equal(t, Some([]int{1, 2}), Traverse([]string{"a", "b"}, find))
	require.True(t, Traverse([]string{"a", "z", "b"}, find).IsNone())
}
