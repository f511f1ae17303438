package result

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect(t *testing.T) {
	all := []Result[int, string]{Ok[int, string](1), Ok[int, string](2), Ok[int, string](3)}
	require.Equal(t, []int{1, 2, 3}, Collect(all).MustGet())

	mixed := []Result[int, string]{Ok[int, string](1), Err[int]("a"), Err[int]("b")}
	require.Equal(t, "a", Collect(mixed).MustGetErr())

	require.Empty(t, Collect[int, string](nil).MustGet())
}

func TestTraverse(t *testing.T) {
	parse := func(s string) Result[int, error] { return From(strconv.Atoi(s)) }

	sum := Map(Traverse([]string{"1", "2", "39"}, parse), func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	})
	require.Equal(t, 42, sum.MustGet())

	var visited []string
	r := Traverse([]string{"1", "x", "3"}, func(s string) Result[int, error] {
		visited = append(visited, s)
		return parse(s)
	})
	require.True(t, r.IsErr())
	require.Equal(t, []string{"1", "x"}, visited)
}

func TestPartition(t *testing.T) {
	values, errs := Partition([]Result[int, string]{
		Ok[int, string](1),
		Err[int]("a"),
		Ok[int, string](2),
		Err[int]("b"),
	})
	require.Equal(t, []int{1, 2}, values)
	require.Equal(t, []string{"a", "b"}, errs)
}
