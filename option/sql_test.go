package option

import (
	"database/sql/driver"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	var n Option[int64]
	require.NoError(t, n.Scan(int64(7)))
	require.Equal(t, Some(int64(7)), n)

	require.NoError(t, n.Scan(nil))
	require.True(t, n.IsNone())

	var s Option[string]
	require.NoError(t, s.Scan([]byte("hello")))
	require.Equal(t, Some("hello"), s)

	var bad Option[int64]
	require.Error(t, bad.Scan("not a number"))
}

func TestValue(t *testing.T) {
	v, err := None[int64]().Value()
	require.NoError(t, err)
	require.Nil(t, v)

	v, err = Some(int64(3)).Value()
	require.NoError(t, err)
	require.Equal(t, int64(3), v)

	v, err = Some("x").Value()
	require.NoError(t, err)
	require.Equal(t, "x", v)
}

func TestValueConvertsToDriverTypes(t *testing.T) {
	v, err := Some(5).Value()
	require.NoError(t, err)
	require.True(t, driver.IsValue(v))
	require.Equal(t, int64(5), v)

	v, err = Some(int32(-2)).Value()
	require.NoError(t, err)
	require.Equal(t, int64(-2), v)

	v, err = Some(float32(1.5)).Value()
	require.NoError(t, err)
	require.Equal(t, float64(1.5), v)

	v, err = Some(true).Value()
	require.NoError(t, err)
	require.Equal(t, true, v)

	v, err = None[int]().Value()
	require.NoError(t, err)
	require.Nil(t, v)
}
