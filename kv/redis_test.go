package kv

import (
	"errors"
	"testing"

	"github.com/redis/rueidis"
	"github.com/stretchr/testify/require"

	"github.com/application-research/go-monads/option"
)

func TestFromRedis(t *testing.T) {
	require.Equal(t, option.Some("v"), FromRedis("v", nil).MustGet())
	require.Equal(t, option.None[string](), FromRedis("", rueidis.Nil).MustGet())

	got := FromRedis("", errors.New("connection reset"))
	require.True(t, got.IsErr())
	require.ErrorIs(t, got.MustGetErr(), ErrRedis)
	require.Contains(t, got.MustGetErr().Error(), "connection reset")

	n := FromRedis(int64(0), rueidis.Nil)
	require.True(t, n.MustGet().IsNone())
}
