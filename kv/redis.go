package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/application-research/go-monads"
	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
)

var (
	ErrRedis = errors.New("redis error")
)

// FromRedis converts the (value, error) pair of a redis reply accessor such
// as ToString into a result; a redis nil reply becomes None
func FromRedis[T any](value T, err error) result.Result[option.Option[T], error] {
	if err != nil && !rueidis.IsRedisNil(err) {
		err = fmt.Errorf("%w: %v", ErrRedis, err)
	}
	return Lookup(value, err, rueidis.IsRedisNil)
}

func RedisGet(ctx context.Context, client rueidis.Client, key string) result.Result[option.Option[string], error] {
	return FromRedis(client.Do(ctx, client.B().Get().Key(key).Build()).ToString())
}

func RedisSet(ctx context.Context, client rueidis.Client, key, value string) result.Result[monads.Void, error] {
	err := client.Do(ctx, client.B().Set().Key(key).Value(value).Build()).Error()
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrRedis, err)
	}
	return done(err)
}
