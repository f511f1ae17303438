// Package kv adapts key-value stores to return results: a missing key is an
// Ok(None) rather than an error, and every other failure stays in the Err
// channel.
package kv

import (
	"github.com/application-research/go-monads"
	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
)

// Lookup converts the (value, error) pair of a read into a result. isMissing
// decides which errors mean the key does not exist.
func Lookup[T any](value T, err error, isMissing func(error) bool) result.Result[option.Option[T], error] {
	if err != nil {
		if isMissing(err) {
			return result.Ok[option.Option[T], error](option.None[T]())
		}
		return result.From(option.None[T](), err)
	}
	return result.Ok[option.Option[T], error](option.Of(value))
}

func done(err error) result.Result[monads.Void, error] {
	return result.From(monads.Void{}, err)
}
