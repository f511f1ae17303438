package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/ipfs/go-datastore"

	"github.com/application-research/go-monads"
	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
)

var (
	ErrDatastore = errors.New("datastore error")
)

func isNotFound(err error) bool {
	return errors.Is(err, datastore.ErrNotFound)
}

func wrapDatastoreErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDatastore, err)
}

// Get reads key from ds
func Get(ctx context.Context, ds datastore.Read, key datastore.Key) result.Result[option.Option[[]byte], error] {
	value, err := ds.Get(ctx, key)
	if err != nil && !isNotFound(err) {
		err = wrapDatastoreErr(err)
	}
	return Lookup(value, err, isNotFound)
}

// GetSize reads the size of the value stored under key
func GetSize(ctx context.Context, ds datastore.Read, key datastore.Key) result.Result[option.Option[int], error] {
	size, err := ds.GetSize(ctx, key)
	if err != nil && !isNotFound(err) {
		err = wrapDatastoreErr(err)
	}
	return Lookup(size, err, isNotFound)
}

func Has(ctx context.Context, ds datastore.Read, key datastore.Key) result.Result[bool, error] {
	has, err := ds.Has(ctx, key)
	return result.From(has, wrapDatastoreErr(err))
}

func Put(ctx context.Context, ds datastore.Write, key datastore.Key, value []byte) result.Result[monads.Void, error] {
	return done(wrapDatastoreErr(ds.Put(ctx, key, value)))
}

// Delete removes key. Deleting a missing key is not an error.
func Delete(ctx context.Context, ds datastore.Write, key datastore.Key) result.Result[monads.Void, error] {
	return done(wrapDatastoreErr(ds.Delete(ctx, key)))
}
