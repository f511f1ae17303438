package kv

import (
	"context"
	"errors"
	"fmt"

	blocks "github.com/ipfs/go-block-format"
	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-datastore"
	blockstore "github.com/ipfs/go-ipfs-blockstore"

	"github.com/application-research/go-monads"
	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
)

var (
	ErrBlockstore = errors.New("blockstore error")
)

func isBlockNotFound(err error) bool {
	return errors.Is(err, blockstore.ErrNotFound) || errors.Is(err, datastore.ErrNotFound)
}

func wrapBlockstoreErr(err error) error {
	if err == nil || isBlockNotFound(err) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrBlockstore, err)
}

// GetBlock reads the block addressed by c. A block that is not stored is
// Ok(None).
func GetBlock(ctx context.Context, bs blockstore.Blockstore, c cid.Cid) result.Result[option.Option[blocks.Block], error] {
	block, err := bs.Get(ctx, c)
	return Lookup(block, wrapBlockstoreErr(err), isBlockNotFound)
}

func GetBlockSize(ctx context.Context, bs blockstore.Blockstore, c cid.Cid) result.Result[option.Option[int], error] {
	size, err := bs.GetSize(ctx, c)
	return Lookup(size, wrapBlockstoreErr(err), isBlockNotFound)
}

func HasBlock(ctx context.Context, bs blockstore.Blockstore, c cid.Cid) result.Result[bool, error] {
	has, err := bs.Has(ctx, c)
	return result.From(has, wrapBlockstoreErr(err))
}

func PutBlock(ctx context.Context, bs blockstore.Blockstore, block blocks.Block) result.Result[monads.Void, error] {
	return done(wrapBlockstoreErr(bs.Put(ctx, block)))
}

func DeleteBlock(ctx context.Context, bs blockstore.Blockstore, c cid.Cid) result.Result[monads.Void, error] {
	return done(wrapBlockstoreErr(bs.DeleteBlock(ctx, c)))
}
