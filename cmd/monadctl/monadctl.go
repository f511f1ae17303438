package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/gookit/color"
	"github.com/ipfs/go-datastore"
	flatfs "github.com/ipfs/go-ds-flatfs"
	leveldb "github.com/ipfs/go-ds-leveldb"
	"github.com/redis/rueidis"
	"github.com/urfave/cli/v2"

	"github.com/application-research/go-monads/flow"
	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
)

type Monadctl struct {
	ds       datastore.Batching
	redis    rueidis.Client
	out      io.Writer
	jsonMode bool
}

func New(ctx *cli.Context, dataDir string) (*Monadctl, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}

	ds, err := openDatastore(ctx.String("store"), dataDir)
	if err != nil {
		return nil, err
	}

	mc := &Monadctl{
		ds:       ds,
		out:      ctx.App.Writer,
		jsonMode: ctx.Bool("json"),
	}

	if addr := ctx.String("redis"); addr != "" {
		client, err := rueidis.NewClient(rueidis.ClientOption{InitAddress: []string{addr}})
		if err != nil {
			ds.Close()
			return nil, err
		}
		mc.redis = client
	}

	return mc, nil
}

func openDatastore(kind string, dataDir string) (datastore.Batching, error) {
	switch kind {
	case "", "leveldb":
		return leveldb.NewDatastore(path.Join(dataDir, "datastore"), nil)
	case "flatfs":
		return flatfs.CreateOrOpen(path.Join(dataDir, "flatfs"), flatfs.NextToLast(2), false)
	}
	return nil, fmt.Errorf("unknown store %q, expected leveldb or flatfs", kind)
}

func (mc *Monadctl) Close() {
	if mc.redis != nil {
		mc.redis.Close()
	}
	if err := mc.ds.Close(); err != nil {
		log.Warnf("Failed to close datastore: %v", err)
	}
}

// printResult writes r either as JSON or as a coloured line, and returns the
// held error so the command exits non-zero on failure
func printResult[T any](mc *Monadctl, r result.Result[T, error], format func(T) string) error {
	if mc.jsonMode {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		fmt.Fprintln(mc.out, string(data))
	} else {
		r.IfOkOrElse(
			func(value T) { fmt.Fprintln(mc.out, format(value)) },
			func(err error) { fmt.Fprintln(mc.out, color.Red.Sprintf("error: %v", err)) },
		)
	}

	_, err := result.Unwrap(r)
	return err
}

func formatOption[T any](opt option.Option[T]) string {
	return option.Fold(opt,
		func(value T) string { return color.Green.Sprintf("%v", value) },
		func() string { return color.Yellow.Sprint("(none)") },
	)
}

// parseInts parses every argument as an integer, stopping at the first
// failure
func parseInts(args []string) result.Result[[]int, error] {
	return result.Traverse(args, func(arg string) result.Result[int, error] {
		return result.MapErr(result.From(strconv.Atoi(arg)), func(err error) error {
			return fmt.Errorf("argument %q is not an integer: %w", arg, err)
		})
	})
}

// sumFlow adds the parsed numbers, stopping early once the total reaches
// limit (when limit is positive)
func sumFlow(numbers []int, limit int) *flow.Flow[int] {
	f := flow.New[int]("sum", flow.WithSkipLogging())
	for i, n := range numbers {
		f.Then(strconv.Itoa(i), func(ctx context.Context, total int) (int, error) {
			total += n
			if limit > 0 && total >= limit {
				return limit, flow.Skip(nil)
			}
			return total, nil
		})
	}
	return f
}
