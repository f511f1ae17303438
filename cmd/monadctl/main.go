package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ipfs/go-datastore"
	logging "github.com/ipfs/go-log/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"
	"zombiezen.com/go/sqlite"

	"github.com/application-research/go-monads"
	"github.com/application-research/go-monads/kv"
	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
	"github.com/application-research/go-monads/rows"
)

var log = logging.Logger("monadctl")

// subsystems whose level --log-level controls
var logSubsystems = []string{"monadctl", "flow"}

func setLogLevel(level string) error {
	for _, name := range logSubsystems {
		if err := logging.SetLogLevel(name, level); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		log.Fatalf("Command failed: %v", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "monadctl"
	app.Usage = "Inspect key-value and SQLite stores through results and options"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "data-dir",
			Value: "",
			Usage: "Directory holding the datastore (default ~/.monadctl)",
		},
		&cli.StringFlag{
			Name:  "store",
			Value: "leveldb",
			Usage: "Datastore backend: leveldb or flatfs",
		},
		&cli.StringFlag{
			Name:  "redis",
			Usage: "Redis address; if set, get and put use Redis instead of the datastore",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print results as JSON",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "warn",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		return setLogLevel(ctx.String("log-level"))
	}
	app.Commands = []*cli.Command{
		{
			Name:      "get",
			Usage:     "Print the value stored under a key",
			ArgsUsage: "<key>",
			Action:    cmdGet,
		},
		{
			Name:      "put",
			Usage:     "Store a value under a key",
			ArgsUsage: "<key> <value>",
			Action:    cmdPut,
		},
		{
			Name:      "del",
			Usage:     "Delete a key",
			ArgsUsage: "<key>",
			Action:    cmdDel,
		},
		{
			Name:      "sum",
			Usage:     "Add integers, failing on the first argument that is not one",
			ArgsUsage: "<n>...",
			Action:    cmdSum,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "limit",
					Usage: "Stop adding once the total reaches this value",
				},
			},
		},
		{
			Name:      "sql",
			Usage:     "Print the first column of the first row returned by a query",
			ArgsUsage: "<query>",
			Action:    cmdSQL,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "db",
					Usage:    "Path to the SQLite database",
					Required: true,
				},
			},
		},
	}
	return app
}

func dataDir(ctx *cli.Context) string {
	if dir := ctx.String("data-dir"); dir != "" {
		return dir
	}

	dataDir, err := homedir.Expand("~/.monadctl")
	if err != nil {
		log.Warnf("Using current working directory as data dir because home dir could not be expanded: %v", err)
		return "data"
	}
	return dataDir
}

func withMonadctl(ctx *cli.Context, fn func(mc *Monadctl) error) error {
	mc, err := New(ctx, dataDir(ctx))
	if err != nil {
		return err
	}
	defer mc.Close()

	return fn(mc)
}

func requireArgs(ctx *cli.Context, n int) error {
	if ctx.Args().Len() != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, ctx.Args().Len())
	}
	return nil
}

func cmdGet(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	return withMonadctl(ctx, func(mc *Monadctl) error {
		key := ctx.Args().First()
		if mc.redis != nil {
			return printResult(mc, kv.RedisGet(ctx.Context, mc.redis, key), formatOption[string])
		}

		value := result.Map(kv.Get(ctx.Context, mc.ds, datastore.NewKey(key)), func(opt option.Option[[]byte]) option.Option[string] {
			return option.Map(opt, func(b []byte) string { return string(b) })
		})
		return printResult(mc, value, formatOption[string])
	})
}

func cmdPut(ctx *cli.Context) error {
	if err := requireArgs(ctx, 2); err != nil {
		return err
	}

	return withMonadctl(ctx, func(mc *Monadctl) error {
		key, value := ctx.Args().Get(0), ctx.Args().Get(1)

		var res result.Result[monads.Void, error]
		if mc.redis != nil {
			res = kv.RedisSet(ctx.Context, mc.redis, key, value)
		} else {
			res = kv.Put(ctx.Context, mc.ds, datastore.NewKey(key), []byte(value))
		}
		return printResult(mc, res, func(monads.Void) string { return "ok" })
	})
}

func cmdDel(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	return withMonadctl(ctx, func(mc *Monadctl) error {
		res := kv.Delete(ctx.Context, mc.ds, datastore.NewKey(ctx.Args().First()))
		return printResult(mc, res, func(monads.Void) string { return "ok" })
	})
}

func cmdSum(ctx *cli.Context) error {
	mc := &Monadctl{out: ctx.App.Writer, jsonMode: ctx.Bool("json")}

	total := result.FlatMap(parseInts(ctx.Args().Slice()), func(numbers []int) result.Result[int, error] {
		return sumFlow(numbers, ctx.Int("limit")).Apply(ctx.Context, result.Ok[int, error](0))
	})
	return printResult(mc, total, func(total int) string { return fmt.Sprint(total) })
}

func cmdSQL(ctx *cli.Context) error {
	if err := requireArgs(ctx, 1); err != nil {
		return err
	}

	conn, err := sqlite.OpenConn(ctx.String("db"), sqlite.OpenReadOnly)
	if err != nil {
		return err
	}
	defer conn.Close()

	mc := &Monadctl{out: ctx.App.Writer, jsonMode: ctx.Bool("json")}
	first := rows.First(conn, ctx.Args().First(), nil, func(stmt *sqlite.Stmt) option.Option[string] {
		return rows.Text(stmt, 0)
	})
	return printResult(mc, result.Map(first, option.Flatten[string]), formatOption[string])
}
