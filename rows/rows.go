// Package rows reads SQLite rows through Options: a NULL column is None.
package rows

import (
	"errors"
	"fmt"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/application-research/go-monads/option"
	"github.com/application-research/go-monads/result"
)

var (
	ErrQuery = errors.New("sqlite query failed")

	errStop = errors.New("stop after first row")
)

func column[T any](stmt *sqlite.Stmt, col int, read func(int) T) option.Option[T] {
	if col < 0 || col >= stmt.ColumnCount() || stmt.ColumnType(col) == sqlite.TypeNull {
		return option.None[T]()
	}
	return option.Some(read(col))
}

func Text(stmt *sqlite.Stmt, col int) option.Option[string] {
	return column(stmt, col, stmt.ColumnText)
}

func Int64(stmt *sqlite.Stmt, col int) option.Option[int64] {
	return column(stmt, col, stmt.ColumnInt64)
}

func Float(stmt *sqlite.Stmt, col int) option.Option[float64] {
	return column(stmt, col, stmt.ColumnFloat)
}

func Bytes(stmt *sqlite.Stmt, col int) option.Option[[]byte] {
	return column(stmt, col, func(col int) []byte {
		buf := make([]byte, stmt.ColumnLen(col))
		stmt.ColumnBytes(col, buf)
		return buf
	})
}

// Named returns the index of the result column called name
func Named(stmt *sqlite.Stmt, name string) option.Option[int] {
	return option.Some(stmt.ColumnIndex(name)).Filter(func(idx int) bool { return idx >= 0 })
}

// First runs query and scans its first row. A query that returns no rows is
// Ok(None).
func First[T any](conn *sqlite.Conn, query string, args []any, scan func(*sqlite.Stmt) T) result.Result[option.Option[T], error] {
	var found option.Option[T]
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = option.Of(scan(stmt))
			return errStop
		},
	})
	if err != nil && !errors.Is(err, errStop) {
		return result.Err[option.Option[T]](fmt.Errorf("%w: %v", ErrQuery, err))
	}
	return result.Ok[option.Option[T], error](found)
}

// All runs query and scans every row
func All[T any](conn *sqlite.Conn, query string, args []any, scan func(*sqlite.Stmt) T) result.Result[[]T, error] {
	var out []T
	err := sqlitex.Execute(conn, query, &sqlitex.ExecOptions{
		Args: args,
		ResultFunc: func(stmt *sqlite.Stmt) error {
			out = append(out, scan(stmt))
			return nil
		},
	})
	if err != nil {
		return result.Err[[]T](fmt.Errorf("%w: %v", ErrQuery, err))
	}
	return result.Ok[[]T, error](out)
}
