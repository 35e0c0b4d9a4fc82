package repo

import "context"

// Queryer runs raw SQL statements. The $1, $2, ... placeholders are
// sent to the DBMS separately from sql, so args are never interpolated.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...any) (count int64, err error)
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}

// Rows iterates over a result set. It must be closed before another
// statement is run on the same connection.
type Rows interface {
	Close()
	Err() error
	Next() bool
	Scan(dest ...any) error
}
