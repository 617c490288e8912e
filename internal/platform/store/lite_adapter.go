package store

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"taller/internal/platform/store/sqlite"
)

// sqlQuery is the subset of *sql.DB and *sql.Tx the adapter drives
type sqlQuery interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// liteAdapter implements TxRunner over database/sql with the go-sqlite3 driver
type liteAdapter struct {
	liteQuerier
	db *sql.DB
}

func newLiteAdapter(db *sql.DB, tracer QueryTracer) *liteAdapter {
	return &liteAdapter{
		liteQuerier: liteQuerier{q: db, traced: traced{backend: "sqlite", tracer: tracer, slowUS: -1}},
		db:          db,
	}
}

func (a *liteAdapter) Ping(ctx context.Context) error {
	if a == nil || a.db == nil {
		return errors.New("sqlite: nil adapter")
	}
	return sqlite.MapError(a.db.PingContext(ctx), "sqlite ping")
}

func (a *liteAdapter) Close() error { return a.db.Close() }

func (a *liteAdapter) Tx(ctx context.Context, fn func(q RowQuerier) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return sqlite.MapError(err, "sqlite begin")
	}
	if err := fn(liteQuerier{q: tx, traced: a.traced}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return sqlite.MapError(tx.Commit(), "sqlite commit")
}

type liteQuerier struct {
	traced
	q sqlQuery
}

func (x liteQuerier) Exec(ctx context.Context, query string, args ...any) (CommandTag, error) {
	start := time.Now()
	res, err := x.q.ExecContext(ctx, query, args...)
	x.emit(ctx, query, args, start, err)
	if err != nil {
		return nil, sqlite.MapError(err, "sqlite exec")
	}
	n, _ := res.RowsAffected()
	return liteTag{n: n}, nil
}

func (x liteQuerier) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	start := time.Now()
	rs, err := x.q.QueryContext(ctx, query, args...)
	x.emit(ctx, query, args, start, err)
	if err != nil {
		return nil, sqlite.MapError(err, "sqlite query")
	}
	return liteRows{r: rs}, nil
}

func (x liteQuerier) QueryRow(ctx context.Context, query string, args ...any) Row {
	start := time.Now()
	r := x.q.QueryRowContext(ctx, query, args...)
	return liteRow{r: r, after: func(err error) { x.emit(ctx, query, args, start, err) }}
}

type liteRow struct {
	r     *sql.Row
	after func(error)
}

func (x liteRow) Scan(dst ...any) error {
	err := x.r.Scan(dst...)
	if x.after != nil {
		x.after(err)
	}
	return sqlite.MapError(err, "sqlite scan")
}

type liteRows struct{ r *sql.Rows }

func (x liteRows) Next() bool            { return x.r.Next() }
func (x liteRows) Scan(dst ...any) error { return x.r.Scan(dst...) }
func (x liteRows) Err() error            { return sqlite.MapError(x.r.Err(), "sqlite rows") }
func (x liteRows) Close()                { _ = x.r.Close() }
func (x liteRows) Columns() []string {
	cols, _ := x.r.Columns()
	return cols
}

type liteTag struct{ n int64 }

func (t liteTag) String() string      { return "ROWS " + strconv.FormatInt(t.n, 10) }
func (t liteTag) RowsAffected() int64 { return t.n }
