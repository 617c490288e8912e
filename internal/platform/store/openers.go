package store

import (
	"context"
	"fmt"
	"time"

	chx "taller/internal/platform/store/ch"
	"taller/internal/platform/store/pg"
	"taller/internal/platform/store/sqlite"
)

// seams for tests
var (
	pgOpen     = pg.Open
	sqliteOpen = sqlite.Open
	chOpen     = chx.Open
	sleep      = time.Sleep
)

// openPG opens the pool, waits for it to answer, then wraps it with the pgx adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	p, err := pgOpen(ctx, pg.Config{URL: cfg.PG.URL, MaxConns: cfg.PG.MaxConns}, nil)
	if err != nil {
		return nil, err
	}

	attempts := cfg.PG.ConnectRetries
	if attempts <= 0 {
		attempts = 20
	}
	timeout := cfg.PG.PingTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	err = retry(ctx, attempts, 150*time.Millisecond, 2*time.Second, func() error {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return p.Ping(pctx)
	})
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempts, err)
	}
	var tracer QueryTracer
	if cfg.PG.LogSQL {
		tracer = SQLTracer(s.Log)
	}
	return newPGAdapter(p, tracer, cfg.PG.SlowQueryMs), nil
}

// retry calls fn until it succeeds, ctx ends, or attempts run out; backoff doubles up to ceil
func retry(ctx context.Context, attempts int, start, ceil time.Duration, fn func() error) error {
	var last error
	backoff := start
	for i := 0; i < attempts; i++ {
		if last = fn(); last == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		sleep(backoff)
		backoff = min(backoff*2, ceil)
	}
	return last
}

func openSQLite(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	db, err := sqliteOpen(ctx, sqlite.Config{
		Path:        cfg.SQLite.Path,
		BusyTimeout: cfg.SQLite.BusyTimeout,
	})
	if err != nil {
		return nil, err
	}
	var tracer QueryTracer
	if cfg.SQLite.LogSQL {
		tracer = SQLTracer(s.Log)
	}
	return newLiteAdapter(db, tracer), nil
}

func openCH(ctx context.Context, cfg Config, _ *Store) (Clickhouse, error) {
	c, err := chOpen(ctx, chx.Config{URL: cfg.CH.URL, Role: cfg.CH.Role, Tag: cfg.AppName})
	if err != nil {
		return nil, err
	}
	return newCHAdapter(c), nil
}
