// Package sqlite opens the legacy SQLite database and classifies its driver errors
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"time"

	perr "taller/internal/platform/errors"

	"github.com/mattn/go-sqlite3"
)

// Config configures the sqlite file
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// DSN renders the go-sqlite3 connection string for cfg
func DSN(cfg Config) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5 * time.Second
	}
	q := url.Values{}
	q.Set("_busy_timeout", fmt.Sprint(busy.Milliseconds()))
	q.Set("_foreign_keys", "on")
	q.Set("_journal_mode", "WAL")
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Open opens and pings the database; a single writer connection keeps sqlite locks simple
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Path == "" {
		return nil, perr.InvalidArgf("sqlite: empty path")
	}
	db, err := sql.Open("sqlite3", DSN(cfg))
	if err != nil {
		return nil, MapError(err, "sqlite open")
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, MapError(err, "sqlite ping")
	}
	return db, nil
}

// MapError classifies a database/sql or go-sqlite3 error into a perr code
func MapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return perr.Wrap(err, perr.ErrorCodeNotFound, msg)
	}
	if _, ok := perr.As(err); ok {
		return err
	}
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return perr.Wrap(err, perr.ErrorCodeDB, msg)
	}
	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return perr.Wrap(err, perr.ErrorCodeDuplicateKey, msg)
	case sqlite3.ErrConstraintForeignKey:
		return perr.Wrap(err, perr.ErrorCodeInvalidArgument, msg)
	case sqlite3.ErrConstraintNotNull, sqlite3.ErrConstraintCheck:
		return perr.Wrap(err, perr.ErrorCodeValidation, msg)
	}
	switch se.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrReadonly, sqlite3.ErrCantOpen:
		return perr.Wrap(err, perr.ErrorCodeUnavailable, msg)
	}
	return perr.Wrap(err, perr.ErrorCodeDB, msg)
}
