package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDBErrorCode_Postgres(t *testing.T) {
	cases := []struct {
		sqlstate string
		want     ErrorCode
	}{
		{"23505", ErrorCodeDuplicateKey},
		{"23503", ErrorCodeInvalidArgument},
		{"22P02", ErrorCodeInvalidArgument},
		{"23502", ErrorCodeValidation},
		{"23514", ErrorCodeValidation},
		{"57P03", ErrorCodeUnavailable},
		{"40001", ErrorCodeDB},
		{"XX000", ErrorCodeDB},
	}
	for _, c := range cases {
		err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: c.sqlstate})
		got, ok := DBErrorCode(err)
		if !ok || got != c.want {
			t.Fatalf("DBErrorCode(%s) = %v, %v; want %v", c.sqlstate, got, ok, c.want)
		}
	}
}

func TestDBErrorCode_ClassifiedAndForeign(t *testing.T) {
	if code, ok := DBErrorCode(New(ErrorCodeDuplicateKey, "dup")); !ok || code != ErrorCodeDuplicateKey {
		t.Fatalf("classified error = %v, %v", code, ok)
	}
	if _, ok := DBErrorCode(stderrs.New("plain")); ok {
		t.Fatal("plain error should not classify")
	}
}

func TestFromDB(t *testing.T) {
	if FromDB(nil, "x") != nil || FromDBf(nil, "x %d", 1) != nil {
		t.Fatal("nil in, nil out")
	}
	dup := FromDBf(&pgconn.PgError{Code: "23505"}, "insert category %q", "Filtros")
	if !IsDuplicateKey(dup) || CodeOf(dup) != ErrorCodeDuplicateKey {
		t.Fatalf("dup = %v", dup)
	}
	if CodeOf(FromDB(stderrs.New("boom"), "query")) != ErrorCodeDB {
		t.Fatal("unknown storage errors should map to DB")
	}
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{fmt.Errorf("q: %w", context.DeadlineExceeded), false},
		{&pgconn.PgError{Code: "40001"}, true},
		{&pgconn.PgError{Code: "40P01"}, true},
		{&pgconn.PgError{Code: "23505"}, false},
		{stderrs.New("commit unexpectedly resulted in rollback"), true},
		{stderrs.New("syntax error"), false},
	}
	for _, c := range cases {
		if got := IsRetryable(c.err); got != c.want {
			t.Fatalf("IsRetryable(%v) = %v, want %v", c.err, got, c.want)
		}
	}
}
