package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

type stubRunner struct {
	fakeQ
	pingErr error
	closed  bool
}

func (s *stubRunner) Tx(_ context.Context, fn func(q RowQuerier) error) error { return fn(s) }
func (s *stubRunner) Ping(context.Context) error                               { return s.pingErr }
func (s *stubRunner) Close() error                                             { s.closed = true; return nil }

func TestSQL_PrefersPostgres(t *testing.T) {
	t.Parallel()

	pg, lite := &stubRunner{}, &stubRunner{}
	cases := []struct {
		name string
		s    *Store
		want Dialect
	}{
		{"nil store", nil, ""},
		{"none", &Store{}, ""},
		{"sqlite only", &Store{Lite: lite}, DialectSQLite},
		{"both", &Store{PG: pg, Lite: lite}, DialectPG},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, d := tc.s.SQL()
			if d != tc.want {
				t.Fatalf("dialect=%q want %q", d, tc.want)
			}
		})
	}
}

func TestOpen_NothingEnabled(t *testing.T) {
	t.Parallel()
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.Lite != nil || s.CH != nil {
		t.Fatalf("expected no backends, got %+v", s)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestOpen_OptionError(t *testing.T) {
	t.Parallel()
	want := errors.New("bad option")
	_, err := Open(context.Background(), Config{}, func(*Store) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("want option error, got %v", err)
	}
}

func TestOpen_WithGuardSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	cfg := Config{SQLite: SQLiteConfig{Enabled: true, Path: filepath.Join(t.TempDir(), "taller.db"), BusyTimeout: time.Second}}

	s, err := Open(ctx, cfg, WithGuard())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = s.Close(ctx) }()
	if _, d := s.SQL(); d != DialectSQLite {
		t.Fatalf("dialect=%q", d)
	}
}

func TestGuard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	if err := (&Store{PG: &stubRunner{}}).Guard(ctx); err != nil {
		t.Fatalf("healthy guard: %v", err)
	}
	down := errors.New("down")
	err := (&Store{PG: &stubRunner{}, Lite: &stubRunner{pingErr: down}}).Guard(ctx)
	if !errors.Is(err, down) {
		t.Fatalf("want down, got %v", err)
	}
	if (*Store)(nil).Guard(ctx) == nil {
		t.Fatalf("nil store must fail guard")
	}
}

func TestClose_ClosesSeams(t *testing.T) {
	t.Parallel()
	pg, lite := &stubRunner{}, &stubRunner{}
	if err := (&Store{PG: pg, Lite: lite}).Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !pg.closed || !lite.closed {
		t.Fatalf("pg closed=%v lite closed=%v", pg.closed, lite.closed)
	}
}

func TestRetry(t *testing.T) {
	// mutates the package sleep seam
	orig := sleep
	var slept []time.Duration
	sleep = func(d time.Duration) { slept = append(slept, d) }
	t.Cleanup(func() { sleep = orig })

	calls := 0
	err := retry(context.Background(), 5, 100*time.Millisecond, 300*time.Millisecond, func() error {
		calls++
		if calls < 4 {
			return errors.New("not yet")
		}
		return nil
	})
	if err != nil || calls != 4 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("backoff[%d]=%v want %v", i, slept[i], want[i])
		}
	}

	slept = nil
	last := errors.New("still down")
	if err := retry(context.Background(), 2, time.Millisecond, time.Millisecond, func() error { return last }); !errors.Is(err, last) {
		t.Fatalf("want last error, got %v", err)
	}
}
