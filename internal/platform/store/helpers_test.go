package store

import (
	"context"
	"errors"
	"testing"

	perr "taller/internal/platform/errors"
)

// fakeRows yields a fixed slice of int rows
type fakeRows struct {
	vals   []int
	i      int
	err    error
	closed bool
}

func (r *fakeRows) Next() bool {
	if r.i >= len(r.vals) {
		return false
	}
	r.i++
	return true
}
func (r *fakeRows) Scan(dst ...any) error {
	*(dst[0].(*int)) = r.vals[r.i-1]
	return nil
}
func (r *fakeRows) Err() error        { return r.err }
func (r *fakeRows) Close()            { r.closed = true }
func (r *fakeRows) Columns() []string { return []string{"v"} }

type fakeRow struct {
	v   int
	err error
}

func (r fakeRow) Scan(dst ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dst[0].(*int)) = r.v
	return nil
}

type fakeTag int64

func (t fakeTag) String() string      { return "" }
func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeQ struct {
	rows    *fakeRows
	row     fakeRow
	tag     fakeTag
	err     error
	lastSQL string
}

func (f *fakeQ) Exec(_ context.Context, sql string, _ ...any) (CommandTag, error) {
	f.lastSQL = sql
	return f.tag, f.err
}
func (f *fakeQ) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	f.lastSQL = sql
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}
func (f *fakeQ) QueryRow(_ context.Context, sql string, _ ...any) Row {
	f.lastSQL = sql
	return f.row
}

func scanInt(r Row) (int, error) {
	var v int
	err := r.Scan(&v)
	return v, err
}

func TestExecOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []struct {
		name    string
		q       *fakeQ
		wantErr bool
	}{
		{"one row", &fakeQ{tag: 1}, false},
		{"zero rows", &fakeQ{tag: 0}, true},
		{"two rows", &fakeQ{tag: 2}, true},
		{"exec error", &fakeQ{err: errors.New("boom")}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ExecOne(ctx, tc.q, "UPDATE x SET y = 1")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
		})
	}
}

func TestScalar(t *testing.T) {
	t.Parallel()
	v, err := Scalar[int](context.Background(), &fakeQ{row: fakeRow{v: 42}}, "SELECT 42")
	if err != nil || v != 42 {
		t.Fatalf("got %d, %v", v, err)
	}
	_, err = Scalar[int](context.Background(), &fakeQ{row: fakeRow{err: perr.ErrNotFound}}, "SELECT")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestOne(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := One(ctx, &fakeQ{rows: &fakeRows{vals: []int{7}}}, scanInt, "SELECT")
	if err != nil || got != 7 {
		t.Fatalf("got %d, %v", got, err)
	}

	_, err = One(ctx, &fakeQ{rows: &fakeRows{}}, scanInt, "SELECT")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("empty: want not found, got %v", err)
	}

	rows := &fakeRows{vals: []int{1, 2}}
	if _, err = One(ctx, &fakeQ{rows: rows}, scanInt, "SELECT"); err == nil {
		t.Fatalf("two rows: want error")
	}
	if !rows.closed {
		t.Fatalf("rows not closed")
	}
}

func TestMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got, err := Many(ctx, &fakeQ{rows: &fakeRows{vals: []int{3, 1, 2}}}, scanInt, "SELECT")
	if err != nil || len(got) != 3 || got[0] != 3 || got[2] != 2 {
		t.Fatalf("got %v, %v", got, err)
	}

	empty, err := Many(ctx, &fakeQ{rows: &fakeRows{}}, scanInt, "SELECT")
	if err != nil || empty == nil || len(empty) != 0 {
		t.Fatalf("empty: got %#v, %v", empty, err)
	}

	iterErr := errors.New("iter")
	if _, err = Many(ctx, &fakeQ{rows: &fakeRows{vals: []int{1}, err: iterErr}}, scanInt, "SELECT"); !errors.Is(err, iterErr) {
		t.Fatalf("want iter error, got %v", err)
	}
}
