package store

import (
	"context"
	"errors"
	"testing"

	perr "greenpath/internal/platform/errors"
)

// fakeRows walks a fixed set of rows, one column each
type fakeRows struct {
	vals []any
	pos  int
	err  error
}

func (f *fakeRows) Next() bool { return f.pos < len(f.vals) }
func (f *fakeRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("fakeRows supports one column")
	}
	p, ok := dest[0].(*string)
	if !ok {
		return errors.New("fakeRows supports *string")
	}
	*p = f.vals[f.pos].(string)
	f.pos++
	return nil
}
func (f *fakeRows) Err() error        { return f.err }
func (f *fakeRows) Close()            {}
func (f *fakeRows) Columns() []string { return []string{"v"} }

type fakeQuerier struct {
	rows *fakeRows
	err  error
}

func (f *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, f.err
}

func (f *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return &rowFromRows{rows: f.rows}
}

func scanString(r Row) (string, error) {
	var s string
	err := r.Scan(&s)
	return s, err
}

func TestOne_SingleRow(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{vals: []any{"a"}}}
	got, err := One(context.Background(), q, scanString, "SELECT v")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != "a" {
		t.Fatalf("got %q", got)
	}
}

func TestOne_NoRowsIsNotFound(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{}}
	_, err := One(context.Background(), q, scanString, "SELECT v")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOne_ExtraRowsIsError(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{vals: []any{"a", "b"}}}
	_, err := One(context.Background(), q, scanString, "SELECT v")
	if err == nil {
		t.Fatal("expected error for extra rows")
	}
}

func TestMany_AllRows(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{vals: []any{"a", "b", "c"}}}
	got, err := Many(context.Background(), q, scanString, "SELECT v")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("got %v", got)
	}
}

func TestMany_QueryErrorPropagates(t *testing.T) {
	q := &fakeQuerier{err: errors.New("boom")}
	if _, err := Many(context.Background(), q, scanString, "SELECT v"); err == nil {
		t.Fatal("expected error")
	}
}

func TestScalar(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{vals: []any{"x"}}}
	got, err := Scalar[string](context.Background(), q, "SELECT v")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if got != "x" {
		t.Fatalf("got %q", got)
	}
}
