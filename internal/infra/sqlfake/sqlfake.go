// Package sqlfake is a scripted infra.SQLExecutor for tests. Statements are
// matched by their exact text, so tests script the sqlinline constants.
package sqlfake

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call records one statement sent to the executor.
type Call struct {
	Query string
	Args  []any
}

// Result scripts the outcome of a statement. Rows feed Query and QueryRow;
// QueryRow uses the first row and reports pgx.ErrNoRows when there is none.
type Result struct {
	Rows [][]any
	Tag  pgconn.CommandTag
	Err  error
}

type Executor struct {
	mu      sync.Mutex
	results map[string]Result
	calls   []Call
}

func New() *Executor {
	return &Executor{results: map[string]Result{}}
}

// On scripts the result for a statement.
func (e *Executor) On(query string, res Result) *Executor {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results[query] = res
	return e
}

// Calls returns every recorded call for query, in order.
func (e *Executor) Calls(query string) []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	var out []Call
	for _, c := range e.calls {
		if c.Query == query {
			out = append(out, c)
		}
	}
	return out
}

// CallCount returns the number of statements executed.
func (e *Executor) CallCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *Executor) lookup(query string, args []any) (Result, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, Call{Query: query, Args: args})
	res, ok := e.results[query]
	return res, ok
}

func (e *Executor) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	res, ok := e.lookup(query, args)
	if !ok {
		return pgconn.CommandTag{}, fmt.Errorf("sqlfake: unexpected exec: %s", query)
	}
	return res.Tag, res.Err
}

func (e *Executor) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	res, ok := e.lookup(query, args)
	if !ok {
		return NewRow(nil, fmt.Errorf("sqlfake: unexpected query: %s", query))
	}
	if res.Err != nil {
		return NewRow(nil, res.Err)
	}
	if len(res.Rows) == 0 {
		return NewRow(nil, pgx.ErrNoRows)
	}
	return NewRow(res.Rows[0], nil)
}

func (e *Executor) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	res, ok := e.lookup(query, args)
	if !ok {
		return nil, fmt.Errorf("sqlfake: unexpected query: %s", query)
	}
	if res.Err != nil {
		return nil, res.Err
	}
	return NewRows(res.Rows), nil
}

// Row is a single scripted row.
type Row struct {
	values []any
	err    error
}

func NewRow(values []any, err error) Row {
	return Row{values: values, err: err}
}

func (r Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanValues(r.values, dest)
}

// Rows iterates scripted rows.
type Rows struct {
	rowsBase
	rows [][]any
	idx  int
	err  error
}

func NewRows(rows [][]any) *Rows {
	return &Rows{rows: rows}
}

func (r *Rows) Next() bool {
	if r.idx >= len(r.rows) {
		return false
	}
	r.idx++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.rows) {
		return pgx.ErrNoRows
	}
	if err := scanValues(r.rows[r.idx-1], dest); err != nil {
		r.err = err
		return err
	}
	return nil
}

func (r *Rows) Err() error { return r.err }

func (r *Rows) Close() {}

type rowsBase struct{}

func (rowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (rowsBase) Conn() *pgx.Conn { return nil }

func (rowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (rowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (rowsBase) RawValues() [][]byte { return nil }

func scanValues(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("sqlfake: row has %d values, scan wants %d", len(values), len(dest))
	}
	for i := range dest {
		if err := assign(dest[i], values[i]); err != nil {
			return fmt.Errorf("sqlfake: column %d: %w", i, err)
		}
	}
	return nil
}

// assign copies src into the pointer dest, honouring sql.Scanner and filling
// pointer-to-pointer destinations for nullable columns.
func assign(dest, src any) error {
	if scanner, ok := dest.(sql.Scanner); ok {
		return scanner.Scan(src)
	}
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a pointer", dest)
	}
	target := dv.Elem()
	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	sv := reflect.ValueOf(src)
	switch {
	case sv.Type().AssignableTo(target.Type()):
		target.Set(sv)
	case target.Kind() == reflect.Pointer && sv.Type().AssignableTo(target.Type().Elem()):
		ptr := reflect.New(target.Type().Elem())
		ptr.Elem().Set(sv)
		target.Set(ptr)
	case target.Kind() == reflect.Pointer && sv.Type().ConvertibleTo(target.Type().Elem()):
		ptr := reflect.New(target.Type().Elem())
		ptr.Elem().Set(sv.Convert(target.Type().Elem()))
		target.Set(ptr)
	case sv.Type().ConvertibleTo(target.Type()):
		target.Set(sv.Convert(target.Type()))
	default:
		return fmt.Errorf("cannot assign %T to %s", src, target.Type())
	}
	return nil
}

var (
	_ pgx.Row  = Row{}
	_ pgx.Rows = (*Rows)(nil)
)
