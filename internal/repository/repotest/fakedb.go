// Package repotest provides an in-memory stand-in for the pgx connection pool.
//
// FakeDB records every statement and argument list it receives and answers
// with canned rows, affected-row counts or errors, so repository and service
// code can be exercised without a running PostgreSQL.
package repotest

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/visitor-log/internal/model/visitor"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call is one statement issued against the FakeDB.
type Call struct {
	SQL  string
	Args []any
}

// FakeDB implements repository.DBTX.
type FakeDB struct {
	// RowsAffected is reported by Exec.
	RowsAffected int64

	// Rows is returned by Query and, first row only, by QueryRow.
	Rows [][]any

	// Err is returned by every call when set.
	Err error

	mu    sync.Mutex
	calls []Call
}

// Calls returns a copy of the recorded statements.
func (f *FakeDB) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// LastCall returns the most recent statement, or a zero Call.
func (f *FakeDB) LastCall() Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return Call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *FakeDB) record(sql string, args []any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{SQL: sql, Args: args})
}

func (f *FakeDB) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.record(sql, arguments)
	if f.Err != nil {
		return pgconn.CommandTag{}, f.Err
	}

	verb := strings.ToUpper(strings.Fields(sql)[0])
	if verb == "CREATE" {
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	}
	if verb == "INSERT" {
		return pgconn.NewCommandTag(fmt.Sprintf("INSERT 0 %d", f.RowsAffected)), nil
	}
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", verb, f.RowsAffected)), nil
}

func (f *FakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.record(sql, args)
	if f.Err != nil {
		return nil, f.Err
	}
	return &Rows{data: f.Rows, pos: -1}, nil
}

func (f *FakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.record(sql, args)
	if f.Err != nil {
		return &Row{err: f.Err}
	}
	if len(f.Rows) == 0 {
		return &Row{err: pgx.ErrNoRows}
	}
	return &Row{values: f.Rows[0]}
}

// VisitorRow lays out a visitor in the select-list order of the query catalog.
func VisitorRow(v visitor.Visitor) []any {
	return []any{v.ID, v.Name, v.Age, v.Date, v.Time, v.Assistant, v.Comments}
}

// Row implements pgx.Row.
type Row struct {
	values []any
	err    error
}

func (r *Row) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

// Rows implements pgx.Rows over a fixed result set.
type Rows struct {
	data   [][]any
	pos    int
	closed bool
	err    error
}

func (r *Rows) Close() { r.closed = true }

func (r *Rows) Err() error { return r.err }

func (r *Rows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.data)))
}

func (r *Rows) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (r *Rows) Next() bool {
	if r.closed {
		return false
	}
	r.pos++
	if r.pos >= len(r.data) {
		r.closed = true
		return false
	}
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.pos < 0 || r.pos >= len(r.data) {
		return fmt.Errorf("repotest: scan called without a current row")
	}
	if err := scanInto(r.data[r.pos], dest); err != nil {
		r.err = err
		return err
	}
	return nil
}

func (r *Rows) Values() ([]any, error) {
	if r.pos < 0 || r.pos >= len(r.data) {
		return nil, fmt.Errorf("repotest: no current row")
	}
	return r.data[r.pos], nil
}

func (r *Rows) RawValues() [][]byte { return nil }

func (r *Rows) Conn() *pgx.Conn { return nil }

func scanInto(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("repotest: %d values for %d destinations", len(values), len(dest))
	}

	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("repotest: destination %d is not a non-nil pointer", i)
		}
		target := dv.Elem()

		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}

		sv := reflect.ValueOf(values[i])
		switch {
		case sv.Type().AssignableTo(target.Type()):
			target.Set(sv)
		case isNumeric(sv.Kind()) && isNumeric(target.Kind()):
			target.Set(sv.Convert(target.Type()))
		default:
			return fmt.Errorf("repotest: cannot scan %T into %s", values[i], target.Type())
		}
	}
	return nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
