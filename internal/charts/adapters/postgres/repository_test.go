package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"migration-stats-service/internal/charts/core/ports"

	"github.com/lib/pq"
)

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows []fakeRow
	i    int
	err  error
}

type fakeRow struct {
	values []any
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	if f.i >= len(f.rows) {
		return errors.New("no more rows")
	}
	row := f.rows[f.i]
	if len(dest) != len(row.values) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			v, ok := row.values[i].(string)
			if !ok {
				return errors.New("type assertion to string failed")
			}
			*d = v
		case *sql.NullInt64:
			if row.values[i] == nil {
				*d = sql.NullInt64{}
				continue
			}
			v, ok := row.values[i].(int64)
			if !ok {
				return errors.New("type assertion to int64 failed")
			}
			*d = sql.NullInt64{Int64: v, Valid: true}
		case *pq.Int64Array:
			if row.values[i] == nil {
				*d = nil
				continue
			}
			v, ok := row.values[i].([]int64)
			if !ok {
				return errors.New("type assertion to []int64 failed")
			}
			*d = pq.Int64Array(v)
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error {
	return f.err
}

func (f *fakeRowScanner) Close() error {
	return nil
}

// fakeDB implements DB interface.
type fakeDB struct {
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	lastQuery string
	lastArgs  []any
	called    bool
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.called = true
	f.lastQuery = query
	f.lastArgs = args
	if f.QueryFn != nil {
		return f.QueryFn(ctx, query, args...)
	}
	return nil, nil
}

// ------------------------------------------------------------
// FULL FETCH
// ------------------------------------------------------------

func TestMigrationSource_FetchAll(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "FROM migrations") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 0 {
				t.Fatalf("expected no args, got %v", args)
			}
			return &fakeRowScanner{
				rows: []fakeRow{
					{values: []any{"acme", int64(1000), int64(42), []int64{100, 200}}},
					{values: []any{"globex", nil, nil, nil}},
				},
			}, nil
		},
	}

	src := NewMigrationSource(db)

	records, err := src.FetchMigrations(context.Background(), ports.MigrationSourceFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	acme := records[0]
	if acme.CustomerName != "acme" {
		t.Fatalf("expected acme first, got %s", acme.CustomerName)
	}
	if acme.LastIngestionAtMs == nil || *acme.LastIngestionAtMs != 1000 {
		t.Fatalf("unexpected last ingestion: %v", acme.LastIngestionAtMs)
	}
	if acme.TotalIngestions == nil || *acme.TotalIngestions != 42 {
		t.Fatalf("unexpected total: %v", acme.TotalIngestions)
	}
	if len(acme.IngestionStartsMs) != 2 {
		t.Fatalf("expected 2 start timestamps, got %d", len(acme.IngestionStartsMs))
	}

	// NULL columns become absent, not zero.
	globex := records[1]
	if globex.LastIngestionAtMs != nil || globex.TotalIngestions != nil {
		t.Fatalf("expected nil optional fields for globex")
	}
	if len(globex.IngestionStartsMs) != 0 {
		t.Fatalf("expected no start timestamps, got %v", globex.IngestionStartsMs)
	}
}

// ------------------------------------------------------------
// CUSTOMER FILTER
// ------------------------------------------------------------

func TestMigrationSource_CustomerFilter(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			if !strings.Contains(query, "WHERE customer_name = $1") {
				t.Fatalf("expected customer filter in query: %s", query)
			}
			return &fakeRowScanner{}, nil
		},
	}

	src := NewMigrationSource(db)

	customer := "acme"
	records, err := src.FetchMigrations(context.Background(), ports.MigrationSourceFilter{
		Customer: &customer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
	if len(db.lastArgs) != 1 || db.lastArgs[0] != "acme" {
		t.Fatalf("expected args [acme], got %v", db.lastArgs)
	}
}

// ------------------------------------------------------------
// ERRORS
// ------------------------------------------------------------

func TestMigrationSource_QueryError(t *testing.T) {
	wantErr := errors.New("connection refused")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return nil, wantErr
		},
	}

	src := NewMigrationSource(db)

	_, err := src.FetchMigrations(context.Background(), ports.MigrationSourceFilter{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected query error to propagate, got %v", err)
	}
}

func TestMigrationSource_RowsErr(t *testing.T) {
	wantErr := errors.New("broken cursor")
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{err: wantErr}, nil
		},
	}

	src := NewMigrationSource(db)

	_, err := src.FetchMigrations(context.Background(), ports.MigrationSourceFilter{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected rows error to propagate, got %v", err)
	}
}
