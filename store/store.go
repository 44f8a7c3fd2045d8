// Package store is the data-access collaborator: a SQLite-backed repository
// of taxi trips and zone metadata. Every read is bounded (the custom-sort,
// top-expensive, and borough endpoints cap at 1000/5000/10000 rows), and
// rows come back as engine.Record sequences so the sequence toolkit can
// operate on them without knowing about SQL.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/bendoujanna/Enterprise-web-dev-summative-TKV/engine"
)

// Row caps per endpoint. The engine's sort is quadratic; these bounds are
// the documented precondition that keeps it tractable.
const (
	MaxSortRows  = 1000
	MaxTopRows   = 5000
	MaxGroupRows = 10000
)

// Store wraps the SQLite handle.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open opens the SQLite database at path and verifies connectivity with a
// short exponential-backoff retry — SQLite can briefly hold a lock while a
// concurrent loader run finishes.
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening sqlite database %s", path)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	err = retry.Do(
		func() error { return db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Attempts(5),
		retry.Delay(100*time.Millisecond),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "pinging sqlite database %s", path)
	}

	log.Info("database opened", zap.String("path", path))
	return &Store{db: db, log: log}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping reports whether the database is reachable (health endpoint).
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// EnsureSchema creates the trips and zones tables if they do not exist.
// Used by the loader; the server assumes a populated database.
func (s *Store) EnsureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS zones (
	LocationID INTEGER PRIMARY KEY,
	Borough    TEXT NOT NULL,
	Zone       TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS trips (
	trip_id               INTEGER PRIMARY KEY AUTOINCREMENT,
	tpep_pickup_datetime  TEXT NOT NULL,
	tpep_dropoff_datetime TEXT NOT NULL,
	PULocationID          INTEGER NOT NULL,
	DOLocationID          INTEGER NOT NULL,
	trip_distance         REAL NOT NULL,
	total_amount          REAL NOT NULL,
	average_speed_mph     REAL NOT NULL,
	time_of_day           TEXT NOT NULL
);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return errors.Wrap(err, "creating schema")
	}
	return nil
}

// ============================================================================
// ROW → RECORD SCANNING
// ============================================================================

// scanRecords converts a result set into engine records. Column names become
// field names (use SQL aliases to rename). Values are normalized to the
// engine's value set: nil, float64, or string.
func scanRecords(rows *sql.Rows) ([]engine.Record, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(err, "reading result columns")
	}

	var records []engine.Record
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Wrap(err, "scanning row")
		}

		rec := make(engine.Record, len(cols))
		for i, col := range cols {
			rec[col] = normalizeValue(vals[i])
		}
		records = append(records, rec)
	}
	return records, errors.Wrap(rows.Err(), "iterating rows")
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case float64:
		return x
	case int64:
		return float64(x)
	case string:
		return x
	case []byte:
		return string(x)
	case bool:
		if x {
			return 1.0
		}
		return 0.0
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}
