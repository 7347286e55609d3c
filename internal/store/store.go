// Package store is the read-only loader for the SQLite dataset file. It
// materializes named tables into frame.Frame values; no statement issued
// here mutates the database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/energy-modelling-hub/water-value-database/internal/frame"
)

// Names of the three dataset tables.
const (
	TableScreening      = "screening"
	TableClassification = "classification"
	TableWaterValues    = "water_values"
)

// DB is a read-only handle on the dataset store.
type DB struct {
	db   *sql.DB
	path string
}

// Open validates that the database file exists and opens it read-only.
// A missing file is the one abort condition of the pipeline, so the error
// names the path and the remedy.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf(
			"sqlite database not found: %s (re-download it from the repository or Zenodo archive)", path)
	}
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return &DB{db: db, path: path}, nil
}

// Path returns the database file path.
func (d *DB) Path() string { return d.path }

// Close releases the underlying handle.
func (d *DB) Close() error { return d.db.Close() }

// Frame materializes one named table into memory. Every cell is scanned as
// a nullable string; numeric columns are parsed on demand by the consumers.
func (d *DB) Frame(ctx context.Context, table string) (*frame.Frame, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT * FROM "`+table+`"`)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}
	f := frame.New(table, cols)
	scan := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range scan {
		ptrs[i] = &scan[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s row %d: %w", table, f.Len()+1, err)
		}
		row := make([]frame.Value, len(cols))
		for i, ns := range scan {
			if ns.Valid {
				row[i] = frame.String(ns.String)
			} else {
				row[i] = frame.Null()
			}
		}
		if err := f.AppendRow(row); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", table, err)
	}
	return f, nil
}
