// Package frame holds the in-memory tabular structure the report
// generators aggregate over, together with the small set of grouping and
// counting operations they need. All operations are read-only and
// deterministic: category orderings break count ties lexicographically.
package frame

import (
	"fmt"
	"strconv"
)

// Value is a nullable cell.
type Value struct {
	Str   string
	Valid bool
}

// String returns a non-null cell value.
func String(s string) Value { return Value{Str: s, Valid: true} }

// Null returns a null cell value.
func Null() Value { return Value{} }

// Frame is a named, column-oriented table of nullable string cells.
type Frame struct {
	name  string
	cols  []string
	index map[string]int
	cells [][]Value // cells[col][row]
	rows  int
}

// New returns an empty Frame with the given column names.
func New(name string, cols []string) *Frame {
	f := &Frame{
		name:  name,
		cols:  append([]string(nil), cols...),
		index: make(map[string]int, len(cols)),
		cells: make([][]Value, len(cols)),
	}
	for i, c := range cols {
		f.index[c] = i
	}
	return f
}

// AppendRow appends one row; the row length must match the column count.
func (f *Frame) AppendRow(row []Value) error {
	if len(row) != len(f.cols) {
		return fmt.Errorf("frame %s: row has %d cells, want %d", f.name, len(row), len(f.cols))
	}
	for i, v := range row {
		f.cells[i] = append(f.cells[i], v)
	}
	f.rows++
	return nil
}

// Name returns the frame name (source table name).
func (f *Frame) Name() string { return f.name }

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Width returns the number of columns.
func (f *Frame) Width() int { return len(f.cols) }

// Columns returns the column names in storage order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.cols...)
}

// HasColumn reports whether the frame has the named column.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns all cells of the named column.
func (f *Frame) Column(name string) ([]Value, error) {
	i, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("frame %s: no column %q", f.name, name)
	}
	return f.cells[i], nil
}

// Strings returns the non-null values of the named column, in row order.
func (f *Frame) Strings(name string) ([]string, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(col))
	for _, v := range col {
		if v.Valid {
			out = append(out, v.Str)
		}
	}
	return out, nil
}

// Floats returns the non-null numeric values of the named column.
// Non-numeric cells are skipped.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if !v.Valid {
			continue
		}
		x, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			continue
		}
		out = append(out, x)
	}
	return out, nil
}

// Completeness returns the percentage of non-null cells in the named
// column. An empty frame yields 0.
func (f *Frame) Completeness(name string) (float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return 0, err
	}
	if len(col) == 0 {
		return 0, nil
	}
	n := 0
	for _, v := range col {
		if v.Valid {
			n++
		}
	}
	return float64(n) / float64(len(col)) * 100, nil
}
