// Package frame provides the tabular structure a series inflates into.
//
// A DataFrame is a concrete, fully materialized table: an ordered set of
// named columns, a row per inflated value, and an index key per row. It is
// deliberately not lazy; laziness lives in the series engine, and a frame
// is what comes out the other end. Frames interchange with CSV, JSON and
// YAML and render as ASCII tables.
package frame

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
)

// Row is a single tabular row, keyed by column name.
type Row map[string]any

// DataFrame is an ordered collection of rows with named columns and an
// index key per row. Immutable once constructed.
type DataFrame struct {
	cols []string
	keys []any
	rows []Row
}

// FromRows creates a DataFrame from one index key per row and the rows
// themselves. Column order is the sorted union of all row keys, so frames
// built from map-shaped rows are deterministic. keys may be nil, in which
// case row ordinals 0, 1, 2, ... are used.
func FromRows(keys []any, rows []Row) *DataFrame {
	if keys == nil {
		keys = make([]any, len(rows))
		for i := range rows {
			keys[i] = i
		}
	}
	seen := make(map[string]struct{})
	var cols []string
	for _, r := range rows {
		for c := range r {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				cols = append(cols, c)
			}
		}
	}
	sort.Strings(cols)
	return &DataFrame{cols: cols, keys: keys, rows: rows}
}

// newOrdered creates a DataFrame with an explicit column order, for
// ingestion paths (CSV) where the source declares one.
func newOrdered(cols []string, keys []any, rows []Row) *DataFrame {
	if keys == nil {
		keys = make([]any, len(rows))
		for i := range rows {
			keys[i] = i
		}
	}
	return &DataFrame{cols: cols, keys: keys, rows: rows}
}

// Columns returns the column names in order.
func (df *DataFrame) Columns() []string {
	out := make([]string, len(df.cols))
	copy(out, df.cols)
	return out
}

// Len returns the number of rows.
func (df *DataFrame) Len() int {
	return len(df.rows)
}

// Key returns the index key of row i.
func (df *DataFrame) Key(i int) any {
	return df.keys[i]
}

// Keys returns the index keys in row order.
func (df *DataFrame) Keys() []any {
	out := make([]any, len(df.keys))
	copy(out, df.keys)
	return out
}

// Row returns row i. The returned map is shared; callers must not mutate it.
func (df *DataFrame) Row(i int) Row {
	return df.rows[i]
}

// Column returns the named column as a slice with one entry per row.
// Rows missing the column contribute nil.
func (df *DataFrame) Column(name string) []any {
	out := make([]any, len(df.rows))
	for i, r := range df.rows {
		out[i] = r[name]
	}
	return out
}

// String renders the frame as an ASCII table with the index keys in the
// leading column.
func (df *DataFrame) String() string {
	var buf bytes.Buffer
	t := tablewriter.NewWriter(&buf)
	t.SetHeader(append([]string{"index"}, df.cols...))
	for i, r := range df.rows {
		rec := make([]string, 0, len(df.cols)+1)
		rec = append(rec, fmt.Sprint(df.keys[i]))
		for _, c := range df.cols {
			v, ok := r[c]
			if !ok {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, fmt.Sprint(v))
		}
		t.Append(rec)
	}
	t.Render()
	return buf.String()
}
