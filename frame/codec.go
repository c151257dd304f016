package frame

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromCSV reads a frame from CSV. The first record is the header and fixes
// the column order; every cell is kept as a string. Index keys are the row
// ordinals.
func FromCSV(r io.Reader) (*DataFrame, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("frame: read csv: %w", err)
	}
	if len(records) == 0 {
		return newOrdered(nil, nil, nil), nil
	}
	cols := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(cols))
		for i, c := range cols {
			row[c] = rec[i]
		}
		rows = append(rows, row)
	}
	return newOrdered(cols, nil, rows), nil
}

// ToCSV writes the frame as CSV: a header record with the column names,
// then one record per row. Cells are formatted with fmt; missing cells
// are empty. The index keys are not written.
func (df *DataFrame) ToCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(df.cols); err != nil {
		return fmt.Errorf("frame: write csv: %w", err)
	}
	rec := make([]string, len(df.cols))
	for _, r := range df.rows {
		for i, c := range df.cols {
			v, ok := r[c]
			if !ok {
				rec[i] = ""
				continue
			}
			rec[i] = fmt.Sprint(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("frame: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("frame: write csv: %w", err)
	}
	return nil
}

// FromJSON reads a frame from a JSON array of objects. Column order is the
// sorted union of all object keys. Index keys are the row ordinals.
func FromJSON(r io.Reader) (*DataFrame, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("frame: read json: %w", err)
	}
	return FromRows(nil, rows), nil
}

// ToJSON writes the frame as an indented JSON array of objects. The index
// keys are not written.
func (df *DataFrame) ToJSON(w io.Writer) error {
	rows := df.rows
	if rows == nil {
		rows = []Row{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("frame: write json: %w", err)
	}
	return nil
}

// FromYAML reads a frame from a YAML sequence of mappings. Column order is
// the sorted union of all mapping keys. Index keys are the row ordinals.
func FromYAML(r io.Reader) (*DataFrame, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("frame: read yaml: %w", err)
	}
	var rows []Row
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("frame: read yaml: %w", err)
	}
	return FromRows(nil, rows), nil
}

// ToYAML writes the frame as a YAML sequence of mappings. The index keys
// are not written.
func (df *DataFrame) ToYAML(w io.Writer) error {
	rows := df.rows
	if rows == nil {
		rows = []Row{}
	}
	data, err := yaml.Marshal(rows)
	if err != nil {
		return fmt.Errorf("frame: write yaml: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("frame: write yaml: %w", err)
	}
	return nil
}
