// Package dataset loads tabular data into go-gg tables and reshapes it.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// ReadCSV reads a CSV document with a header row. A column whose non-empty
// cells all parse as numbers becomes []float64, with empty cells as NaN;
// any other column becomes []string.
func ReadCSV(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("reading csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if name == "" {
			return nil, errors.New("reading csv: empty column name")
		}
		if seen[name] {
			return nil, fmt.Errorf("reading csv: duplicate column %q", name)
		}
		seen[name] = true
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	b := table.NewBuilder(nil)
	cells := make([]string, len(records))
	for c, name := range header {
		for i, rec := range records {
			cells[i] = rec[c]
		}
		if floats, ok := parseFloats(cells); ok {
			b.Add(name, floats)
		} else {
			strs := make([]string, len(cells))
			copy(strs, cells)
			b.Add(name, strs)
		}
	}
	return b.Done(), nil
}

func parseFloats(cells []string) ([]float64, bool) {
	out := make([]float64, len(cells))
	numeric := false
	for i, s := range cells {
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, false
		}
		out[i] = f
		numeric = true
	}
	return out, numeric
}

// WriteCSV writes t with a header row, in column order.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cols := t.Columns()
	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	values := make([]reflect.Value, len(cols))
	for c, name := range cols {
		values[c] = reflect.ValueOf(t.MustColumn(name))
	}
	row := make([]string, len(cols))
	for i := 0; i < t.Len(); i++ {
		for c := range cols {
			row[c] = formatCell(values[c].Index(i).Interface())
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
