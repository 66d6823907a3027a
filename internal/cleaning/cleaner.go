package cleaning

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"scpulse/internal/dataset"
	apperrors "scpulse/internal/errors"
)

var currencyReplacer = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	"₹", "",
	",", "",
)

// NormalizeColumnName trims and lower-cases name and joins internal
// whitespace runs with an underscore.
func NormalizeColumnName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Clean normalizes column names and coerces numeric-by-convention columns.
// Values that fail coercion become missing. The input is not modified and
// Clean(Clean(t)) equals Clean(t).
func Clean(t dataset.Table) (dataset.Table, error) {
	raw := t.Columns()
	columns := make([]string, len(raw))
	seen := make(map[string]string, len(raw))

	for i, name := range raw {
		canonical := NormalizeColumnName(name)
		if canonical == "" {
			canonical = fmt.Sprintf("column_%d", i+1)
		}
		if prev, dup := seen[canonical]; dup {
			return dataset.Table{}, apperrors.NewSchemaError(
				fmt.Sprintf("duplicate column %q after normalization", canonical), nil).
				WithContext("columns", []string{prev, name})
		}
		seen[canonical] = name
		columns[i] = canonical
	}

	rows := make([]dataset.Row, 0, t.Len())
	for _, src := range t.Rows() {
		row := make(dataset.Row, len(columns))
		for i, col := range columns {
			row[col] = cleanValue(col, src.Get(raw[i]))
		}
		rows = append(rows, row)
	}

	return dataset.NewTable(columns, rows), nil
}

func cleanValue(col string, v dataset.Value) dataset.Value {
	if numericColumns[col] {
		return coerceNumber(v, currencyColumns[col])
	}
	if s, ok := v.AsString(); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return dataset.Missing()
		}
		return dataset.String(s)
	}
	return v
}

func coerceNumber(v dataset.Value, currency bool) dataset.Value {
	if n, ok := v.AsNumber(); ok {
		return finite(n)
	}
	s, ok := v.AsString()
	if !ok {
		return dataset.Missing()
	}
	if currency {
		s = currencyReplacer.Replace(s)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return dataset.Missing()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return dataset.Missing()
	}
	return finite(n)
}

func finite(n float64) dataset.Value {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return dataset.Missing()
	}
	return dataset.Number(n)
}

// Require narrows t to rows where every listed column holds a number.
// Narrowing is applied per consumer; t itself is unchanged.
func Require(t dataset.Table, cols ...string) dataset.Table {
	return t.Filter(func(r dataset.Row) bool {
		for _, c := range cols {
			if _, ok := r.Get(c).AsNumber(); !ok {
				return false
			}
		}
		return true
	})
}

// MissingColumns returns the listed columns absent from the header of t
func MissingColumns(t dataset.Table, cols ...string) []string {
	var missing []string
	for _, c := range cols {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}
