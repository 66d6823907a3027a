package dataset

import (
	"strconv"
	"strings"
)

// Kind identifies what a Value holds
type Kind int

const (
	KindMissing Kind = iota
	KindString
	KindNumber
)

// Value is a single cell. The zero Value is missing.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Missing returns the missing marker
func Missing() Value { return Value{} }

// String returns a string cell
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric cell
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Kind reports what the cell holds
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell is empty
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// AsString returns the string content of a string cell
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsNumber returns the numeric content of a number cell
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// String renders the cell as text; missing cells render empty.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Row maps a column name to its cell
type Row map[string]Value

// Get returns the cell for col, or a missing value when absent
func (r Row) Get(col string) Value {
	return r[col]
}

// Table is an immutable ordered header plus rows. Rows returned by the
// accessors are shared and must be treated as read-only.
type Table struct {
	columns []string
	rows    []Row
}

// NewTable builds a table from a header and rows
func NewTable(columns []string, rows []Row) Table {
	return Table{
		columns: append([]string(nil), columns...),
		rows:    append([]Row(nil), rows...),
	}
}

// FromRecords builds a table from a header row and raw string records.
// Empty cells become missing values, short rows are padded with missing
// values, cells beyond the header are dropped and blank rows are skipped.
func FromRecords(header []string, records [][]string) Table {
	values := make([][]Value, 0, len(records))
	for _, record := range records {
		row := make([]Value, len(record))
		for i, cell := range record {
			if cell != "" {
				row[i] = String(cell)
			}
		}
		values = append(values, row)
	}
	return FromValues(header, values)
}

// FromValues builds a table from a header row and positional cells, with
// the same padding and blank-row rules as FromRecords.
func FromValues(header []string, records [][]Value) Table {
	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = Missing()
			}
		}
		rows = append(rows, row)
	}
	return Table{columns: append([]string(nil), header...), rows: rows}
}

func isBlank(record []Value) bool {
	for _, v := range record {
		if v.IsMissing() {
			continue
		}
		if s, ok := v.AsString(); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return false
	}
	return true
}

// Columns returns a copy of the header
func (t Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Rows returns the rows in source order
func (t Table) Rows() []Row {
	return t.rows
}

// Len returns the number of rows
func (t Table) Len() int { return len(t.rows) }

// Empty reports whether the table has no rows
func (t Table) Empty() bool { return len(t.rows) == 0 }

// HasColumn reports whether name is part of the header
func (t Table) HasColumn(name string) bool {
	for _, c := range t.columns {
		if c == name {
			return true
		}
	}
	return false
}

// Filter returns a table with the same header holding the rows keep accepts
func (t Table) Filter(keep func(Row) bool) Table {
	rows := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return Table{columns: t.columns, rows: rows}
}

// Equal reports whether both tables have the same header and cells
func (t Table) Equal(other Table) bool {
	if len(t.columns) != len(other.columns) || len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.columns {
		if t.columns[i] != other.columns[i] {
			return false
		}
	}
	for i := range t.rows {
		for _, col := range t.columns {
			if t.rows[i].Get(col) != other.rows[i].Get(col) {
				return false
			}
		}
	}
	return true
}
