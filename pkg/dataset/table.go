package dataset

import (
	"math"
	"sort"
)

// Table is an in-memory tabular result: the realized column list plus
// rows of column name → value. Optional source columns vary between
// environments, so Columns always reflects what was actually selected,
// not a fixed schema.
type Table struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// New creates an empty table with the given realized columns.
func New(columns ...string) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([]map[string]any, 0),
	}
}

// Append adds a row to the table.
func (t *Table) Append(row map[string]any) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Empty reports whether the table is nil or has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// HasColumn reports whether name is in the realized column list.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// AddColumn appends name to the realized column list if absent.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// SortByFloatDesc orders rows by a numeric column, highest first.
// Rows with missing or non-numeric values sort last. The sort is stable
// so equal values keep their original relative order.
func (t *Table) SortByFloatDesc(column string) {
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return AsFloat(t.Rows[i][column]) > AsFloat(t.Rows[j][column])
	})
}

// AsFloat coerces a row value to float64 for metric arithmetic.
// nil and non-numeric values coerce to 0: missing deliverable rollups
// must act as zero downstream, never propagate as missing.
func AsFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return 0
	}
}

// Round2 rounds to two decimals. Every derived hour and percentage in
// the pipeline carries exactly this precision, so both metric paths must
// share the one definition.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AsString coerces a row value to string, with "" for nil or non-strings.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsBool coerces a row value to bool. nil coerces to false: absent
// compliance flags are treated as false, never null-propagated.
func AsBool(v any) bool {
	b, _ := v.(bool)
	return b
}
