package dataset

import (
	"fmt"
	"strings"
)

// LeftJoin joins every left row to matching right rows on the given key
// columns (same names on both sides). Left rows without a match are kept
// with nil values for the right-side columns: a time record whose
// activity has since been deleted must not vanish from the output.
//
// Output columns are the left columns followed by right columns that are
// neither join keys nor already present on the left.
func LeftJoin(left, right *Table, on ...string) *Table {
	carried := make([]string, 0, len(right.Columns))
	for _, c := range right.Columns {
		if !contains(on, c) && !left.HasColumn(c) {
			carried = append(carried, c)
		}
	}

	out := New(append(append([]string{}, left.Columns...), carried...)...)

	index := make(map[string][]map[string]any, right.Len())
	for _, row := range right.Rows {
		k := compositeKey(row, on)
		index[k] = append(index[k], row)
	}

	for _, lrow := range left.Rows {
		matches := index[compositeKey(lrow, on)]
		if len(matches) == 0 {
			row := make(map[string]any, len(out.Columns))
			for _, c := range left.Columns {
				row[c] = lrow[c]
			}
			for _, c := range carried {
				row[c] = nil
			}
			out.Append(row)
			continue
		}
		for _, rrow := range matches {
			row := make(map[string]any, len(out.Columns))
			for _, c := range left.Columns {
				row[c] = lrow[c]
			}
			for _, c := range carried {
				row[c] = rrow[c]
			}
			out.Append(row)
		}
	}

	return out
}

// Agg is one grouped aggregation: Fn is applied to each group's rows and
// the result stored under the As column.
type Agg struct {
	As string
	Fn func(rows []map[string]any) any
}

// GroupBy groups rows by the key columns and applies each aggregation.
// Groups appear in first-seen row order, so output is deterministic.
func (t *Table) GroupBy(keys []string, aggs ...Agg) *Table {
	columns := append([]string{}, keys...)
	for _, a := range aggs {
		columns = append(columns, a.As)
	}
	out := New(columns...)

	order := make([]string, 0)
	groups := make(map[string][]map[string]any)
	for _, row := range t.Rows {
		k := compositeKey(row, keys)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}

	for _, k := range order {
		rows := groups[k]
		row := make(map[string]any, len(columns))
		for _, key := range keys {
			row[key] = rows[0][key]
		}
		for _, a := range aggs {
			row[a.As] = a.Fn(rows)
		}
		out.Append(row)
	}

	return out
}

// Sum aggregates the numeric total of a column; nil values count as zero.
func Sum(column string) func(rows []map[string]any) any {
	return func(rows []map[string]any) any {
		var total float64
		for _, r := range rows {
			total += AsFloat(r[column])
		}
		return total
	}
}

// Mean aggregates the numeric mean of a column over all group rows;
// nil values count as zero, not as missing.
func Mean(column string) func(rows []map[string]any) any {
	return func(rows []map[string]any) any {
		if len(rows) == 0 {
			return float64(0)
		}
		var total float64
		for _, r := range rows {
			total += AsFloat(r[column])
		}
		return total / float64(len(rows))
	}
}

// Count aggregates the number of rows in the group.
func Count() func(rows []map[string]any) any {
	return func(rows []map[string]any) any {
		return int64(len(rows))
	}
}

// CountWhere aggregates the number of group rows whose column equals value.
func CountWhere(column string, value any) func(rows []map[string]any) any {
	return func(rows []map[string]any) any {
		var n int64
		for _, r := range rows {
			if r[column] == value {
				n++
			}
		}
		return n
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// compositeKey builds a group/join key from the named columns. Values
// are rendered with %v; the unit separator keeps composite keys from
// colliding across columns.
func compositeKey(row map[string]any, columns []string) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = fmt.Sprintf("%v", row[c])
	}
	return strings.Join(parts, "\x1f")
}
