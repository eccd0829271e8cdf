package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{"float64", 2.5, 2.5},
		{"int64", int64(3), 3},
		{"int", 4, 4},
		{"nil treated as zero", nil, 0},
		{"string treated as zero", "8.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AsFloat(tt.value))
		})
	}
}

func TestSortByFloatDesc(t *testing.T) {
	tbl := New("employee_id", "total_hours")
	tbl.Append(map[string]any{"employee_id": "EMP02", "total_hours": 4.5})
	tbl.Append(map[string]any{"employee_id": "EMP03", "total_hours": 12.0})
	tbl.Append(map[string]any{"employee_id": "EMP04", "total_hours": nil})

	tbl.SortByFloatDesc("total_hours")

	assert.Equal(t, "EMP03", tbl.Rows[0]["employee_id"])
	assert.Equal(t, "EMP02", tbl.Rows[1]["employee_id"])
	assert.Equal(t, "EMP04", tbl.Rows[2]["employee_id"])
}

func TestEmptyAndColumns(t *testing.T) {
	var nilTable *Table
	assert.True(t, nilTable.Empty())

	tbl := New("a")
	assert.True(t, tbl.Empty())
	assert.True(t, tbl.HasColumn("a"))
	assert.False(t, tbl.HasColumn("b"))

	tbl.AddColumn("b")
	tbl.AddColumn("b")
	assert.Equal(t, []string{"a", "b"}, tbl.Columns)
}
