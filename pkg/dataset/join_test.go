package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeftJoinPreservesLeftRows(t *testing.T) {
	left := New("record_id", "activity_id")
	left.Append(map[string]any{"record_id": int64(1), "activity_id": int64(10)})
	left.Append(map[string]any{"record_id": int64(2), "activity_id": int64(20)})
	left.Append(map[string]any{"record_id": int64(3), "activity_id": int64(99)}) // deleted activity

	right := New("activity_id", "activity_name")
	right.Append(map[string]any{"activity_id": int64(10), "activity_name": "Design review"})
	right.Append(map[string]any{"activity_id": int64(20), "activity_name": "Load testing"})

	out := LeftJoin(left, right, "activity_id")

	// No row loss, no fan-out: the right side is unique per key.
	require.Equal(t, left.Len(), out.Len())
	assert.Equal(t, []string{"record_id", "activity_id", "activity_name"}, out.Columns)

	assert.Equal(t, "Design review", out.Rows[0]["activity_name"])
	assert.Equal(t, "Load testing", out.Rows[1]["activity_name"])

	// Unmatched left rows keep nil right-side fields instead of vanishing.
	assert.Nil(t, out.Rows[2]["activity_name"])
	assert.Equal(t, int64(3), out.Rows[2]["record_id"])
}

func TestLeftJoinCompositeKey(t *testing.T) {
	left := New("employee_id", "activity_id", "duration_hours")
	left.Append(map[string]any{"employee_id": "EMP02", "activity_id": int64(1), "duration_hours": 8.0})
	left.Append(map[string]any{"employee_id": "EMP03", "activity_id": int64(1), "duration_hours": 4.0})

	right := New("employee_id", "activity_id", "total_deliverables")
	right.Append(map[string]any{"employee_id": "EMP02", "activity_id": int64(1), "total_deliverables": int64(3)})

	out := LeftJoin(left, right, "employee_id", "activity_id")

	require.Equal(t, 2, out.Len())
	assert.Equal(t, int64(3), out.Rows[0]["total_deliverables"])
	assert.Nil(t, out.Rows[1]["total_deliverables"])
}

func TestLeftJoinKeyValuesDoNotCollideAcrossColumns(t *testing.T) {
	left := New("a", "b")
	left.Append(map[string]any{"a": "x\x1fy", "b": "z"})

	right := New("a", "b", "v")
	right.Append(map[string]any{"a": "x", "b": "y\x1fz", "v": "should not match"})

	out := LeftJoin(left, right, "a", "b")
	require.Equal(t, 1, out.Len())
	assert.Nil(t, out.Rows[0]["v"])
}

func TestGroupByAggregations(t *testing.T) {
	deliverables := New("employee_id", "activity_id", "deliverable_id", "quality_score", "status")
	add := func(emp string, act, id int64, score float64, status string) {
		deliverables.Append(map[string]any{
			"employee_id":    emp,
			"activity_id":    act,
			"deliverable_id": id,
			"quality_score":  score,
			"status":         status,
		})
	}
	add("EMP02", 1, 100, 100.0, "Approved")
	add("EMP02", 1, 101, 66.67, "Rejected")
	add("EMP02", 2, 102, 33.33, "Approved")
	add("EMP03", 1, 103, 0.0, "PendingReview")

	out := deliverables.GroupBy(
		[]string{"employee_id", "activity_id"},
		Agg{As: "total_deliverables", Fn: Count()},
		Agg{As: "avg_quality_score", Fn: Mean("quality_score")},
		Agg{As: "approved_deliverables", Fn: CountWhere("status", "Approved")},
	)

	require.Equal(t, 3, out.Len())
	assert.Equal(t, []string{"employee_id", "activity_id", "total_deliverables", "avg_quality_score", "approved_deliverables"}, out.Columns)

	first := out.Rows[0]
	assert.Equal(t, "EMP02", first["employee_id"])
	assert.Equal(t, int64(2), first["total_deliverables"])
	assert.InDelta(t, 83.335, first["avg_quality_score"].(float64), 0.001)
	assert.Equal(t, int64(1), first["approved_deliverables"])

	last := out.Rows[2]
	assert.Equal(t, "EMP03", last["employee_id"])
	assert.Equal(t, int64(0), last["approved_deliverables"].(int64))
}

func TestSumTreatsNilAsZero(t *testing.T) {
	tbl := New("employee_id", "total_deliverables")
	tbl.Append(map[string]any{"employee_id": "EMP02", "total_deliverables": int64(2)})
	tbl.Append(map[string]any{"employee_id": "EMP02", "total_deliverables": nil})

	out := tbl.GroupBy([]string{"employee_id"}, Agg{As: "total", Fn: Sum("total_deliverables")})
	require.Equal(t, 1, out.Len())
	assert.Equal(t, 2.0, out.Rows[0]["total"])
}
