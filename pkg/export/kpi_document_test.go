package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

func unifiedFixture() *dataset.Table {
	t := dataset.New(
		"employee_id", "activity_id", "project_id", "project_name",
		"duration_hours", "avg_quality_score", "total_deliverables", "rejected_deliverables",
	)
	t.Append(map[string]any{
		"employee_id": "EMP10", "activity_id": int64(1),
		"project_id": int64(1), "project_name": "Apollo",
		"duration_hours": 8.5, "avg_quality_score": 100.0,
		"total_deliverables": int64(1), "rejected_deliverables": int64(0),
	})
	t.Append(map[string]any{
		"employee_id": "EMP10", "activity_id": int64(2),
		"project_id": int64(1), "project_name": "Apollo",
		"duration_hours": 2.0, "avg_quality_score": 33.33,
		"total_deliverables": int64(1), "rejected_deliverables": int64(1),
	})
	t.Append(map[string]any{
		"employee_id": "EMP11", "activity_id": int64(3),
		"project_id": int64(2), "project_name": "Borealis",
		"duration_hours": 4.0, "avg_quality_score": nil,
		"total_deliverables": nil, "rejected_deliverables": nil,
	})
	return t
}

func TestKPIDocumentWriter(t *testing.T) {
	dir := t.TempDir()

	writer := NewKPIDocumentWriter(dir, zap.NewNop())
	writer.now = func() time.Time {
		return time.Date(2026, 3, 6, 9, 30, 0, 0, time.UTC)
	}

	path, err := writer.Write(unifiedFixture())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, KPIDocumentFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "# Remote Work Productivity and Quality KPIs")
	assert.Contains(t, doc, "Generated: 2026-03-06 09:30")

	// Hours per employee with summary stats.
	assert.Contains(t, doc, "| EMP10 | 10.50 |")
	assert.Contains(t, doc, "| EMP11 | 4.00 |")
	assert.Contains(t, doc, "Average: 7.25 h — Highest: 10.50 h — Lowest: 4.00 h")

	// Hours per project.
	assert.Contains(t, doc, "| Apollo | 10.50 |")
	assert.Contains(t, doc, "| Borealis | 4.00 |")

	// Quality: EMP10 mean(100, 33.33), EMP11's nil rollup counts as zero.
	assert.Contains(t, doc, "| EMP10 | 66.66 | Medium |")
	assert.Contains(t, doc, "| EMP11 | 0.00 | Low |")

	// Rejections: EMP10 rejected 1 of 2, EMP11 none.
	assert.Contains(t, doc, "| EMP10 | 1 | 50.00% |")
	assert.Contains(t, doc, "| EMP11 | 0 | 0.00% |")

	// Deliverables per hour: EMP10 2/10.5, EMP11 zero-guarded.
	assert.Contains(t, doc, "| EMP10 | 10.50 | 2 | 0.19 |")
	assert.Contains(t, doc, "| EMP11 | 4.00 | 0 | 0.00 |")

	assert.Contains(t, doc, "## Recommendations")
}

func TestKPIDocumentWriterEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	writer := NewKPIDocumentWriter(dir, zap.NewNop())

	empty := dataset.New("employee_id", "duration_hours")
	path, err := writer.Write(empty)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No hours recorded.")
}
