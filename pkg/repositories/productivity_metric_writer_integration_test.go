package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsoft-inc/monitor-engine/pkg/models"
	"github.com/gmsoft-inc/monitor-engine/pkg/testhelpers"
)

func TestProductivityMetricWriterSaveSnapshot(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.SeedPipelineData(t, tdb)
	ctx := context.Background()

	writer := NewProductivityMetricWriter(tdb.DB)
	require.NoError(t, writer.SaveSnapshot(ctx, []models.ProductivityMetric{
		{EmployeeID: "EMP10", MetricKey: "employee_productivity.total_hours", MetricValue: 10.5},
		{EmployeeID: "EMP11", MetricKey: "employee_productivity.total_hours", MetricValue: 8.25},
	}))

	var count int
	var value float64
	row := tdb.DB.QueryRow(ctx,
		`SELECT COUNT(*), MAX(metric_value) FILTER (WHERE employee_id = 'EMP10')
		 FROM productivity_metrics WHERE metric_key = 'employee_productivity.total_hours'`)
	require.NoError(t, row.Scan(&count, &value))
	assert.Equal(t, 2, count)
	assert.InDelta(t, 10.5, value, 0.001)

	// Empty snapshots are a no-op, not an error.
	require.NoError(t, writer.SaveSnapshot(ctx, nil))
}
