package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/testhelpers"
)

func TestTimeRecordReaderReadAll(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.SeedPipelineData(t, tdb)

	table, err := NewTimeRecordReader(tdb.DB).ReadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	// Clock columns come back as text, ready for the standardizer.
	assert.True(t, table.HasColumn("start_time"))
	first := table.Rows[0]
	assert.Equal(t, "09:00:00", first["start_time"])
	assert.Equal(t, "17:30:00", first["end_time"])
	assert.Equal(t, "EMP10", first["employee_id"])
	assert.JSONEq(t, `["vscode", "slack"]`, dataset.AsString(first["applications_used"]))

	// NULL application lists survive as nil, not as a decode error.
	assert.Nil(t, table.Rows[2]["applications_used"])
}

func TestActivityReaderJoinsProjects(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.SeedPipelineData(t, tdb)

	table, err := NewActivityReader(tdb.DB).ReadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	first := table.Rows[0]
	assert.Equal(t, "Design schema", first["activity_name"])
	assert.Equal(t, "Apollo", first["project_name"])
	assert.Equal(t, "Acme Corp", first["client"])
	assert.Equal(t, "Completed", first["activity_status"])
	assert.Equal(t, "InProgress", first["project_status"])
}

func TestDeliverableReaderKeepsUnevaluatedRows(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.SeedPipelineData(t, tdb)

	table, err := NewDeliverableReader(tdb.DB).ReadAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	evaluated := table.Rows[0]
	assert.Equal(t, "schema.pdf", evaluated["file_name"])
	assert.Equal(t, "Report", evaluated["deliverable_type"])
	assert.Equal(t, true, evaluated["meets_format"])
	assert.Equal(t, int32(5), evaluated["overall_rating"])

	// Deliverable 3 has no quality evaluation: compliance columns are
	// nil and the standardizer later coerces them to not-met.
	pending := table.Rows[2]
	assert.Equal(t, "PendingReview", pending["status"])
	assert.Nil(t, pending["meets_format"])
	assert.Nil(t, pending["overall_rating"])
}

func TestDeliverableReaderFansOutReEvaluations(t *testing.T) {
	tdb := testhelpers.GetTestDB(t)
	testhelpers.SeedPipelineData(t, tdb)
	ctx := context.Background()

	// A rejected deliverable gets a second evaluation after rework.
	_, err := tdb.DB.Exec(ctx, `
		INSERT INTO quality_evaluations (deliverable_id, evaluator_id, meets_format, meets_content, meets_regulation, overall_rating) VALUES
			(2, 'EMP31', TRUE, TRUE, FALSE, 4)`)
	require.NoError(t, err)

	table, err := NewDeliverableReader(tdb.DB).ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	var reviews int
	for _, row := range table.Rows {
		if row["deliverable_id"] == int32(2) {
			reviews++
		}
	}
	assert.Equal(t, 2, reviews, "each evaluation of a deliverable yields its own row")
}
