package testhelpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// SeedPipelineData resets the monitoring tables and loads a small known
// fixture: two projects, three activities, four work sessions for two
// employees (one wrapping past midnight), and three deliverables of
// which two are evaluated. The numbers below are asserted exactly by the
// integration tests:
//
//	EMP10: 8.50h + 2.00h = 10.50h, 2 deliverables (1 approved, 1 rejected)
//	EMP11: 4.25h + 4.00h =  8.25h, 1 deliverable (pending review)
func SeedPipelineData(t *testing.T, tdb *TestDB) {
	t.Helper()
	ctx := context.Background()

	_, err := tdb.DB.Exec(ctx, `
		TRUNCATE projects, activities, assignments, time_records,
			deliverable_types, deliverables, quality_evaluations,
			productivity_metrics
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)

	_, err = tdb.DB.Exec(ctx, `
		INSERT INTO projects (id, name, description, client, start_date, status) VALUES
			(1, 'Apollo', 'Data warehouse rollout', 'Acme Corp', '2026-01-05', 'InProgress'),
			(2, 'Borealis', 'Compliance audit', 'Globex', '2026-02-01', 'Planning')`)
	require.NoError(t, err)

	_, err = tdb.DB.Exec(ctx, `
		INSERT INTO activities (id, project_id, name, priority, assigned_date, due_date, status) VALUES
			(1, 1, 'Design schema', 'High', '2026-02-20', '2026-03-10', 'Completed'),
			(2, 1, 'Build ETL', 'Medium', '2026-02-25', '2026-03-20', 'InProgress'),
			(3, 2, 'Draft audit plan', 'Low', '2026-03-01', '2026-03-30', 'Pending')`)
	require.NoError(t, err)

	_, err = tdb.DB.Exec(ctx, `
		INSERT INTO time_records (employee_id, activity_id, record_date, start_time, end_time, location, applications_used) VALUES
			('EMP10', 1, '2026-03-02', '09:00:00', '17:30:00', 'remote', '["vscode", "slack"]'),
			('EMP10', 2, '2026-03-03', '23:00:00', '01:00:00', 'remote', '["dbeaver"]'),
			('EMP11', 1, '2026-03-02', '10:00:00', '14:15:00', 'office', NULL),
			('EMP11', 3, '2026-03-04', '08:00:00', '12:00:00', 'remote', '["word"]')`)
	require.NoError(t, err)

	_, err = tdb.DB.Exec(ctx, `
		INSERT INTO deliverable_types (id, name) VALUES
			(1, 'Report'),
			(2, 'Dataset')`)
	require.NoError(t, err)

	_, err = tdb.DB.Exec(ctx, `
		INSERT INTO deliverables (id, activity_id, employee_id, type_id, file_name, version, status) VALUES
			(1, 1, 'EMP10', 1, 'schema.pdf', 2, 'Approved'),
			(2, 2, 'EMP10', 2, 'etl_extract.zip', 1, 'Rejected'),
			(3, 1, 'EMP11', 1, 'schema_review.docx', 1, 'PendingReview')`)
	require.NoError(t, err)

	_, err = tdb.DB.Exec(ctx, `
		INSERT INTO quality_evaluations (deliverable_id, evaluator_id, meets_format, meets_content, meets_regulation, overall_rating) VALUES
			(1, 'EMP30', TRUE, TRUE, TRUE, 5),
			(2, 'EMP30', TRUE, FALSE, FALSE, 2)`)
	require.NoError(t, err)
}
