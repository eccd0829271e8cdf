package repositories

import (
	"context"
	"fmt"

	"github.com/gmsoft-inc/monitor-engine/pkg/database"
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// ActivityReader pulls activities joined with their projects.
type ActivityReader interface {
	ReadAll(ctx context.Context) (*dataset.Table, error)
}

type activityReader struct {
	db *database.DB
}

// NewActivityReader creates an activity reader over the primary pool.
func NewActivityReader(db *database.DB) ActivityReader {
	return &activityReader{db: db}
}

func (r *activityReader) ReadAll(ctx context.Context) (*dataset.Table, error) {
	// Inner join: every activity references exactly one project.
	const query = `
		SELECT
			a.id AS activity_id,
			a.name AS activity_name,
			a.description AS activity_description,
			a.priority,
			a.assigned_date,
			a.due_date,
			a.status AS activity_status,
			p.id AS project_id,
			p.name AS project_name,
			p.client,
			p.status AS project_status
		FROM activities a
		JOIN projects p ON a.project_id = p.id
		ORDER BY a.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}

	return database.CollectRows(rows)
}
