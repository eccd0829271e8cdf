package repositories

import (
	"context"
	"fmt"

	"github.com/gmsoft-inc/monitor-engine/pkg/database"
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// DeliverableReader pulls deliverables with their type and, when one
// exists, their quality evaluation.
type DeliverableReader interface {
	// ReadAll returns deliverables outer-joined to evaluations, so a
	// deliverable that has not been reviewed yet still appears with
	// NULL compliance fields.
	ReadAll(ctx context.Context) (*dataset.Table, error)
}

type deliverableReader struct {
	db *database.DB
}

// NewDeliverableReader creates a deliverable reader over the primary pool.
func NewDeliverableReader(db *database.DB) DeliverableReader {
	return &deliverableReader{db: db}
}

func (r *deliverableReader) ReadAll(ctx context.Context) (*dataset.Table, error) {
	const query = `
		SELECT
			d.id AS deliverable_id,
			d.activity_id,
			d.employee_id,
			d.file_name,
			d.delivered_at,
			d.version,
			d.status,
			t.name AS deliverable_type,
			q.meets_format,
			q.meets_content,
			q.meets_regulation,
			q.overall_rating
		FROM deliverables d
		JOIN deliverable_types t ON d.type_id = t.id
		LEFT JOIN quality_evaluations q ON d.id = q.deliverable_id
		ORDER BY d.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliverables: %w", err)
	}

	return database.CollectRows(rows)
}
