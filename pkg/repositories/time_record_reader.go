package repositories

import (
	"context"
	"fmt"

	"github.com/gmsoft-inc/monitor-engine/pkg/database"
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// TimeRecordReader pulls logged work sessions from the primary store.
type TimeRecordReader interface {
	// ReadAll returns every time record. Clock fields come back as
	// HH:MM:SS text and the application-usage field as raw JSON text;
	// the standardizer owns parsing and derivation.
	ReadAll(ctx context.Context) (*dataset.Table, error)
}

type timeRecordReader struct {
	db *database.DB
}

// NewTimeRecordReader creates a time record reader over the primary pool.
func NewTimeRecordReader(db *database.DB) TimeRecordReader {
	return &timeRecordReader{db: db}
}

func (r *timeRecordReader) ReadAll(ctx context.Context) (*dataset.Table, error) {
	const query = `
		SELECT
			id,
			employee_id,
			activity_id,
			record_date,
			start_time::text AS start_time,
			end_time::text AS end_time,
			description,
			location,
			applications_used::text AS applications_used
		FROM time_records
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query time records: %w", err)
	}

	return database.CollectRows(rows)
}
