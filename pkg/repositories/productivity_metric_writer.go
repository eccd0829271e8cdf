package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gmsoft-inc/monitor-engine/pkg/database"
	"github.com/gmsoft-inc/monitor-engine/pkg/models"
)

// ProductivityMetricWriter persists per-employee metric snapshots.
type ProductivityMetricWriter interface {
	// SaveSnapshot appends one row per metric value; computed_at is set
	// by the store so all rows of a run share insertion time ordering.
	SaveSnapshot(ctx context.Context, snapshot []models.ProductivityMetric) error
}

type productivityMetricWriter struct {
	db *database.DB
}

// NewProductivityMetricWriter creates a snapshot writer over the
// primary pool.
func NewProductivityMetricWriter(db *database.DB) ProductivityMetricWriter {
	return &productivityMetricWriter{db: db}
}

func (w *productivityMetricWriter) SaveSnapshot(ctx context.Context, snapshot []models.ProductivityMetric) error {
	if len(snapshot) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range snapshot {
		batch.Queue(
			`INSERT INTO productivity_metrics (employee_id, metric_key, metric_value)
			 VALUES ($1, $2, $3)`,
			m.EmployeeID, m.MetricKey, m.MetricValue,
		)
	}

	results := w.db.SendBatch(ctx, batch)
	defer results.Close()

	for range snapshot {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert metric snapshot: %w", err)
		}
	}
	return results.Close()
}
