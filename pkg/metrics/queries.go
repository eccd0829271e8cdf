package metrics

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/apperrors"
	"github.com/gmsoft-inc/monitor-engine/pkg/database"
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// Engine runs the aggregate query path against the primary store.
type Engine struct {
	db     *database.DB
	logger *zap.Logger
}

// NewEngine creates a query-path engine over the primary pool.
func NewEngine(db *database.DB, logger *zap.Logger) *Engine {
	return &Engine{
		db:     db,
		logger: logger.Named("metrics"),
	}
}

// Run executes one metric's aggregate query. A failing metric never
// aborts the batch: the error is logged and an empty table shaped by the
// metric's columns comes back so the other metrics still export.
func (e *Engine) Run(ctx context.Context, spec Spec) *dataset.Table {
	table, err := e.run(ctx, spec)
	if err != nil {
		e.logger.Error("Metric unavailable",
			zap.String("metric", spec.Key),
			zap.Error(err))
		return spec.ZeroTable()
	}

	e.logger.Debug("Metric computed",
		zap.String("metric", spec.Key),
		zap.Int("rows", table.Len()))
	return table
}

func (e *Engine) run(ctx context.Context, spec Spec) (*dataset.Table, error) {
	rows, err := e.db.Query(ctx, spec.Query)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrMetricUnavailable, spec.Key, err)
	}

	table, err := database.CollectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrMetricUnavailable, spec.Key, err)
	}
	return table, nil
}

// Collect runs every metric in Specs order and returns the results keyed
// by metric key. Failed metrics appear as empty tables.
func (e *Engine) Collect(ctx context.Context) map[string]*dataset.Table {
	results := make(map[string]*dataset.Table, len(Specs()))
	for _, spec := range Specs() {
		results[spec.Key] = e.Run(ctx, spec)
	}
	return results
}

// RefreshDashboardView recreates the combined per-(employee, project)
// view from the dashboard metric's query, so reporting tools read the
// same definition this package computes.
func (e *Engine) RefreshDashboardView(ctx context.Context) error {
	stmt := fmt.Sprintf("CREATE OR REPLACE VIEW %s AS %s", DashboardViewName, dashboardQuery())
	if _, err := e.db.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("failed to refresh dashboard view: %w", err)
	}

	e.logger.Info("Dashboard view refreshed", zap.String("view", DashboardViewName))
	return nil
}
