package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/apperrors"
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/models"
	"github.com/gmsoft-inc/monitor-engine/pkg/repositories"
	"github.com/gmsoft-inc/monitor-engine/pkg/standardize"
)

// EmployeeSource provides the best-effort employee directory table.
// Implementations must degrade internally (placeholder row) rather than
// fail; FetchEmployees therefore returns no error.
type EmployeeSource interface {
	FetchEmployees(ctx context.Context) *dataset.Table
}

// UnifiedDatasetService builds the single wide table at time-record
// grain that the KPI document writer and CSV exporter consume.
type UnifiedDatasetService interface {
	// Build reads and standardizes all sources and unifies them.
	// Returns apperrors.ErrNoSourceData when any of the three primary
	// inputs (time records, activities, employees) is empty; callers
	// must treat that as terminal for the run.
	Build(ctx context.Context) (*dataset.Table, error)
}

type unifiedDatasetService struct {
	timeRecords  repositories.TimeRecordReader
	activities   repositories.ActivityReader
	deliverables repositories.DeliverableReader
	employees    EmployeeSource
	logger       *zap.Logger
}

// NewUnifiedDatasetService creates the dataset unifier.
func NewUnifiedDatasetService(
	timeRecords repositories.TimeRecordReader,
	activities repositories.ActivityReader,
	deliverables repositories.DeliverableReader,
	employees EmployeeSource,
	logger *zap.Logger,
) UnifiedDatasetService {
	return &unifiedDatasetService{
		timeRecords:  timeRecords,
		activities:   activities,
		deliverables: deliverables,
		employees:    employees,
		logger:       logger.Named("unified-dataset"),
	}
}

var _ UnifiedDatasetService = (*unifiedDatasetService)(nil)

func (s *unifiedDatasetService) Build(ctx context.Context) (*dataset.Table, error) {
	timeRecords, err := s.timeRecords.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read time records: %w", err)
	}
	activities, err := s.activities.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read activities: %w", err)
	}
	deliverables, err := s.deliverables.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read deliverables: %w", err)
	}
	employees := s.employees.FetchEmployees(ctx)

	unified, err := Unify(
		standardize.TimeRecords(timeRecords, s.logger),
		activities,
		employees,
		standardize.Deliverables(deliverables),
	)
	if err != nil {
		s.logger.Warn("Unified dataset not produced",
			zap.Int("time_records", timeRecords.Len()),
			zap.Int("activities", activities.Len()),
			zap.Int("employees", employees.Len()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Unified dataset created",
		zap.Int("rows", unified.Len()),
		zap.Int("columns", len(unified.Columns)))
	return unified, nil
}

// Unify joins the standardized tables into one table at time-record
// grain: time records left-joined to activities+projects, then to the
// employee directory, with deliverable rollups folded in at the
// (employee, activity) grain.
//
// Hard precondition: time records, activities and employees must all be
// non-empty: a unification with zero rows on one side is meaningless.
// Deliverables may be empty; the rollup columns are then simply absent.
func Unify(timeRecords, activities, employees, deliverables *dataset.Table) (*dataset.Table, error) {
	if timeRecords.Empty() || activities.Empty() || employees.Empty() {
		return nil, apperrors.ErrNoSourceData
	}

	// Left join, never inner: a time record whose activity was deleted
	// keeps nil activity/project fields instead of vanishing.
	unified := dataset.LeftJoin(timeRecords, activities, "activity_id")

	// The employee table already carries only the columns resolved
	// against the external schema, aliased to canonical names.
	unified = dataset.LeftJoin(unified, employees, "employee_id")

	if !deliverables.Empty() {
		rollup := deliverables.GroupBy(
			[]string{"employee_id", "activity_id"},
			dataset.Agg{As: "total_deliverables", Fn: dataset.Count()},
			dataset.Agg{As: "avg_quality_score", Fn: dataset.Mean("quality_score")},
			dataset.Agg{As: "approved_deliverables", Fn: dataset.CountWhere("status", string(models.DeliverableApproved))},
			dataset.Agg{As: "rejected_deliverables", Fn: dataset.CountWhere("status", string(models.DeliverableRejected))},
		)
		unified = dataset.LeftJoin(unified, rollup, "employee_id", "activity_id")
	}

	return unified, nil
}
