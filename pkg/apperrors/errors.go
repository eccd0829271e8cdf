package apperrors

import "errors"

var (
	// ErrNoSourceData signals that one of the primary source tables
	// (time records, activities, employees) was empty, so no unified
	// dataset could be produced. Callers must treat this as terminal
	// for the run and skip report generation.
	ErrNoSourceData = errors.New("no source data: unified dataset not produced")

	// ErrMetricUnavailable marks an individual metric whose aggregate
	// query failed. Other metrics are unaffected.
	ErrMetricUnavailable = errors.New("metric unavailable")
)
