package models

import "time"

// ProductivityMetric is one persisted per-employee metric value. Each
// run snapshots the employee-grain metrics here so historical runs can
// be compared without re-reading the raw tables.
type ProductivityMetric struct {
	ID          int64     `json:"id"`
	EmployeeID  string    `json:"employee_id"`
	MetricKey   string    `json:"metric_key"`
	MetricValue float64   `json:"metric_value"`
	ComputedAt  time.Time `json:"computed_at"`
}
