package metrics

import (
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/models"
)

// Snapshot flattens the employee-grain metrics of a collected run into
// persistable rows, keyed "<metric>.<column>". Project- and
// activity-grain metrics are not snapshotted; dashboards read those
// from the view.
func Snapshot(results map[string]*dataset.Table) []models.ProductivityMetric {
	var snapshot []models.ProductivityMetric

	add := func(key string, table *dataset.Table, valueColumn string) {
		for _, row := range table.Rows {
			id := dataset.AsString(row["employee_id"])
			if id == "" {
				continue
			}
			snapshot = append(snapshot, models.ProductivityMetric{
				EmployeeID:  id,
				MetricKey:   key + "." + valueColumn,
				MetricValue: dataset.AsFloat(row[valueColumn]),
			})
		}
	}

	if t, ok := results[KeyApprovedPercentage]; ok {
		add(KeyApprovedPercentage, t, "approved_percentage")
	}
	if t, ok := results[KeyEmployeeProductivity]; ok {
		add(KeyEmployeeProductivity, t, "total_hours")
		add(KeyEmployeeProductivity, t, "deliverables_per_hour")
	}

	return snapshot
}
