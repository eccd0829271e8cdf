package metrics

import (
	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// The tabular path computes the KPI-document metrics directly from the
// unified dataset, without touching the store again. Formulas mirror the
// query path: same rounding, same zero-hour guard.

// HoursByEmployee totals worked hours per employee, highest first.
// Columns: employee_id, total_hours.
func HoursByEmployee(unified *dataset.Table) *dataset.Table {
	out := unified.GroupBy([]string{"employee_id"},
		dataset.Agg{As: "total_hours", Fn: dataset.Sum("duration_hours")},
	)
	for _, row := range out.Rows {
		row["total_hours"] = dataset.Round2(dataset.AsFloat(row["total_hours"]))
	}
	out.SortByFloatDesc("total_hours")
	return out
}

// HoursByProject totals worked hours per project, highest first. Rows
// whose activity no longer resolves to a project are excluded: there is
// no project to attribute the hours to.
// Columns: project_id, project_name, total_hours.
func HoursByProject(unified *dataset.Table) *dataset.Table {
	attributed := dataset.New(unified.Columns...)
	for _, row := range unified.Rows {
		if row["project_id"] == nil {
			continue
		}
		attributed.Append(row)
	}

	out := attributed.GroupBy([]string{"project_id", "project_name"},
		dataset.Agg{As: "total_hours", Fn: dataset.Sum("duration_hours")},
	)
	for _, row := range out.Rows {
		row["total_hours"] = dataset.Round2(dataset.AsFloat(row["total_hours"]))
	}
	out.SortByFloatDesc("total_hours")
	return out
}

// QualityByEmployee averages the per-session quality score rollup per
// employee. Sessions without deliverables contribute zero, matching the
// unifier's nil-as-zero coercion.
// Columns: employee_id, avg_quality_score.
func QualityByEmployee(unified *dataset.Table) *dataset.Table {
	out := unified.GroupBy([]string{"employee_id"},
		dataset.Agg{As: "avg_quality_score", Fn: dataset.Mean("avg_quality_score")},
	)
	for _, row := range out.Rows {
		row["avg_quality_score"] = dataset.Round2(dataset.AsFloat(row["avg_quality_score"]))
	}
	out.SortByFloatDesc("avg_quality_score")
	return out
}

// RejectionByEmployee reports, per employee, how many deliverables were
// rejected and what share of their deliverables that is, highest share
// first. Employees with no deliverables report zero on both.
// Columns: employee_id, rejected_deliverables, rejection_rate.
func RejectionByEmployee(unified *dataset.Table) *dataset.Table {
	grouped := unified.GroupBy([]string{"employee_id"},
		dataset.Agg{As: "rejected_deliverables", Fn: dataset.Sum("rejected_deliverables")},
		dataset.Agg{As: "total_deliverables", Fn: dataset.Sum("total_deliverables")},
	)

	out := dataset.New("employee_id", "rejected_deliverables", "rejection_rate")
	for _, row := range grouped.Rows {
		rejected := dataset.AsFloat(row["rejected_deliverables"])
		total := dataset.AsFloat(row["total_deliverables"])
		out.Append(map[string]any{
			"employee_id":           row["employee_id"],
			"rejected_deliverables": rejected,
			"rejection_rate":        dataset.Round2(SafeRatio(rejected, total) * 100),
		})
	}
	out.SortByFloatDesc("rejection_rate")
	return out
}

// DeliverablesPerHour relates each employee's deliverable count to their
// logged hours, highest rate first. Zero-hour employees report exactly 0
// rather than dividing. Like the query path, an activity with several
// sessions counts its deliverable rollup once per session; see DESIGN.md.
// Columns: employee_id, total_hours, total_deliverables, deliverables_per_hour.
func DeliverablesPerHour(unified *dataset.Table) *dataset.Table {
	grouped := unified.GroupBy([]string{"employee_id"},
		dataset.Agg{As: "total_hours", Fn: dataset.Sum("duration_hours")},
		dataset.Agg{As: "total_deliverables", Fn: dataset.Sum("total_deliverables")},
	)

	out := dataset.New("employee_id", "total_hours", "total_deliverables", "deliverables_per_hour")
	for _, row := range grouped.Rows {
		hours := dataset.AsFloat(row["total_hours"])
		count := dataset.AsFloat(row["total_deliverables"])
		out.Append(map[string]any{
			"employee_id":           row["employee_id"],
			"total_hours":           dataset.Round2(hours),
			"total_deliverables":    count,
			"deliverables_per_hour": dataset.Round2(SafeRatio(count, hours)),
		})
	}
	out.SortByFloatDesc("deliverables_per_hour")
	return out
}
