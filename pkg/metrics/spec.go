// Package metrics computes the productivity and quality KPIs over two
// paths: an in-memory tabular path over the unified dataset and an
// aggregate query path against the primary store. Each metric is defined
// once as a Spec; both paths share its key, columns and formula helpers,
// so on identical data they agree to two decimals.
//
// The two paths read the store independently rather than from a shared
// snapshot. Writes landing between the reads can shift values within a
// single run; the pipeline accepts that tolerance.
package metrics

import (
	"fmt"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/models"
)

// Metric keys. CSV files and the collected result map are keyed by these.
const (
	KeyApprovedPercentage    = "approved_percentage"
	KeyTimePerActivity       = "time_per_activity"
	KeyDeliverableQuality    = "deliverable_quality"
	KeyProjectTimeInvestment = "project_time_investment"
	KeyEmployeeProductivity  = "employee_productivity"
	KeyProjectRejectionRate  = "project_rejection_rate"
	KeyDashboard             = "dashboard"
)

// DashboardViewName is the database view maintained from the dashboard
// metric, consumable by reporting tools without going through this
// package.
const DashboardViewName = "employee_project_dashboard"

// durationHoursSQL is the midnight-safe session length in hours. A
// session that wraps past midnight has end_time earlier than start_time
// and gains a day before the subtraction, matching standardize.WorkedHours.
const durationHoursSQL = `EXTRACT(EPOCH FROM (tr.end_time - tr.start_time +
			CASE WHEN tr.end_time < tr.start_time THEN INTERVAL '24 hours' ELSE INTERVAL '0 seconds' END)) / 3600`

// Spec defines a metric once: its key, the semantic columns every
// consumer sees, and the aggregate query the query path runs.
type Spec struct {
	Key     string
	Columns []string
	Query   string
}

// SafeRatio divides num by den, returning exactly 0 when den is not
// positive. The tabular path uses it for per-hour rates; the query path
// encodes the same guard as a HAVING clause.
func SafeRatio(num, den float64) float64 {
	if den > 0 {
		return num / den
	}
	return 0
}

// Specs returns every query-path metric in collection order.
func Specs() []Spec {
	return []Spec{
		{
			Key: KeyApprovedPercentage,
			Columns: []string{
				"employee_id", "total_deliverables", "approved_deliverables", "approved_percentage",
			},
			Query: fmt.Sprintf(`
				SELECT
					d.employee_id,
					COUNT(d.id) AS total_deliverables,
					COUNT(*) FILTER (WHERE d.status = '%[1]s') AS approved_deliverables,
					ROUND(COUNT(*) FILTER (WHERE d.status = '%[1]s')::numeric / COUNT(d.id) * 100, 2)::float8 AS approved_percentage
				FROM deliverables d
				GROUP BY d.employee_id
				ORDER BY approved_percentage DESC, d.employee_id`, models.DeliverableApproved),
		},
		{
			Key: KeyTimePerActivity,
			Columns: []string{
				"activity_id", "activity_name", "project_name", "avg_hours", "employees_involved",
			},
			Query: fmt.Sprintf(`
				SELECT
					a.id AS activity_id,
					a.name AS activity_name,
					p.name AS project_name,
					ROUND(AVG(%s)::numeric, 2)::float8 AS avg_hours,
					COUNT(DISTINCT tr.employee_id) AS employees_involved
				FROM time_records tr
				JOIN activities a ON tr.activity_id = a.id
				JOIN projects p ON a.project_id = p.id
				GROUP BY a.id, a.name, p.name
				ORDER BY avg_hours DESC, a.id`, durationHoursSQL),
		},
		{
			Key: KeyDeliverableQuality,
			Columns: []string{
				"employee_id", "total_deliverables", "avg_rating",
				"format_pct", "content_pct", "regulation_pct",
			},
			// LEFT JOIN keeps never-evaluated deliverables in the
			// denominator; their compliance flags count as not met.
			Query: `
				SELECT
					d.employee_id,
					COUNT(d.id) AS total_deliverables,
					ROUND(AVG(q.overall_rating)::numeric, 2)::float8 AS avg_rating,
					ROUND(COUNT(*) FILTER (WHERE q.meets_format)::numeric / COUNT(d.id) * 100, 2)::float8 AS format_pct,
					ROUND(COUNT(*) FILTER (WHERE q.meets_content)::numeric / COUNT(d.id) * 100, 2)::float8 AS content_pct,
					ROUND(COUNT(*) FILTER (WHERE q.meets_regulation)::numeric / COUNT(d.id) * 100, 2)::float8 AS regulation_pct
				FROM deliverables d
				LEFT JOIN quality_evaluations q ON d.id = q.deliverable_id
				GROUP BY d.employee_id
				ORDER BY avg_rating DESC NULLS LAST, d.employee_id`,
		},
		{
			Key: KeyProjectTimeInvestment,
			Columns: []string{
				"project_id", "project_name", "total_activities",
				"total_hours", "employees_involved", "avg_hours_per_activity",
			},
			Query: fmt.Sprintf(`
				SELECT
					p.id AS project_id,
					p.name AS project_name,
					COUNT(DISTINCT a.id) AS total_activities,
					ROUND(SUM(%s)::numeric, 2)::float8 AS total_hours,
					COUNT(DISTINCT tr.employee_id) AS employees_involved,
					ROUND((SUM(%s) / COUNT(DISTINCT a.id))::numeric, 2)::float8 AS avg_hours_per_activity
				FROM time_records tr
				JOIN activities a ON tr.activity_id = a.id
				JOIN projects p ON a.project_id = p.id
				GROUP BY p.id, p.name
				ORDER BY total_hours DESC, p.id`, durationHoursSQL, durationHoursSQL),
		},
		{
			Key: KeyEmployeeProductivity,
			Columns: []string{
				"employee_id", "total_hours", "total_deliverables", "deliverables_per_hour",
			},
			// The deliverable join fans out when an employee logs several
			// sessions against the same activity, inflating total_hours
			// for employees with deliverables. Kept as-is; see DESIGN.md.
			Query: fmt.Sprintf(`
				SELECT
					tr.employee_id,
					ROUND(SUM(%s)::numeric, 2)::float8 AS total_hours,
					COUNT(DISTINCT d.id) AS total_deliverables,
					ROUND((COUNT(DISTINCT d.id) / SUM(%s))::numeric, 2)::float8 AS deliverables_per_hour
				FROM time_records tr
				LEFT JOIN deliverables d
					ON tr.employee_id = d.employee_id AND tr.activity_id = d.activity_id
				GROUP BY tr.employee_id
				HAVING SUM(%s) > 0
				ORDER BY deliverables_per_hour DESC, tr.employee_id`,
				durationHoursSQL, durationHoursSQL, durationHoursSQL),
		},
		{
			Key: KeyProjectRejectionRate,
			Columns: []string{
				"project_id", "project_name", "total_deliverables",
				"rejected_deliverables", "rejection_rate",
			},
			Query: fmt.Sprintf(`
				SELECT
					p.id AS project_id,
					p.name AS project_name,
					COUNT(d.id) AS total_deliverables,
					COUNT(*) FILTER (WHERE d.status = '%[1]s') AS rejected_deliverables,
					ROUND(COUNT(*) FILTER (WHERE d.status = '%[1]s')::numeric / COUNT(d.id) * 100, 2)::float8 AS rejection_rate
				FROM deliverables d
				JOIN activities a ON d.activity_id = a.id
				JOIN projects p ON a.project_id = p.id
				GROUP BY p.id, p.name
				ORDER BY rejection_rate DESC, p.id`, models.DeliverableRejected),
		},
		{
			Key: KeyDashboard,
			Columns: []string{
				"employee_id", "project_id", "project_name",
				"total_activities", "completed_activities", "completion_pct",
				"total_hours", "total_deliverables", "approved_deliverables",
				"rejected_deliverables", "avg_rating",
			},
			Query: dashboardQuery(),
		},
	}
}

// SpecByKey looks a metric up by key.
func SpecByKey(key string) (Spec, bool) {
	for _, s := range Specs() {
		if s.Key == key {
			return s, true
		}
	}
	return Spec{}, false
}

func dashboardQuery() string {
	return fmt.Sprintf(`
		SELECT
			tr.employee_id,
			p.id AS project_id,
			p.name AS project_name,
			COUNT(DISTINCT a.id) AS total_activities,
			COUNT(DISTINCT a.id) FILTER (WHERE a.status = '%[2]s') AS completed_activities,
			ROUND(COUNT(DISTINCT a.id) FILTER (WHERE a.status = '%[2]s')::numeric / COUNT(DISTINCT a.id) * 100, 2)::float8 AS completion_pct,
			ROUND(SUM(%[1]s)::numeric, 2)::float8 AS total_hours,
			COUNT(DISTINCT d.id) AS total_deliverables,
			COUNT(DISTINCT d.id) FILTER (WHERE d.status = '%[3]s') AS approved_deliverables,
			COUNT(DISTINCT d.id) FILTER (WHERE d.status = '%[4]s') AS rejected_deliverables,
			ROUND(AVG(q.overall_rating)::numeric, 2)::float8 AS avg_rating
		FROM time_records tr
		JOIN activities a ON tr.activity_id = a.id
		JOIN projects p ON a.project_id = p.id
		LEFT JOIN deliverables d
			ON tr.employee_id = d.employee_id AND tr.activity_id = d.activity_id
		LEFT JOIN quality_evaluations q ON d.id = q.deliverable_id
		GROUP BY tr.employee_id, p.id, p.name
		ORDER BY tr.employee_id, p.id`,
		durationHoursSQL, models.ActivityCompleted, models.DeliverableApproved, models.DeliverableRejected)
}

// ZeroTable returns an empty result shaped by the metric's columns, the
// stand-in when its query fails.
func (s Spec) ZeroTable() *dataset.Table {
	return dataset.New(s.Columns...)
}
