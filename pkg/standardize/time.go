package standardize

import (
	"time"

	"go.uber.org/zap"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
	"github.com/gmsoft-inc/monitor-engine/pkg/jsonutil"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// ParseClockTime parses a wall-clock time of day in HH:MM:SS form.
func ParseClockTime(s string) (time.Time, error) {
	return time.Parse(clockLayout, s)
}

// WorkedHours derives the duration of a work session in hours, rounded
// to two decimals. An end before the start means the session crossed
// midnight: 24 hours are added so the duration never goes negative.
func WorkedHours(date, start, end time.Time) float64 {
	startAt := combine(date, start)
	endAt := combine(date, end)
	if endAt.Before(startAt) {
		endAt = endAt.Add(24 * time.Hour)
	}
	return dataset.Round2(endAt.Sub(startAt).Seconds() / 3600)
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, time.UTC)
}

// ParseAppList decodes the JSON-encoded application-usage field into a
// list of application names. A missing or malformed value degrades to an
// empty list; one bad row never invalidates the rest of the batch.
func ParseAppList(raw any) []string {
	s, ok := raw.(string)
	if !ok || s == "" {
		return []string{}
	}
	apps, err := jsonutil.FlexibleStringList([]byte(s))
	if err != nil {
		return []string{}
	}
	return apps
}

// TimeRecords standardizes a raw time-record table in place: start/end
// are parsed as wall-clock times and two derived columns are added,
// duration_hours and apps_list. Rows whose date or clock fields fail to
// parse get zero hours and are logged, not dropped.
func TimeRecords(t *dataset.Table, logger *zap.Logger) *dataset.Table {
	if t.Empty() {
		return t
	}

	t.AddColumn("duration_hours")
	t.AddColumn("apps_list")

	for _, row := range t.Rows {
		row["apps_list"] = ParseAppList(row["applications_used"])

		date, okDate := asDate(row["record_date"])
		start, errStart := ParseClockTime(dataset.AsString(row["start_time"]))
		end, errEnd := ParseClockTime(dataset.AsString(row["end_time"]))
		if !okDate || errStart != nil || errEnd != nil {
			logger.Warn("Unparseable time record fields, defaulting duration to zero",
				zap.Any("record_id", row["id"]))
			row["duration_hours"] = float64(0)
			continue
		}
		row["duration_hours"] = WorkedHours(date, start, end)
	}

	return t
}

// asDate accepts either a time.Time from the driver or a YYYY-MM-DD string.
func asDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		parsed, err := ParseDate(d)
		return parsed, err == nil
	default:
		return time.Time{}, false
	}
}
