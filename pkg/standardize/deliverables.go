package standardize

import (
	"time"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

// Quality classification bands. Boundaries are inclusive on the lower
// bound of each band.
const (
	QualityHigh   = "High"
	QualityMedium = "Medium"
	QualityLow    = "Low"

	highScoreThreshold   = 80
	mediumScoreThreshold = 50
)

// QualityScore derives the 0-100 quality score from the three compliance
// flags: (format + content + regulation) / 3 * 100.
func QualityScore(meetsFormat, meetsContent, meetsRegulation bool) float64 {
	var sum float64
	for _, ok := range []bool{meetsFormat, meetsContent, meetsRegulation} {
		if ok {
			sum++
		}
	}
	return dataset.Round2(sum / 3 * 100)
}

// ClassifyQuality maps a quality score to its band.
func ClassifyQuality(score float64) string {
	switch {
	case score >= highScoreThreshold:
		return QualityHigh
	case score >= mediumScoreThreshold:
		return QualityMedium
	default:
		return QualityLow
	}
}

// Deliverables standardizes a raw deliverable table in place: delivery
// timestamps are coerced to time.Time, NULL compliance flags become
// false, and two derived columns are added, quality_score and
// quality_class.
func Deliverables(t *dataset.Table) *dataset.Table {
	if t.Empty() {
		return t
	}

	t.AddColumn("quality_score")
	t.AddColumn("quality_class")

	for _, row := range t.Rows {
		row["delivered_at"] = asTimestamp(row["delivered_at"])

		meetsFormat := dataset.AsBool(row["meets_format"])
		meetsContent := dataset.AsBool(row["meets_content"])
		meetsRegulation := dataset.AsBool(row["meets_regulation"])
		row["meets_format"] = meetsFormat
		row["meets_content"] = meetsContent
		row["meets_regulation"] = meetsRegulation

		score := QualityScore(meetsFormat, meetsContent, meetsRegulation)
		row["quality_score"] = score
		row["quality_class"] = ClassifyQuality(score)
	}

	return t
}

func asTimestamp(v any) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts
	case string:
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", ts); err == nil {
			return parsed
		}
		return time.Time{}
	default:
		return time.Time{}
	}
}
