package standardize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmsoft-inc/monitor-engine/pkg/dataset"
)

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name       string
		format     bool
		content    bool
		regulation bool
		score      float64
		class      string
	}{
		{"all compliant", true, true, true, 100.00, QualityHigh},
		{"two of three", true, true, false, 66.67, QualityMedium},
		{"one of three", true, false, false, 33.33, QualityLow},
		{"none compliant", false, false, false, 0.00, QualityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := QualityScore(tt.format, tt.content, tt.regulation)
			assert.Equal(t, tt.score, score)
			assert.Equal(t, tt.class, ClassifyQuality(score))
		})
	}
}

func TestClassifyQualityBoundaries(t *testing.T) {
	// Lower bound of each band is inclusive.
	assert.Equal(t, QualityHigh, ClassifyQuality(80))
	assert.Equal(t, QualityMedium, ClassifyQuality(79.99))
	assert.Equal(t, QualityMedium, ClassifyQuality(50))
	assert.Equal(t, QualityLow, ClassifyQuality(49.99))
}

func TestDeliverablesStandardization(t *testing.T) {
	tbl := dataset.New("id", "employee_id", "activity_id", "delivered_at",
		"status", "meets_format", "meets_content", "meets_regulation")
	tbl.Append(map[string]any{
		"id": int64(1), "employee_id": "EMP02", "activity_id": int64(1),
		"delivered_at": "2025-03-10 14:00:00", "status": "Approved",
		"meets_format": true, "meets_content": true, "meets_regulation": true,
	})
	// No evaluation joined: NULL flags are treated as false, never null-propagated.
	tbl.Append(map[string]any{
		"id": int64(2), "employee_id": "EMP02", "activity_id": int64(1),
		"delivered_at": time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), "status": "PendingReview",
		"meets_format": nil, "meets_content": nil, "meets_regulation": nil,
	})

	out := Deliverables(tbl)

	require.Equal(t, 2, out.Len())
	assert.True(t, out.HasColumn("quality_score"))
	assert.True(t, out.HasColumn("quality_class"))

	assert.Equal(t, 100.00, out.Rows[0]["quality_score"])
	assert.Equal(t, QualityHigh, out.Rows[0]["quality_class"])
	assert.IsType(t, time.Time{}, out.Rows[0]["delivered_at"])

	assert.Equal(t, false, out.Rows[1]["meets_format"])
	assert.Equal(t, 0.00, out.Rows[1]["quality_score"])
	assert.Equal(t, QualityLow, out.Rows[1]["quality_class"])
}
