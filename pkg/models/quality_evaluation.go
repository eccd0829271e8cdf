package models

import "time"

// QualityEvaluation is one reviewer's assessment of a deliverable.
// The three compliance flags drive the derived quality score; a flag
// left NULL in storage is treated as false, never null-propagated.
type QualityEvaluation struct {
	ID                int64     `json:"id"`
	DeliverableID     int64     `json:"deliverable_id"`
	EvaluatorID       string    `json:"evaluator_id"`
	EvaluatedAt       time.Time `json:"evaluated_at"`
	MeetsFormat       bool      `json:"meets_format"`
	MeetsContent      bool      `json:"meets_content"`
	MeetsRegulation   bool      `json:"meets_regulation"`
	OverallRating     *int      `json:"overall_rating,omitempty"` // 1-5, optional
	Notes             string    `json:"notes,omitempty"`
	CorrectiveActions string    `json:"corrective_actions,omitempty"`
}
