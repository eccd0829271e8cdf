package models

import "time"

// DeliverableStatus is the review state of a submitted deliverable.
type DeliverableStatus string

const (
	DeliverablePendingReview DeliverableStatus = "PendingReview"
	DeliverableInReview      DeliverableStatus = "InReview"
	DeliverableApproved      DeliverableStatus = "Approved"
	DeliverableRejected      DeliverableStatus = "Rejected"
)

// DeliverableType is reference data describing a kind of deliverable
// and the quality parameters it is evaluated against.
type DeliverableType struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	QualityParameters string `json:"quality_parameters,omitempty"`
}

// Deliverable is a submitted work artifact tied to an activity.
// It may have zero or more quality evaluations.
type Deliverable struct {
	ID          int64             `json:"id"`
	ActivityID  int64             `json:"activity_id"`
	EmployeeID  string            `json:"employee_id"`
	TypeID      int64             `json:"type_id"`
	FileName    string            `json:"file_name"`
	FilePath    string            `json:"file_path,omitempty"`
	DeliveredAt time.Time         `json:"delivered_at"`
	Version     int               `json:"version"`
	Status      DeliverableStatus `json:"status"`
}
