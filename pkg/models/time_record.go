package models

import "time"

// TimeRecord is one logged work session for an employee on an activity.
// Start and end are wall-clock times of day ("HH:MM:SS"); an end before
// the start means the session crossed midnight. Worked hours are derived
// by the standardizer, never stored as source of truth.
type TimeRecord struct {
	ID               int64     `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	ActivityID       int64     `json:"activity_id"`
	RecordDate       time.Time `json:"record_date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	Description      string    `json:"description,omitempty"`
	Location         string    `json:"location,omitempty"`
	ApplicationsUsed string    `json:"applications_used,omitempty"` // JSON-encoded list of app names
}
