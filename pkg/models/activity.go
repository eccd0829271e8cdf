package models

import "time"

// ActivityPriority ranks how urgent an activity is.
type ActivityPriority string

const (
	PriorityLow    ActivityPriority = "Low"
	PriorityMedium ActivityPriority = "Medium"
	PriorityHigh   ActivityPriority = "High"
	PriorityUrgent ActivityPriority = "Urgent"
)

// ActivityStatus is the lifecycle state of an activity.
type ActivityStatus string

const (
	ActivityPending    ActivityStatus = "Pending"
	ActivityInProgress ActivityStatus = "InProgress"
	ActivityInReview   ActivityStatus = "InReview"
	ActivityCompleted  ActivityStatus = "Completed"
	ActivityCancelled  ActivityStatus = "Cancelled"
)

// Activity is a unit of assigned work within a project.
// Every activity references exactly one project.
type Activity struct {
	ID           int64            `json:"id"`
	ProjectID    int64            `json:"project_id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Priority     ActivityPriority `json:"priority"`
	AssignedDate time.Time        `json:"assigned_date"`
	DueDate      time.Time        `json:"due_date"`
	Status       ActivityStatus   `json:"status"`
}

// Assignment links an employee to an activity. Read-only reference data.
type Assignment struct {
	ID         int64     `json:"id"`
	ActivityID int64     `json:"activity_id"`
	EmployeeID string    `json:"employee_id"`
	AssignedAt time.Time `json:"assigned_at"`
}
