package models

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "Planning"
	ProjectInProgress ProjectStatus = "InProgress"
	ProjectFinished   ProjectStatus = "Finished"
	ProjectCancelled  ProjectStatus = "Cancelled"
)

// Project represents a client project that activities belong to.
type Project struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Client           string        `json:"client"`
	StartDate        time.Time     `json:"start_date"`
	EstimatedEndDate time.Time     `json:"estimated_end_date"`
	ActualEndDate    *time.Time    `json:"actual_end_date,omitempty"`
	Status           ProjectStatus `json:"status"`
	Description      string        `json:"description,omitempty"`
}
