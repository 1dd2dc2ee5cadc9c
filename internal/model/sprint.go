package model

import "time"

// SprintStatus represents the lifecycle state of a sprint.
type SprintStatus string

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
	SprintCancelled SprintStatus = "cancelled"
)

var validSprintStatuses = []SprintStatus{
	SprintPlanning,
	SprintActive,
	SprintCompleted,
	SprintCancelled,
}

// ValidateSprintStatus returns an error if s is not a recognized sprint status.
func ValidateSprintStatus(s SprintStatus) error {
	for _, v := range validSprintStatuses {
		if s == v {
			return nil
		}
	}
	return invalidEnum("sprint status", string(s), validSprintStatuses)
}

// Color returns a color name string suitable for terminal rendering.
func (s SprintStatus) Color() string {
	switch s {
	case SprintPlanning:
		return "gray"
	case SprintActive:
		return "green"
	case SprintCompleted:
		return "blue"
	case SprintCancelled:
		return "red"
	default:
		return "white"
	}
}

// Sprint represents a timeboxed iteration within a project.
type Sprint struct {
	ID              string       `json:"id"`
	ProjectID       string       `json:"project_id"`
	Name            string       `json:"name"`
	Goal            string       `json:"goal,omitempty"`
	Status          SprintStatus `json:"status"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	TotalPoints     int          `json:"total_points"`
	CompletedPoints int          `json:"completed_points"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (s Sprint) EntityID() string { return s.ID }
