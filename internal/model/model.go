// Package model defines the domain entities and their closed status
// enumerations. Every status and priority domain used anywhere in the
// application is declared here once, shared by the mutation and
// derived-view layers.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh globally unique entity identifier.
func NewID() string {
	return uuid.NewString()
}

// invalidEnum builds the shared error for out-of-set enum values.
func invalidEnum[T ~string](domain, got string, valid []T) error {
	return fmt.Errorf("invalid %s %q: must be one of %v", domain, got, valid)
}

// Priority represents the urgency of a project or ticket.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityNone     Priority = "none"
)

var validPriorities = []Priority{
	PriorityCritical,
	PriorityHigh,
	PriorityMedium,
	PriorityLow,
	PriorityNone,
}

// ValidatePriority returns an error if p is not a recognized priority.
func ValidatePriority(p Priority) error {
	for _, v := range validPriorities {
		if p == v {
			return nil
		}
	}
	return invalidEnum("priority", string(p), validPriorities)
}

// Color returns a color name string suitable for terminal rendering.
func (p Priority) Color() string {
	switch p {
	case PriorityCritical:
		return "red"
	case PriorityHigh:
		return "yellow"
	case PriorityMedium:
		return "blue"
	case PriorityLow:
		return "gray"
	default:
		return "white"
	}
}

// Icon returns a short marker for the priority level.
func (p Priority) Icon() string {
	switch p {
	case PriorityCritical:
		return "!!!"
	case PriorityHigh:
		return "!!"
	case PriorityMedium:
		return "!"
	case PriorityLow:
		return "-"
	default:
		return " "
	}
}

// FormatTime renders a timestamp in the wire format used across the
// persisted snapshot and JSON output.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
