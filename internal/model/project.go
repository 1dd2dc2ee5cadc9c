package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectInactive  ProjectStatus = "inactive"
	ProjectArchived  ProjectStatus = "archived"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on-hold"
)

var validProjectStatuses = []ProjectStatus{
	ProjectActive,
	ProjectInactive,
	ProjectArchived,
	ProjectCompleted,
	ProjectOnHold,
}

// ValidateProjectStatus returns an error if s is not a recognized project status.
func ValidateProjectStatus(s ProjectStatus) error {
	for _, v := range validProjectStatuses {
		if s == v {
			return nil
		}
	}
	return invalidEnum("project status", string(s), validProjectStatuses)
}

// Color returns a color name string suitable for terminal rendering.
func (s ProjectStatus) Color() string {
	switch s {
	case ProjectActive:
		return "green"
	case ProjectInactive:
		return "gray"
	case ProjectArchived:
		return "gray"
	case ProjectCompleted:
		return "blue"
	case ProjectOnHold:
		return "yellow"
	default:
		return "white"
	}
}

// projectKeyPattern matches short project keys like "APL" or "WEB2".
var projectKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9]{1,9}$`)

// ValidateProjectKey returns an error if key is not an uppercase
// 2-10 character short code.
func ValidateProjectKey(key string) error {
	if !projectKeyPattern.MatchString(key) {
		return fmt.Errorf("invalid project key %q: must be 2-10 uppercase letters or digits", key)
	}
	return nil
}

// Project represents a tracked project.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Key         string        `json:"key"`
	Description string        `json:"description,omitempty"`
	Status      ProjectStatus `json:"status"`
	Priority    Priority      `json:"priority"`
	StartDate   *time.Time    `json:"start_date,omitempty"`
	EndDate     *time.Time    `json:"end_date,omitempty"`
	Progress    int           `json:"progress"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (p Project) EntityID() string { return p.ID }

// FormatTicketKey returns the display key for the nth ticket of a
// project, e.g. "APL-12".
func FormatTicketKey(projectKey string, n int) string {
	return fmt.Sprintf("%s-%d", projectKey, n)
}

// ParseTicketKey splits a ticket key like "APL-12" into its project key
// and sequence number. The project key comparison is case-insensitive;
// the canonical uppercase form is returned.
func ParseTicketKey(input string) (string, int, error) {
	s := strings.TrimSpace(input)
	idx := strings.LastIndex(s, "-")
	if idx <= 0 || idx == len(s)-1 {
		return "", 0, fmt.Errorf("invalid ticket key %q", input)
	}

	prefix := strings.ToUpper(s[:idx])
	if err := ValidateProjectKey(prefix); err != nil {
		return "", 0, fmt.Errorf("invalid ticket key %q: %w", input, err)
	}

	n, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid ticket key %q: %w", input, err)
	}
	if n <= 0 {
		return "", 0, fmt.Errorf("invalid ticket key %q: sequence must be positive", input)
	}

	return prefix, n, nil
}
