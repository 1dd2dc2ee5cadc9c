package view

import (
	"strings"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// FilterAll is the sentinel status value meaning "no status filtering".
const FilterAll = "all"

// ProjectTab is the dashboard tab selection. Each tab layers one more
// status predicate on top of the explicit search and status filters.
type ProjectTab string

const (
	TabAll       ProjectTab = "all"
	TabActive    ProjectTab = "active"
	TabCompleted ProjectTab = "completed"
	TabArchived  ProjectTab = "archived"
)

// ProjectFilter describes the active project list filters. All
// predicates are conjunctive: a project must satisfy every one.
type ProjectFilter struct {
	Search string
	Status string // a ProjectStatus value or FilterAll
	Tab    ProjectTab
}

// FilterProjects applies the filter, preserving collection order.
func FilterProjects(projects []model.Project, f ProjectFilter) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if !matchSearch(f.Search, p.Name, p.Description, p.Key) {
			continue
		}
		if !matchStatus(f.Status, string(p.Status)) {
			continue
		}
		if !matchTab(f.Tab, p.Status) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TicketFilter describes the active ticket list filters, all conjunctive.
type TicketFilter struct {
	Search    string
	State     string // a TicketState value or FilterAll
	Type      string // a TicketType value or FilterAll
	Priority  string // a Priority value or FilterAll
	ProjectID string // empty means all projects
	SprintID  string // empty means all sprints
}

// FilterTickets applies the filter, preserving collection order.
func FilterTickets(tickets []model.Ticket, f TicketFilter) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if !matchSearch(f.Search, t.Title, t.Description, t.Key) {
			continue
		}
		if !matchStatus(f.State, string(t.State)) {
			continue
		}
		if !matchStatus(f.Type, string(t.Type)) {
			continue
		}
		if !matchStatus(f.Priority, string(t.Priority)) {
			continue
		}
		if f.ProjectID != "" && t.ProjectID != f.ProjectID {
			continue
		}
		if f.SprintID != "" && t.SprintID != f.SprintID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// matchSearch reports whether any field contains the query,
// case-insensitively. An empty query matches everything.
func matchSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// matchStatus is an exact enum match with the FilterAll sentinel (or an
// empty filter) matching everything.
func matchStatus(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// matchTab maps each tab to its implied status predicate.
func matchTab(tab ProjectTab, status model.ProjectStatus) bool {
	switch tab {
	case TabActive:
		return status == model.ProjectActive
	case TabCompleted:
		return status == model.ProjectCompleted
	case TabArchived:
		return status == model.ProjectArchived
	default:
		return true
	}
}
