package model

import "time"

// TicketType represents the category of a ticket.
type TicketType string

const (
	TicketTask  TicketType = "task"
	TicketBug   TicketType = "bug"
	TicketStory TicketType = "story"
)

var validTicketTypes = []TicketType{
	TicketTask,
	TicketBug,
	TicketStory,
}

// ValidateTicketType returns an error if t is not a recognized ticket type.
func ValidateTicketType(t TicketType) error {
	for _, v := range validTicketTypes {
		if t == v {
			return nil
		}
	}
	return invalidEnum("ticket type", string(t), validTicketTypes)
}

// Color returns a color name string suitable for terminal rendering.
func (t TicketType) Color() string {
	switch t {
	case TicketBug:
		return "red"
	case TicketStory:
		return "green"
	default:
		return "blue"
	}
}

// Icon returns a single-character glyph for the ticket type.
func (t TicketType) Icon() string {
	switch t {
	case TicketBug:
		return "●"
	case TicketStory:
		return "▲"
	default:
		return "■"
	}
}

// TicketState represents the workflow state of a ticket.
type TicketState string

const (
	TicketTodo       TicketState = "todo"
	TicketInProgress TicketState = "inprogress"
	TicketQA         TicketState = "qa"
	TicketDone       TicketState = "completed"
)

var validTicketStates = []TicketState{
	TicketTodo,
	TicketInProgress,
	TicketQA,
	TicketDone,
}

// ValidateTicketState returns an error if s is not a recognized workflow state.
func ValidateTicketState(s TicketState) error {
	for _, v := range validTicketStates {
		if s == v {
			return nil
		}
	}
	return invalidEnum("ticket state", string(s), validTicketStates)
}

// Color returns a color name string suitable for terminal rendering.
func (s TicketState) Color() string {
	switch s {
	case TicketTodo:
		return "gray"
	case TicketInProgress:
		return "yellow"
	case TicketQA:
		return "magenta"
	case TicketDone:
		return "green"
	default:
		return "white"
	}
}

// Icon returns a single-character glyph for the workflow state.
func (s TicketState) Icon() string {
	switch s {
	case TicketTodo:
		return "○"
	case TicketInProgress:
		return "◐"
	case TicketQA:
		return "◍"
	case TicketDone:
		return "✔"
	default:
		return "?"
	}
}

// StateOrder is the canonical display sequence for workflow states,
// used by board columns and stats sections.
var StateOrder = []TicketState{
	TicketTodo,
	TicketInProgress,
	TicketQA,
	TicketDone,
}

// Ticket represents a unit of work inside a project, optionally
// scheduled into a sprint. SprintID is empty for backlog tickets.
type Ticket struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"project_id"`
	SprintID    string      `json:"sprint_id,omitempty"`
	Key         string      `json:"key"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Type        TicketType  `json:"type"`
	State       TicketState `json:"status"`
	Priority    Priority    `json:"priority"`
	AssigneeID  string      `json:"assignee_id,omitempty"`
	Points      int         `json:"points"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// EntityID implements the store entity contract.
func (t Ticket) EntityID() string { return t.ID }
