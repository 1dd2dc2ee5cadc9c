package store

import (
	"fmt"
	"strings"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// Tickets is the entity store for tickets.
type Tickets struct {
	*Store[model.Ticket]
}

// NewTickets returns an empty ticket store.
func NewTickets(opts ...Option) *Tickets {
	return &Tickets{New[model.Ticket](opts...)}
}

// TicketInput carries the fields required to create a ticket. The
// ticket key is assigned by the store from ProjectKey and the highest
// sequence number already issued for the project.
type TicketInput struct {
	ProjectID   string
	ProjectKey  string
	SprintID    string
	Title       string
	Description string
	Type        model.TicketType
	State       model.TicketState
	Priority    model.Priority
	AssigneeID  string
	Points      int
}

// NextSequence returns the sequence number the next ticket of the given
// project will receive. Keys that fail to parse are skipped.
func (s *Tickets) NextSequence(projectID string) int {
	max := 0
	for _, t := range s.items {
		if t.ProjectID != projectID {
			continue
		}
		if _, n, err := model.ParseTicketKey(t.Key); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// Create validates the input, assigns an identifier, a per-project key,
// and timestamps, and appends the ticket to the collection.
func (s *Tickets) Create(in TicketInput) (model.Ticket, error) {
	if in.ProjectID == "" {
		return model.Ticket{}, fmt.Errorf("ticket project id is required")
	}
	if err := model.ValidateProjectKey(in.ProjectKey); err != nil {
		return model.Ticket{}, err
	}
	if strings.TrimSpace(in.Title) == "" {
		return model.Ticket{}, fmt.Errorf("ticket title is required")
	}
	if in.Type == "" {
		in.Type = model.TicketTask
	}
	if err := model.ValidateTicketType(in.Type); err != nil {
		return model.Ticket{}, err
	}
	if in.State == "" {
		in.State = model.TicketTodo
	}
	if err := model.ValidateTicketState(in.State); err != nil {
		return model.Ticket{}, err
	}
	if in.Priority == "" {
		in.Priority = model.PriorityNone
	}
	if err := model.ValidatePriority(in.Priority); err != nil {
		return model.Ticket{}, err
	}
	if in.Points < 0 {
		return model.Ticket{}, fmt.Errorf("ticket points must be non-negative")
	}

	now := s.now()
	t := model.Ticket{
		ID:          s.newID(),
		ProjectID:   in.ProjectID,
		SprintID:    in.SprintID,
		Key:         model.FormatTicketKey(in.ProjectKey, s.NextSequence(in.ProjectID)),
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		State:       in.State,
		Priority:    in.Priority,
		AssigneeID:  in.AssigneeID,
		Points:      in.Points,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.insert(t)
	return t, nil
}

// TicketPatch is a partial update; nil fields are left unchanged.
type TicketPatch struct {
	Title       *string
	Description *string
	Type        *model.TicketType
	State       *model.TicketState
	Priority    *model.Priority
	AssigneeID  *string
	SprintID    *string
	Points      *int
}

// Update merges the patch over the existing record and refreshes its
// update timestamp. Returns ErrNotFound when the id is absent.
func (s *Tickets) Update(id string, patch TicketPatch) (model.Ticket, error) {
	if patch.Type != nil {
		if err := model.ValidateTicketType(*patch.Type); err != nil {
			return model.Ticket{}, err
		}
	}
	if patch.State != nil {
		if err := model.ValidateTicketState(*patch.State); err != nil {
			return model.Ticket{}, err
		}
	}
	if patch.Priority != nil {
		if err := model.ValidatePriority(*patch.Priority); err != nil {
			return model.Ticket{}, err
		}
	}
	if patch.Points != nil && *patch.Points < 0 {
		return model.Ticket{}, fmt.Errorf("ticket points must be non-negative")
	}

	return s.apply(id, func(t model.Ticket) model.Ticket {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Type != nil {
			t.Type = *patch.Type
		}
		if patch.State != nil {
			t.State = *patch.State
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.AssigneeID != nil {
			t.AssigneeID = *patch.AssigneeID
		}
		if patch.SprintID != nil {
			t.SprintID = *patch.SprintID
		}
		if patch.Points != nil {
			t.Points = *patch.Points
		}
		t.UpdatedAt = s.now()
		return t
	})
}

// Move flips the workflow state and refreshes the update timestamp.
func (s *Tickets) Move(id string, state model.TicketState) (model.Ticket, error) {
	if err := model.ValidateTicketState(state); err != nil {
		return model.Ticket{}, err
	}
	return s.apply(id, func(t model.Ticket) model.Ticket {
		t.State = state
		t.UpdatedAt = s.now()
		return t
	})
}

// Delete removes a ticket. Returns ErrNotFound when the id is absent.
func (s *Tickets) Delete(id string) error {
	return s.remove(id)
}

// GetByKey looks a ticket up by its display key, case-insensitively.
func (s *Tickets) GetByKey(key string) (model.Ticket, error) {
	for _, t := range s.items {
		if strings.EqualFold(t.Key, key) {
			return t, nil
		}
	}
	return model.Ticket{}, ErrNotFound
}
