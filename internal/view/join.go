package view

import "github.com/sprintdeck/sprintdeck/internal/model"

// SprintsForProject returns the sprints belonging to a project, in
// collection order.
func SprintsForProject(sprints []model.Sprint, projectID string) []model.Sprint {
	out := make([]model.Sprint, 0, len(sprints))
	for _, s := range sprints {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out
}

// TicketsForProject returns the tickets belonging to a project, in
// collection order.
func TicketsForProject(tickets []model.Ticket, projectID string) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out
}

// TicketsForSprint returns the tickets scheduled into a sprint, in
// collection order.
func TicketsForSprint(tickets []model.Ticket, sprintID string) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.SprintID == sprintID {
			out = append(out, t)
		}
	}
	return out
}

// TicketsForAssignee returns the tickets assigned to a staff member, in
// collection order.
func TicketsForAssignee(tickets []model.Ticket, staffID string) []model.Ticket {
	out := make([]model.Ticket, 0, len(tickets))
	for _, t := range tickets {
		if t.AssigneeID == staffID {
			out = append(out, t)
		}
	}
	return out
}

// GroupTicketsByState buckets tickets by workflow state, preserving
// collection order inside each bucket. Every state has a bucket, so
// board columns render even when empty.
func GroupTicketsByState(tickets []model.Ticket) map[model.TicketState][]model.Ticket {
	groups := make(map[model.TicketState][]model.Ticket, len(model.StateOrder))
	for _, s := range model.StateOrder {
		groups[s] = nil
	}
	for _, t := range tickets {
		groups[t.State] = append(groups[t.State], t)
	}
	return groups
}
