package view

import "github.com/sprintdeck/sprintdeck/internal/model"

// SprintProgress returns the sprint's completion percentage, guarded to
// zero when no points are planned.
func SprintProgress(s model.Sprint) float64 {
	return ratio(s.CompletedPoints, s.TotalPoints)
}

// ProjectProgress returns the percentage of a project's tickets that
// are completed, guarded to zero when the project has no tickets.
func ProjectProgress(projectID string, tickets []model.Ticket) float64 {
	var total, done int
	for _, t := range tickets {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.State == model.TicketDone {
			done++
		}
	}
	return ratio(done, total)
}
