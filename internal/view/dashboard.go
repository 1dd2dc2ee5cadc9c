// Package view computes read-only views over the entity stores:
// dashboard statistics, recency orderings, filters, and cross-entity
// joins. Every function is pure and recomputed on each call; the
// collections are small enough that no memoization is needed.
package view

import (
	"sort"
	"time"

	"github.com/sprintdeck/sprintdeck/internal/model"
)

// DashboardStats is the headline summary shown on the dashboard.
type DashboardStats struct {
	TotalProjects    int     `json:"total_projects"`
	ActiveProjects   int     `json:"active_projects"`
	TotalTickets     int     `json:"total_tickets"`
	CompletedTickets int     `json:"completed_tickets"`
	CompletionRate   float64 `json:"completion_rate"`
}

// ComputeDashboard derives the headline statistics. The completion rate
// is a percentage and guards the empty-ticket case to zero.
func ComputeDashboard(projects []model.Project, tickets []model.Ticket) DashboardStats {
	stats := DashboardStats{TotalProjects: len(projects), TotalTickets: len(tickets)}
	for _, p := range projects {
		if p.Status == model.ProjectActive {
			stats.ActiveProjects++
		}
	}
	for _, t := range tickets {
		if t.State == model.TicketDone {
			stats.CompletedTickets++
		}
	}
	stats.CompletionRate = ratio(stats.CompletedTickets, stats.TotalTickets)
	return stats
}

// TicketsByState counts tickets per workflow state. Every state appears
// in the result, including zero counts.
func TicketsByState(tickets []model.Ticket) map[model.TicketState]int {
	counts := make(map[model.TicketState]int, len(model.StateOrder))
	for _, s := range model.StateOrder {
		counts[s] = 0
	}
	for _, t := range tickets {
		counts[t.State]++
	}
	return counts
}

// ratio returns part/whole as a percentage, or 0 when whole is zero.
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// RecentProjects returns the n most recently updated projects. The sort
// is stable: projects with equal timestamps keep collection order.
func RecentProjects(projects []model.Project, n int) []model.Project {
	return recentBy(projects, n, func(p model.Project) time.Time { return p.UpdatedAt })
}

// RecentTickets returns the n most recently updated tickets, stable on
// equal timestamps.
func RecentTickets(tickets []model.Ticket, n int) []model.Ticket {
	return recentBy(tickets, n, func(t model.Ticket) time.Time { return t.UpdatedAt })
}

// recentBy sorts descending by timestamp and takes the first n. Zero
// timestamps (the decoded form of a malformed date) rank lowest rather
// than poisoning the comparison.
func recentBy[E any](items []E, n int, at func(E) time.Time) []E {
	sorted := append([]E(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return at(sorted[i]).After(at(sorted[j]))
	})
	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
