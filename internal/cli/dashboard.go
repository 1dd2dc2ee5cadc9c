package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/render"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

const recentCount = 5

type dashboardResult struct {
	Stats          view.DashboardStats       `json:"stats"`
	ByStatus       map[model.TicketState]int `json:"by_status"`
	RecentProjects []model.Project           `json:"recent_projects"`
	RecentTickets  []model.Ticket            `json:"recent_tickets"`
}

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Short:   "Show project and ticket summary",
	Aliases: []string{"dash"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		projects := a.Projects.List()
		tickets := a.Tickets.List()

		result := dashboardResult{
			Stats:          view.ComputeDashboard(projects, tickets),
			ByStatus:       view.TicketsByState(tickets),
			RecentProjects: view.RecentProjects(projects, recentCount),
			RecentTickets:  view.RecentTickets(tickets, recentCount),
		}

		var message string
		if !jsonMode(cmd) {
			message = render.Dashboard(result.Stats, result.ByStatus, result.RecentProjects, result.RecentTickets)
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
