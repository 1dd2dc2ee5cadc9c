package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/render"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

type ticketListResult struct {
	Tickets []model.Ticket `json:"tickets"`
	Total   int            `json:"total"`
}

var ticketListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tickets",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		ticketType, _ := cmd.Flags().GetString("type")
		priority, _ := cmd.Flags().GetString("priority")
		projectRef, _ := cmd.Flags().GetString("project")
		assignee, _ := cmd.Flags().GetString("assignee")

		if status != "" && status != view.FilterAll {
			if err := model.ValidateTicketState(model.TicketState(status)); err != nil {
				return cmdErr(err, output.ErrValidation)
			}
		}
		if ticketType != "" && ticketType != view.FilterAll {
			if err := model.ValidateTicketType(model.TicketType(ticketType)); err != nil {
				return cmdErr(err, output.ErrValidation)
			}
		}
		if priority != "" && priority != view.FilterAll {
			if err := model.ValidatePriority(model.Priority(priority)); err != nil {
				return cmdErr(err, output.ErrValidation)
			}
		}

		filter := view.TicketFilter{
			Search:   search,
			State:    status,
			Type:     ticketType,
			Priority: priority,
		}
		if projectRef != "" {
			p, err := a.ResolveProject(projectRef)
			if err != nil {
				return cmdErr(fmt.Errorf("project %q: %w", projectRef, err), output.ErrNotFound)
			}
			filter.ProjectID = p.ID
		}

		tickets := view.FilterTickets(a.Tickets.List(), filter)
		if assignee != "" {
			tickets = view.TicketsForAssignee(tickets, assignee)
		}

		result := ticketListResult{Tickets: tickets, Total: len(tickets)}

		var message string
		if !jsonMode(cmd) {
			message = render.TicketTable(tickets)
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	ticketListCmd.Flags().StringP("search", "s", "", "Filter by title, description, or key substring")
	ticketListCmd.Flags().String("status", "", "Filter by workflow status ('all' for no filter)")
	ticketListCmd.Flags().StringP("type", "T", "", "Filter by type ('all' for no filter)")
	ticketListCmd.Flags().StringP("priority", "p", "", "Filter by priority ('all' for no filter)")
	ticketListCmd.Flags().String("project", "", "Restrict to one project (id or key)")
	ticketListCmd.Flags().StringP("assignee", "a", "", "Filter by assignee staff id")
	ticketCmd.AddCommand(ticketListCmd)
}
