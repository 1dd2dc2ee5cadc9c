package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/render"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

type boardResult struct {
	Columns map[model.TicketState][]model.Ticket `json:"columns"`
	Total   int                                  `json:"total"`
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show tickets as a kanban board",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		projectRef, _ := cmd.Flags().GetString("project")
		sprintID, _ := cmd.Flags().GetString("sprint")
		showEmpty, _ := cmd.Flags().GetBool("all-columns")

		tickets := a.Tickets.List()
		if projectRef != "" {
			p, err := a.ResolveProject(projectRef)
			if err != nil {
				return cmdErr(fmt.Errorf("project %q: %w", projectRef, err), output.ErrNotFound)
			}
			tickets = view.TicketsForProject(tickets, p.ID)
		}
		if sprintID != "" {
			if _, err := a.Sprints.Get(sprintID); err != nil {
				return cmdErr(fmt.Errorf("sprint %q: %w", sprintID, err), output.ErrNotFound)
			}
			tickets = view.TicketsForSprint(tickets, sprintID)
		}

		result := boardResult{
			Columns: view.GroupTicketsByState(tickets),
			Total:   len(tickets),
		}

		var message string
		if !jsonMode(cmd) {
			assignees := make(map[string]string)
			for _, m := range a.Staff.List() {
				assignees[m.ID] = m.Name
			}
			message = render.Board(tickets, render.BoardOptions{
				Assignees: assignees,
				ShowEmpty: showEmpty,
			})
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	boardCmd.Flags().String("project", "", "Restrict to one project (id or key)")
	boardCmd.Flags().String("sprint", "", "Restrict to one sprint")
	boardCmd.Flags().Bool("all-columns", false, "Show columns with no tickets")
	rootCmd.AddCommand(boardCmd)
}
