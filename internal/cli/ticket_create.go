package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/store"
)

var ticketCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a ticket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		projectRef, _ := cmd.Flags().GetString("project")
		description, _ := cmd.Flags().GetString("description")
		ticketType, _ := cmd.Flags().GetString("type")
		priority, _ := cmd.Flags().GetString("priority")
		assignee, _ := cmd.Flags().GetString("assignee")
		sprintID, _ := cmd.Flags().GetString("sprint")
		points, _ := cmd.Flags().GetInt("points")

		p, err := a.ResolveProject(projectRef)
		if err != nil {
			return cmdErr(fmt.Errorf("project %q: %w", projectRef, err), output.ErrNotFound)
		}

		if sprintID != "" {
			s, err := a.Sprints.Get(sprintID)
			if err != nil {
				return cmdErr(fmt.Errorf("sprint %q: %w", sprintID, err), output.ErrNotFound)
			}
			if s.ProjectID != p.ID {
				return cmdErr(fmt.Errorf("sprint %q belongs to a different project", sprintID), output.ErrValidation)
			}
		}
		if assignee != "" {
			if _, err := a.Staff.Get(assignee); err != nil {
				return cmdErr(fmt.Errorf("staff %q: %w", assignee, err), output.ErrNotFound)
			}
		}

		t, err := a.Tickets.Create(store.TicketInput{
			ProjectID:   p.ID,
			ProjectKey:  p.Key,
			SprintID:    sprintID,
			Title:       args[0],
			Description: description,
			Type:        model.TicketType(ticketType),
			Priority:    model.Priority(priority),
			AssigneeID:  assignee,
			Points:      points,
		})
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}

		w.Success(t, fmt.Sprintf("Created ticket %s: %s", t.Key, t.Title))

		return nil
	},
}

func init() {
	ticketCreateCmd.Flags().String("project", "", "Project id or key (required)")
	ticketCreateCmd.Flags().StringP("description", "d", "", "Ticket description (markdown)")
	ticketCreateCmd.Flags().StringP("type", "T", "", "Type: task, bug, story (default task)")
	ticketCreateCmd.Flags().StringP("priority", "p", "", "Priority (default none)")
	ticketCreateCmd.Flags().StringP("assignee", "a", "", "Assignee staff id")
	ticketCreateCmd.Flags().String("sprint", "", "Sprint id (empty for backlog)")
	ticketCreateCmd.Flags().Int("points", 0, "Story points")
	ticketCreateCmd.MarkFlagRequired("project")
	ticketCmd.AddCommand(ticketCreateCmd)
}
