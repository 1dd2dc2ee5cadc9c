package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/render"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

type projectShowResult struct {
	Project model.Project  `json:"project"`
	Sprints []model.Sprint `json:"sprints"`
	Tickets []model.Ticket `json:"tickets"`
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id-or-key>",
	Short: "Show a project with its sprints and tickets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		p, err := a.ResolveProject(args[0])
		if err != nil {
			return cmdErr(fmt.Errorf("project %q: %w", args[0], err), output.ErrNotFound)
		}

		sprints := view.SprintsForProject(a.Sprints.List(), p.ID)
		tickets := view.TicketsForProject(a.Tickets.List(), p.ID)

		result := projectShowResult{Project: p, Sprints: sprints, Tickets: tickets}

		var message string
		if !jsonMode(cmd) {
			message = render.ProjectDetail(p, sprints, tickets)
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectShowCmd)
}
