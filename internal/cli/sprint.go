package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/render"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

var sprintCmd = &cobra.Command{
	Use:     "sprint",
	Short:   "Manage sprints",
	Aliases: []string{"s"},
}

type sprintListResult struct {
	Sprints []model.Sprint `json:"sprints"`
	Total   int            `json:"total"`
}

var sprintListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List sprints",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		projectRef, _ := cmd.Flags().GetString("project")

		sprints := a.Sprints.List()
		if projectRef != "" {
			p, err := a.ResolveProject(projectRef)
			if err != nil {
				return cmdErr(fmt.Errorf("project %q: %w", projectRef, err), output.ErrNotFound)
			}
			sprints = view.SprintsForProject(sprints, p.ID)
		}

		result := sprintListResult{Sprints: sprints, Total: len(sprints)}

		var message string
		if !jsonMode(cmd) {
			message = render.SprintTable(sprints)
		}
		w.Success(result, message)

		return nil
	},
}

type sprintDeleteResult struct {
	Sprint   model.Sprint `json:"sprint"`
	Detached int          `json:"detached_tickets"`
}

var sprintDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a sprint and move its tickets back to the backlog",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		s, err := a.Sprints.Get(args[0])
		if err != nil {
			return cmdErr(fmt.Errorf("sprint %q: %w", args[0], err), output.ErrNotFound)
		}

		detached, err := a.DeleteSprint(s.ID)
		if err != nil {
			return cmdErr(err, output.Classify(err, output.ErrGeneral))
		}

		w.Success(sprintDeleteResult{Sprint: s, Detached: detached},
			fmt.Sprintf("Deleted sprint %s (%d tickets back to backlog)", s.Name, detached))

		return nil
	},
}

func init() {
	sprintListCmd.Flags().String("project", "", "Restrict to one project (id or key)")
	sprintCmd.AddCommand(sprintListCmd)
	sprintCmd.AddCommand(sprintDeleteCmd)
	rootCmd.AddCommand(sprintCmd)
}
