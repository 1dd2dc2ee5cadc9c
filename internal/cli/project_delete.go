package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/app"
	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
)

type projectDeleteResult struct {
	Project model.Project     `json:"project"`
	Removed app.CascadeResult `json:"removed"`
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete <id-or-key>",
	Short:   "Delete a project and everything scheduled under it",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		p, err := a.ResolveProject(args[0])
		if err != nil {
			return cmdErr(fmt.Errorf("project %q: %w", args[0], err), output.ErrNotFound)
		}

		removed, err := a.DeleteProject(p.ID)
		if err != nil {
			return cmdErr(err, output.Classify(err, output.ErrGeneral))
		}

		w.Success(projectDeleteResult{Project: p, Removed: removed},
			fmt.Sprintf("Deleted project %s (%d sprints, %d tickets)", p.Key, removed.Sprints, removed.Tickets))

		return nil
	},
}

func init() {
	projectCmd.AddCommand(projectDeleteCmd)
}
