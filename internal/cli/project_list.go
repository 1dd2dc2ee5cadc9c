package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/render"
	"github.com/sprintdeck/sprintdeck/internal/view"
)

type projectListResult struct {
	Projects []model.Project `json:"projects"`
	Total    int             `json:"total"`
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List projects",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		tab, _ := cmd.Flags().GetString("tab")

		if status != "" && status != view.FilterAll {
			if err := model.ValidateProjectStatus(model.ProjectStatus(status)); err != nil {
				return cmdErr(err, output.ErrValidation)
			}
		}

		projects := view.FilterProjects(a.Projects.List(), view.ProjectFilter{
			Search: search,
			Status: status,
			Tab:    view.ProjectTab(tab),
		})

		result := projectListResult{Projects: projects, Total: len(projects)}

		var message string
		if !jsonMode(cmd) {
			message = render.ProjectTable(projects)
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	projectListCmd.Flags().StringP("search", "s", "", "Filter by name, description, or key substring")
	projectListCmd.Flags().String("status", "", "Filter by status ('all' for no filter)")
	projectListCmd.Flags().String("tab", "all", "Tab predicate: all, active, completed, archived")
	projectCmd.AddCommand(projectListCmd)
}
