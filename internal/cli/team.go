package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/render"
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
}

type teamListResult struct {
	Teams []model.Team `json:"teams"`
	Total int          `json:"total"`
}

var teamListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List teams and their rosters",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		teams := a.Teams.List()
		result := teamListResult{Teams: teams, Total: len(teams)}

		var message string
		if !jsonMode(cmd) {
			message = render.TeamTable(teams)
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	teamCmd.AddCommand(teamListCmd)
	rootCmd.AddCommand(teamCmd)
}
