package cli

import (
	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/render"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Manage workflow status options",
}

type statusListResult struct {
	Statuses []model.StatusOption `json:"statuses"`
	Total    int                  `json:"total"`
}

var statusListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List workflow status options in board order",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		statuses := a.Statuses.Visible()
		result := statusListResult{Statuses: statuses, Total: len(statuses)}

		var message string
		if !jsonMode(cmd) {
			message = render.StatusTable(statuses)
		}
		w.Success(result, message)

		return nil
	},
}

func init() {
	statusCmd.AddCommand(statusListCmd)
	rootCmd.AddCommand(statusCmd)
}
