package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/store"
)

func parseDateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q, want YYYY-MM-DD", name, raw)
	}
	return &t, nil
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		key, _ := cmd.Flags().GetString("key")
		description, _ := cmd.Flags().GetString("description")
		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetString("priority")

		start, err := parseDateFlag(cmd, "start")
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}
		end, err := parseDateFlag(cmd, "end")
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}

		p, err := a.Projects.Create(store.ProjectInput{
			Name:        args[0],
			Key:         key,
			Description: description,
			Status:      model.ProjectStatus(status),
			Priority:    model.Priority(priority),
			StartDate:   start,
			EndDate:     end,
		})
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}

		w.Success(p, fmt.Sprintf("Created project %s (%s)", p.Name, p.Key))

		return nil
	},
}

func init() {
	projectCreateCmd.Flags().StringP("key", "k", "", "Short key for ticket numbering, e.g. APL (required)")
	projectCreateCmd.Flags().StringP("description", "d", "", "Project description (markdown)")
	projectCreateCmd.Flags().String("status", "", "Initial status (default active)")
	projectCreateCmd.Flags().StringP("priority", "p", "", "Priority (default none)")
	projectCreateCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectCreateCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	projectCreateCmd.MarkFlagRequired("key")
	projectCmd.AddCommand(projectCreateCmd)
}
