package cli

import "github.com/spf13/cobra"

var projectCmd = &cobra.Command{
	Use:     "project",
	Short:   "Manage projects",
	Aliases: []string{"p"},
}

func init() {
	rootCmd.AddCommand(projectCmd)
}
