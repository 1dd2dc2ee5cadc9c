package cli

import "github.com/spf13/cobra"

var ticketCmd = &cobra.Command{
	Use:     "ticket",
	Short:   "Manage tickets",
	Aliases: []string{"t"},
}

func init() {
	rootCmd.AddCommand(ticketCmd)
}
