package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/output"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		sess, ok := a.Session()
		if !ok {
			return cmdErr(fmt.Errorf("not signed in, run 'sprintdeck login'"), output.ErrNotFound)
		}

		w.Success(sess.User, fmt.Sprintf("%s <%s> (%s)", sess.User.Name, sess.User.Email, sess.User.Role))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
