package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		sess, ok := a.Session()
		if !ok {
			w.Info("No active session")
			w.Success(struct {
				SignedOut bool `json:"signed_out"`
			}{SignedOut: false}, "")
			return nil
		}

		a.SignOut()
		for _, warning := range a.DrainWarnings() {
			w.Warn("%s", warning)
		}

		w.Success(struct {
			SignedOut bool   `json:"signed_out"`
			Email     string `json:"email"`
		}{SignedOut: true, Email: sess.User.Email},
			fmt.Sprintf("Signed out %s", sess.User.Email))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
