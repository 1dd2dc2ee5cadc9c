package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/app"
	"github.com/sprintdeck/sprintdeck/internal/config"
	"github.com/sprintdeck/sprintdeck/internal/output"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open a session, persisted across runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		role, _ := cmd.Flags().GetString("role")

		if name == "" || email == "" {
			guessName, guessEmail := config.DefaultOperator()
			if name == "" {
				name = guessName
			}
			if email == "" {
				email = guessEmail
			}
		}

		sess, err := a.SignIn(app.SignInInput{Name: name, Email: email, Role: role})
		if err != nil {
			return cmdErr(err, output.ErrValidation)
		}
		for _, warning := range a.DrainWarnings() {
			w.Warn("%s", warning)
		}

		w.Success(sess, fmt.Sprintf("Signed in as %s <%s>", sess.User.Name, sess.User.Email))

		return nil
	},
}

func init() {
	loginCmd.Flags().String("name", "", "Operator name (defaults to git config user.name)")
	loginCmd.Flags().String("email", "", "Operator email (defaults to git config user.email)")
	loginCmd.Flags().String("role", "", "Role label (default member)")
	rootCmd.AddCommand(loginCmd)
}
