package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/model"
	"github.com/sprintdeck/sprintdeck/internal/output"
)

var ticketMoveCmd = &cobra.Command{
	Use:   "move <id-or-key> <status>",
	Short: "Move a ticket to another workflow status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		a := getApp(cmd)

		t, err := a.ResolveTicket(args[0])
		if err != nil {
			return cmdErr(fmt.Errorf("ticket %q: %w", args[0], err), output.ErrNotFound)
		}

		state := model.TicketState(args[1])
		if err := model.ValidateTicketState(state); err != nil {
			return cmdErr(err, output.ErrValidation)
		}

		moved, err := a.Tickets.Move(t.ID, state)
		if err != nil {
			return cmdErr(err, output.Classify(err, output.ErrGeneral))
		}

		w.Success(moved, fmt.Sprintf("Moved %s to %s", moved.Key, moved.State))

		return nil
	},
}

func init() {
	ticketCmd.AddCommand(ticketMoveCmd)
}
