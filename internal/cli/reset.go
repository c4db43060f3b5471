package cli

import (
	"github.com/spf13/cobra"
)

func newResetCmd(s *session) *cobra.Command {
	var hard bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Start a new game with the same players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.board().Reset(cmd.Context(), hard)

			msg := "New game started"
			if hard {
				msg = "New game started; player names cleared"
			}
			s.output(cmd).Print(Result{Message: msg, Scoreboard: s.board().Snapshot()})
			return nil
		},
	}

	cmd.Flags().BoolVar(&hard, "hard", false, "Also clear player names")

	return cmd
}
