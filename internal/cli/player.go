package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newNameCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "name <player> [name...]",
		Short: "Set a player's name; omit the name to clear it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args[1:], " ")
			if err := s.board().SetPlayerName(cmd.Context(), args[0], name); err != nil {
				return err
			}

			s.output(cmd).Print(Result{Scoreboard: s.board().Snapshot()})
			return nil
		},
	}
}
