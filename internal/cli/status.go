package cli

import (
	"github.com/spf13/cobra"
)

func newStatusCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the scoreboard for the current round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.output(cmd).Print(s.board().Snapshot())
			return nil
		},
	}
}

func newRanksCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "ranks",
		Short: "Show players ranked by total score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.output(cmd).Print(s.board().Ranks())
			return nil
		},
	}
}
