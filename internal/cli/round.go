package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPointsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "points <player> <n>",
		Short: "Give a player points in the current round",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("points must be a number: %q", args[1])
			}

			if err := s.board().AddPoints(cmd.Context(), args[0], n); err != nil {
				return err
			}

			s.output(cmd).Print(Result{Scoreboard: s.board().Snapshot()})
			return nil
		},
	}
}

func newMoonCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "moon <player>",
		Short: "Record that a player shot the moon",
		Long: `Record that a player took every heart and the queen of spades.

Only possible before any points are entered for the round. How the shot is
scored depends on the moon rule setting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applied, err := s.board().ShootTheMoon(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			msg := "Shot the moon!"
			if !applied {
				msg = "Points have already been entered this round; undo them first"
			}
			s.output(cmd).Print(Result{Message: msg, Scoreboard: s.board().Snapshot()})
			return nil
		},
	}
}

func newUndoCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <player>",
		Short: "Clear a player's points for the current round",
		Long: `Clear a player's points for the current round.

When the player holds all 26 points (an old-rule moon shot by someone else),
the whole round is cleared.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.board().UndoRoundScore(cmd.Context(), args[0]); err != nil {
				return err
			}

			s.output(cmd).Print(Result{Scoreboard: s.board().Snapshot()})
			return nil
		},
	}
}

func newNextCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Move to the next round once all 26 points are in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := s.board().NextRound(cmd.Context())
			snap := s.board().Snapshot()

			out := Result{Scoreboard: snap}
			switch {
			case !result.Advanced:
				out.Message = fmt.Sprintf("%s is not complete: %d points remaining", snap.RoundLabel, snap.PointsRemaining)
			case result.GameOver:
				out.Message = "Game over!"
				out.Standings = s.board().Ranks()
			}
			s.output(cmd).Print(out)
			return nil
		},
	}
}

func newPrevCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "prev",
		Short: "Go back to the previous round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.board().PreviousRound(cmd.Context())
			s.output(cmd).Print(Result{Scoreboard: s.board().Snapshot()})
			return nil
		},
	}
}
