package model

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GameSuite struct {
	suite.Suite
	game     *Game
	observer *recordingObserver
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameSuite))
}

func (s *GameSuite) SetupTest() {
	s.game = s.newGame(MoonRuleOld)
	s.observer = &recordingObserver{}
	s.game.Observe(s.observer)
}

func (s *GameSuite) newGame(rule MoonRule) *Game {
	players := make([]*Player, PlayerCount)
	for i := range players {
		players[i] = NewPlayer(PlayerID(fmt.Sprintf("player-%d", i+1)), i+1)
	}
	game, err := NewGame(players, rule)
	s.Require().NoError(err)
	return game
}

// score sets the current round's scores for every seat
func (s *GameSuite) score(points ...int) {
	for i, n := range points {
		s.game.Players[i].AdjustPoints(n, s.game.Round)
	}
}

func (s *GameSuite) roundScores() []int {
	scores := make([]int, PlayerCount)
	for i, p := range s.game.Players {
		scores[i] = p.RoundScore(s.game.Round)
	}
	return scores
}

// NewGame tests

func (s *GameSuite) TestNewGameRejectsWrongPlayerCount() {
	_, err := NewGame([]*Player{NewPlayer("a", 1)}, MoonRuleOld)
	s.ErrorIs(err, ErrInvalidPlayerCount)
}

func (s *GameSuite) TestNewGameRejectsSeatMismatch() {
	players := []*Player{NewPlayer("a", 1), NewPlayer("b", 3), NewPlayer("c", 2), NewPlayer("d", 4)}
	_, err := NewGame(players, MoonRuleOld)
	s.ErrorIs(err, ErrInvalidSeat)
}

func (s *GameSuite) TestNewGameStartsAtRoundZero() {
	s.Equal(0, s.game.Round)
	s.Equal(0, s.game.TotalScore())
	s.Equal(PointsPerRound, s.game.PointsRemaining())
	s.Equal("Round 1", s.game.RoundLabel())
}

// Lookup tests

func (s *GameSuite) TestLookupByIDThenSeat() {
	s.Equal(s.game.Players[2], s.game.Lookup("player-3"))
	s.Equal(s.game.Players[1], s.game.Lookup("2"))
	s.Nil(s.game.Lookup("5"))
	s.Nil(s.game.Lookup("nobody"))
}

// Totals

func (s *GameSuite) TestTotalScoreIsSumOfCurrentRound() {
	s.score(1, 2, 3, 4)
	s.Equal(10, s.game.TotalScore())
	s.Equal(16, s.game.PointsRemaining())
}

func (s *GameSuite) TestTotalScoreIgnoresOtherRounds() {
	s.game.Players[0].AdjustPoints(26, 0)
	s.game.NextRound()
	s.game.Players[1].AdjustPoints(5, 1)

	s.Equal(5, s.game.TotalScore())
}

func (s *GameSuite) TestPointsRemainingUsesAbsoluteTotal() {
	s.game.SetMoonRule(MoonRuleNew)
	s.game.ShootTheMoon("player-1")

	s.Equal(-26, s.game.TotalScore())
	s.Equal(0, s.game.PointsRemaining())
}

func (s *GameSuite) TestPointsRemainingNeverNegative() {
	s.score(26, 26, 26, 0)
	s.Equal(0, s.game.PointsRemaining())
}

func (s *GameSuite) TestCanAddPoints() {
	p := s.game.Players[0]

	s.True(s.game.CanAddPoints(p, 13))
	s.False(s.game.CanAddPoints(p, 0))

	p.AdjustPoints(13, 0)
	s.False(s.game.CanAddPoints(p, 13)) // Would hand one player all 26
	s.True(s.game.CanAddPoints(p, 5))

	s.game.Players[1].AdjustPoints(10, 0)
	s.False(s.game.CanAddPoints(s.game.Players[2], 5)) // Only 3 left
	s.True(s.game.CanAddPoints(s.game.Players[2], 1))
}

// Shoot the moon

func (s *GameSuite) TestOldRuleMoonShot() {
	applied := s.game.ShootTheMoon("player-2")

	s.True(applied)
	s.Equal([]int{26, 0, 26, 26}, s.roundScores())
	s.Equal(78, s.game.TotalScore())
	s.True(s.game.IsRoundComplete())
}

func (s *GameSuite) TestNewRuleMoonShot() {
	s.game.SetMoonRule(MoonRuleNew)

	applied := s.game.ShootTheMoon("player-2")

	s.True(applied)
	s.Equal([]int{0, -26, 0, 0}, s.roundScores())
	s.True(s.game.IsRoundComplete())
}

func (s *GameSuite) TestMoonShotIgnoredOncePointsExist() {
	s.score(1, 0, 0, 0)

	s.False(s.game.CanShootTheMoon())
	s.False(s.game.ShootTheMoon("player-2"))
	s.Equal([]int{1, 0, 0, 0}, s.roundScores())
}

func (s *GameSuite) TestMoonShotTwiceOnlyAppliesOnce() {
	s.game.ShootTheMoon("player-1")
	s.game.ShootTheMoon("player-1")

	s.Equal([]int{0, 26, 26, 26}, s.roundScores())
}

func (s *GameSuite) TestMoonShotUnknownPlayerIsNoop() {
	s.False(s.game.ShootTheMoon("nobody"))
	s.Equal(0, s.game.TotalScore())
}

func (s *GameSuite) TestMoonShotUnknownRuleIsNoop() {
	game := s.newGame("")

	s.False(game.ShootTheMoon("player-1"))
	s.Equal(0, game.TotalScore())
	s.True(game.CanShootTheMoon())
}

// Round completion and navigation

func (s *GameSuite) TestIsRoundComplete() {
	cases := []struct {
		scores   []int
		complete bool
	}{
		{[]int{5, 5, 5, 11}, true},
		{[]int{13, 13, 0, 0}, true},
		{[]int{26, 26, 26, 0}, true},
		{[]int{-26, 0, 0, 0}, true},
		{[]int{5, 5, 5, 10}, false},
		{[]int{0, 0, 0, 0}, false},
		{[]int{26, 26, 0, 0}, false},
	}
	for _, tc := range cases {
		s.game.Reset()
		s.score(tc.scores...)
		s.Equal(tc.complete, s.game.IsRoundComplete(), "scores %v", tc.scores)
	}
}

func (s *GameSuite) TestNextRoundAdvancesCompleteRound() {
	s.score(5, 5, 5, 11)
	s.Require().True(s.game.IsRoundComplete())

	result := s.game.NextRound()

	s.True(result.Advanced)
	s.Equal(1, result.Round)
	s.False(result.GameOver)
	s.Equal(1, s.game.Round)
	for _, p := range s.game.Players {
		s.Len(p.Scores, 2)
		s.Equal(0, p.Scores[1])
	}
	s.Equal([]int{1}, s.observer.rounds)
}

func (s *GameSuite) TestNextRoundIncompleteIsNoop() {
	s.score(5, 5, 5, 10)

	result := s.game.NextRound()

	s.False(result.Advanced)
	s.Equal(0, s.game.Round)
	s.Equal([]int{5, 5, 5, 10}, s.roundScores())
	for _, p := range s.game.Players {
		s.Len(p.Scores, 1)
	}
	s.Empty(s.observer.rounds)
}

func (s *GameSuite) TestNextRoundKeepsExistingLaterRounds() {
	s.score(5, 5, 5, 11)
	s.game.NextRound()
	s.score(26, 0, 0, 0)
	s.game.PreviousRound()

	s.game.NextRound()

	s.Equal(1, s.game.Round)
	s.Equal([]int{26, 0, 0, 0}, s.roundScores())
}

func (s *GameSuite) TestNextRoundReportsGameOver() {
	for i := 0; i < 3; i++ {
		s.score(26, 0, 0, 0)
		result := s.game.NextRound()
		s.Require().True(result.Advanced)
		s.False(result.GameOver)
	}

	s.score(26, 0, 0, 0)
	result := s.game.NextRound()

	s.True(result.Advanced)
	s.True(result.GameOver) // 104 points going into round 5
	s.True(s.game.IsGameOver())
}

func (s *GameSuite) TestPreviousRoundClampsAtZero() {
	for i := 0; i < 3; i++ {
		s.Equal(0, s.game.PreviousRound())
	}
	s.Equal(0, s.game.Round)
}

func (s *GameSuite) TestPreviousRoundKeepsScores() {
	s.score(5, 5, 5, 11)
	s.game.NextRound()
	s.score(0, 13, 13, 0)

	s.game.PreviousRound()

	s.Equal(0, s.game.Round)
	s.Equal([]int{5, 5, 5, 11}, s.roundScores())
	s.Equal(13, s.game.Players[1].RoundScore(1))
}

// Dealer and passing

func (s *GameSuite) TestDealerAndActionCycle() {
	labels := []string{"Pass left", "Pass right", "Pass across", "Hold"}
	for round := 0; round < 9; round++ {
		s.Equal(s.game.Players[round%4], s.game.Dealer(), "round %d", round)
		s.Equal(labels[round%4], s.game.ActionLabel(), "round %d", round)
		s.Equal(fmt.Sprintf("Round %d", round+1), s.game.RoundLabel())

		s.score(26, 0, 0, 0)
		s.Require().True(s.game.NextRound().Advanced)
	}
}

// Reset

func (s *GameSuite) TestResetKeepsIdentity() {
	s.game.Players[0].SetName("Alice")
	s.score(5, 5, 5, 11)
	s.game.NextRound()
	s.score(1, 0, 0, 0)

	s.game.Reset()

	s.Equal(0, s.game.Round)
	for i, p := range s.game.Players {
		s.Equal([]int{0}, p.Scores)
		s.Equal(PlayerID(fmt.Sprintf("player-%d", i+1)), p.ID)
		s.Equal(i+1, p.Seat)
	}
	s.Equal("Alice", s.game.Players[0].Name)
}

func (s *GameSuite) TestHardResetClearsNames() {
	s.game.Players[0].SetName("Alice")
	s.game.Players[3].SetName("Dan")

	s.game.HardReset()

	for _, p := range s.game.Players {
		s.Empty(p.Name)
		s.Equal([]int{0}, p.Scores)
	}
}

func (s *GameSuite) TestSetMoonRuleNotifies() {
	s.game.SetMoonRule(MoonRuleNew)

	s.Equal(MoonRuleNew, s.game.MoonRule)
	s.Equal([]MoonRule{MoonRuleNew}, s.observer.rules)
}

func (s *GameSuite) TestEnsureRoundPadsLedgers() {
	s.game.Round = 2

	s.game.EnsureRound()

	for _, p := range s.game.Players {
		s.Equal([]int{0, 0, 0}, p.Scores)
	}
}

func TestTotalScoreMatchesPlayerSumEveryRound(t *testing.T) {
	players := make([]*Player, PlayerCount)
	for i := range players {
		players[i] = NewPlayer(PlayerID(fmt.Sprintf("p%d", i)), i+1)
	}
	game, err := NewGame(players, MoonRuleOld)
	require.NoError(t, err)

	hands := []struct {
		points  []int
		shooter PlayerID
	}{
		{points: []int{5, 5, 5, 11}},
		{shooter: "p0"},
		{points: []int{13, 0, 13, 0}},
		{points: []int{1, 2, 3, 20}},
	}
	for _, hand := range hands {
		if hand.shooter != "" {
			require.True(t, game.ShootTheMoon(hand.shooter))
		}
		for i, n := range hand.points {
			players[i].AdjustPoints(n, game.Round)
		}

		sum := 0
		for _, p := range players {
			sum += p.RoundScore(game.Round)
		}
		assert.Equal(t, sum, game.TotalScore())
		assert.True(t, game.NextRound().Advanced)
	}
}
