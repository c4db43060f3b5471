package model

import (
	"fmt"
	"strconv"
)

const (
	// PlayerCount is the number of seats at a Hearts table
	PlayerCount = 4

	// PointsPerRound is the number of points dealt in one hand:
	// 13 hearts plus 13 for the queen of spades
	PointsPerRound = 26

	// GameOverScore ends the game once any player's running total reaches it
	GameOverScore = 100

	// maxPlayerRoundScore is the most a single player may take through
	// ordinary point entry; 26 is only reachable by shooting the moon
	maxPlayerRoundScore = PointsPerRound - 1
)

// Observer is notified after every mutation of a game or its players.
// Implementations must not call back into the game.
type Observer interface {
	PlayerChanged(p *Player)
	RoundChanged(round int)
	MoonRuleChanged(rule MoonRule)
}

// Game is the round-indexed scoring state machine.
//
// It is not safe for concurrent use; callers serialise access.
type Game struct {
	Players  [PlayerCount]*Player
	Round    int
	MoonRule MoonRule

	observer Observer
}

// RoundAdvance describes the outcome of NextRound
type RoundAdvance struct {
	Advanced bool // false when the round was not complete
	Round    int  // round pointer after the call
	GameOver bool // some player's running total reached GameOverScore
}

// NewGame creates a game at round 0 with the given players in seat order
func NewGame(players []*Player, rule MoonRule) (*Game, error) {
	if len(players) != PlayerCount {
		return nil, ErrInvalidPlayerCount
	}
	g := &Game{MoonRule: rule}
	for i, p := range players {
		if p == nil {
			return nil, ErrInvalidPlayerCount
		}
		if p.Seat != i+1 {
			return nil, fmt.Errorf("player %s in position %d: %w", p.ID, i+1, ErrInvalidSeat)
		}
		g.Players[i] = p
	}
	return g, nil
}

// Observe registers the write-through hook for the game and its players
func (g *Game) Observe(o Observer) {
	g.observer = o
	for _, p := range g.Players {
		p.observer = o
	}
}

// Player finds a player by ID
func (g *Game) Player(id PlayerID) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PlayerAt returns the player in a 1-based seat
func (g *Game) PlayerAt(seat int) *Player {
	if seat < 1 || seat > PlayerCount {
		return nil
	}
	return g.Players[seat-1]
}

// Lookup resolves a player reference: an ID first, then a seat number
func (g *Game) Lookup(ref string) *Player {
	if p := g.Player(PlayerID(ref)); p != nil {
		return p
	}
	seat, err := strconv.Atoi(ref)
	if err != nil {
		return nil
	}
	return g.PlayerAt(seat)
}

// TotalScore is the sum of every player's score for the current round
func (g *Game) TotalScore() int {
	total := 0
	for _, p := range g.Players {
		total += p.RoundScore(g.Round)
	}
	return total
}

// PointsRemaining is how many points are still to be handed out this round
func (g *Game) PointsRemaining() int {
	total := g.TotalScore()
	if total < 0 {
		total = -total
	}
	return max(PointsPerRound-total, 0)
}

// CanAddPoints reports whether a player may take n more points this round
// through ordinary entry
func (g *Game) CanAddPoints(p *Player, n int) bool {
	if n <= 0 {
		return false
	}
	return p.RoundScore(g.Round)+n <= maxPlayerRoundScore && g.PointsRemaining() >= n
}

// CanShootTheMoon is true while nothing has been scored this round
func (g *Game) CanShootTheMoon() bool {
	return g.TotalScore() == 0
}

// ShootTheMoon scores a moon shot for the player under the active rule.
// Reports whether anything changed.
func (g *Game) ShootTheMoon(id PlayerID) bool {
	shooter := g.Player(id)
	if shooter == nil || !g.CanShootTheMoon() {
		return false
	}

	switch g.MoonRule {
	case MoonRuleNew:
		shooter.AdjustPoints(-PointsPerRound, g.Round)
	case MoonRuleOld:
		for _, p := range g.Players {
			if p.ID != shooter.ID {
				p.AdjustPoints(PointsPerRound, g.Round)
			}
		}
	default:
		return false
	}
	return true
}

// IsRoundComplete is true once the round total matches a full deal:
// 26 for a normal hand, -26 for a new-rule moon, 78 for an old-rule moon
func (g *Game) IsRoundComplete() bool {
	switch g.TotalScore() {
	case PointsPerRound, -PointsPerRound, PointsPerRound * (PlayerCount - 1):
		return true
	}
	return false
}

// NextRound advances the round pointer once the current round is complete
func (g *Game) NextRound() RoundAdvance {
	if !g.IsRoundComplete() {
		return RoundAdvance{Round: g.Round, GameOver: g.IsGameOver()}
	}

	next := g.Round + 1
	for _, p := range g.Players {
		if p.ensureRound(next) {
			p.notify()
		}
	}
	g.setRound(next)

	return RoundAdvance{Advanced: true, Round: g.Round, GameOver: g.IsGameOver()}
}

// PreviousRound moves the round pointer back, never below 0.
// Recorded scores are left alone.
func (g *Game) PreviousRound() int {
	g.setRound(g.Round - 1)
	return g.Round
}

// IsGameOver reports whether any player's score going into the current
// round has reached GameOverScore
func (g *Game) IsGameOver() bool {
	for _, p := range g.Players {
		if p.RunningScore(g.Round) >= GameOverScore {
			return true
		}
	}
	return false
}

// Dealer returns the player dealing the current round
func (g *Game) Dealer() *Player {
	return g.Players[g.Round%PlayerCount]
}

// ActionLabel names the passing direction for the current round
func (g *Game) ActionLabel() string {
	switch g.Round % PlayerCount {
	case 0:
		return "Pass left"
	case 1:
		return "Pass right"
	case 2:
		return "Pass across"
	default:
		return "Hold"
	}
}

// RoundLabel is the 1-based round title
func (g *Game) RoundLabel() string {
	return fmt.Sprintf("Round %d", g.Round+1)
}

// SetMoonRule changes how moon shots are scored from now on
func (g *Game) SetMoonRule(rule MoonRule) {
	g.MoonRule = rule
	if g.observer != nil {
		g.observer.MoonRuleChanged(rule)
	}
}

// Reset starts a new game, keeping player identities and names
func (g *Game) Reset() {
	g.setRound(0)
	for _, p := range g.Players {
		p.Reset()
	}
}

// HardReset starts a new game and also forgets player names
func (g *Game) HardReset() {
	g.Reset()
	for _, p := range g.Players {
		p.ClearName()
	}
}

// EnsureRound pads every ledger so the current round is populated.
// Used after loading state that may predate the round pointer.
func (g *Game) EnsureRound() {
	if g.Round < 0 {
		g.Round = 0
	}
	for _, p := range g.Players {
		p.ensureRound(g.Round)
	}
}

func (g *Game) setRound(round int) {
	g.Round = max(round, 0)
	if g.observer != nil {
		g.observer.RoundChanged(g.Round)
	}
}
