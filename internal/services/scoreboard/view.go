package scoreboard

import "github.com/mcoot/hearts/internal/model"

// Snapshot is a read-only copy of the scoreboard for presentation
type Snapshot struct {
	Round           int            `json:"round"`
	RoundLabel      string         `json:"round_label"`
	DealerSeat      int            `json:"dealer_seat"`
	Action          string         `json:"action"`
	MoonRule        model.MoonRule `json:"moon_rule"`
	TotalScore      int            `json:"total_score"`
	PointsRemaining int            `json:"points_remaining"`
	CanShootTheMoon bool           `json:"can_shoot_the_moon"`
	RoundComplete   bool           `json:"round_complete"`
	GameOver        bool           `json:"game_over"`
	Players         []PlayerView   `json:"players"`
}

// PlayerView is one seat's row on the scoreboard
type PlayerView struct {
	ID           model.PlayerID `json:"id"`
	Seat         int            `json:"seat"`
	Name         string         `json:"name,omitempty"`
	RoundScore   int            `json:"round_score"`
	RunningScore int            `json:"running_score"` // before this round
	TotalScore   int            `json:"total_score"`
	IsDealer     bool           `json:"is_dealer"`
}

// Standing is a player's place in the rankings
type Standing struct {
	Position int            `json:"position"`
	Label    string         `json:"label"`
	ID       model.PlayerID `json:"id"`
	Seat     int            `json:"seat"`
	Name     string         `json:"name,omitempty"`
	Score    int            `json:"score"`
}

func snapshotOf(g *model.Game) Snapshot {
	dealer := g.Dealer()
	snap := Snapshot{
		Round:           g.Round,
		RoundLabel:      g.RoundLabel(),
		DealerSeat:      dealer.Seat,
		Action:          g.ActionLabel(),
		MoonRule:        g.MoonRule,
		TotalScore:      g.TotalScore(),
		PointsRemaining: g.PointsRemaining(),
		CanShootTheMoon: g.CanShootTheMoon(),
		RoundComplete:   g.IsRoundComplete(),
		GameOver:        g.IsGameOver(),
		Players:         make([]PlayerView, 0, model.PlayerCount),
	}
	for _, p := range g.Players {
		snap.Players = append(snap.Players, PlayerView{
			ID:           p.ID,
			Seat:         p.Seat,
			Name:         p.Name,
			RoundScore:   p.RoundScore(g.Round),
			RunningScore: p.RunningScore(g.Round),
			TotalScore:   p.TotalScore(),
			IsDealer:     p == dealer,
		})
	}
	return snap
}

func standingsOf(g *model.Game) []Standing {
	ranks := g.PlayerRanks()
	out := make([]Standing, len(ranks))
	for i, r := range ranks {
		out[i] = Standing{
			Position: r.Position,
			Label:    model.RankLabel(r.Position),
			ID:       r.Player.ID,
			Seat:     r.Player.Seat,
			Name:     r.Player.Name,
			Score:    r.Score,
		}
	}
	return out
}
