package model

import "sort"

// Rank is one line of the standings
type Rank struct {
	Player   *Player
	Position int // 1 is best; tied scores share a position
	Score    int
}

// PlayerRanks orders players by total score, lowest first.
//
// Tied players share a position and the next distinct score skips ahead
// by the size of the tie, so totals [0, 5, 5, 10] rank [1, 2, 2, 4].
// Tied players keep their seat order.
func (g *Game) PlayerRanks() []Rank {
	sorted := make([]*Player, len(g.Players))
	copy(sorted, g.Players[:])
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalScore() < sorted[j].TotalScore()
	})

	ranks := make([]Rank, 0, len(sorted))
	for i, p := range sorted {
		score := p.TotalScore()
		position := i + 1
		if i > 0 && score == ranks[i-1].Score {
			position = ranks[i-1].Position
		}
		ranks = append(ranks, Rank{Player: p, Position: position, Score: score})
	}
	return ranks
}

// RankLabel is the medal shown next to a position on the game over screen
func RankLabel(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "💩"
	}
}
