package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player owns the score ledger for one seat at the table.
//
// Scores is indexed by round and grows lazily; it never has gaps.
type Player struct {
	ID     PlayerID
	Seat   int // 1..4, fixed for the life of the game
	Name   string
	Scores []int

	observer Observer
}

// NewPlayer creates a player with a single zero-score round
func NewPlayer(id PlayerID, seat int) *Player {
	return &Player{
		ID:     id,
		Seat:   seat,
		Scores: []int{0},
	}
}

// RestorePlayer rebuilds a player from persisted values.
// An empty ledger falls back to a single zero-score round.
func RestorePlayer(id PlayerID, seat int, name string, scores []int) *Player {
	p := NewPlayer(id, seat)
	p.Name = name
	if len(scores) > 0 {
		p.Scores = append([]int(nil), scores...)
	}
	return p
}

// TotalScore is the sum of every recorded round
func (p *Player) TotalScore() int {
	total := 0
	for _, s := range p.Scores {
		total += s
	}
	return total
}

// RoundScore returns the score for a round, or 0 if it has not been played
func (p *Player) RoundScore(round int) int {
	if round < 0 || round >= len(p.Scores) {
		return 0
	}
	return p.Scores[round]
}

// RunningScore returns the score going into a round (rounds strictly before it)
func (p *Player) RunningScore(round int) int {
	if round > len(p.Scores) {
		round = len(p.Scores)
	}
	total := 0
	for i := 0; i < round; i++ {
		total += p.Scores[i]
	}
	return total
}

// AdjustPoints adds points to a round, creating the round entry if needed.
// Rounds past the end of the ledger are reached by padding with zeros.
func (p *Player) AdjustPoints(points, round int) {
	if round < 0 {
		return
	}
	p.grow(round)
	p.Scores[round] += points
	p.notify()
}

// ResetRound forces a round's score back to zero
func (p *Player) ResetRound(round int) {
	if round < 0 || round >= len(p.Scores) {
		return
	}
	p.Scores[round] = 0
	p.notify()
}

// Reset wipes the ledger back to a single zero-score round
func (p *Player) Reset() {
	p.Scores = []int{0}
	p.notify()
}

// SetName changes the display name
func (p *Player) SetName(name string) {
	p.Name = name
	p.notify()
}

// ClearName forgets the display name
func (p *Player) ClearName() {
	p.SetName("")
}

// ensureRound pads the ledger so that round is populated.
// Reports whether anything was appended.
func (p *Player) ensureRound(round int) bool {
	if round < len(p.Scores) {
		return false
	}
	p.grow(round)
	return true
}

func (p *Player) grow(round int) {
	for len(p.Scores) <= round {
		p.Scores = append(p.Scores, 0)
	}
}

func (p *Player) notify() {
	if p.observer != nil {
		p.observer.PlayerChanged(p)
	}
}
