package persistence

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/hearts/internal/model"
)

// writeTimeout bounds each write-through so a slow store cannot stall the game
const writeTimeout = 2 * time.Second

// Recorder writes every game mutation through to the repository.
// Failures are logged; the game never sees them.
type Recorder struct {
	repo   *Repository
	logger *slog.Logger
}

// NewRecorder creates a Recorder
func NewRecorder(repo *Repository, logger *slog.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger,
	}
}

// Ensure Recorder implements Observer
var _ model.Observer = (*Recorder)(nil)

// PlayerChanged saves the player's name and ledger
func (r *Recorder) PlayerChanged(p *model.Player) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.repo.SavePlayer(ctx, p); err != nil {
		r.logger.Error("failed to save player",
			slog.Int("seat", p.Seat),
			slog.String("player_id", string(p.ID)),
			slog.String("error", err.Error()),
		)
	}
}

// RoundChanged saves the round pointer
func (r *Recorder) RoundChanged(round int) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.repo.SaveRound(ctx, round); err != nil {
		r.logger.Error("failed to save round",
			slog.Int("round", round),
			slog.String("error", err.Error()),
		)
	}
}

// MoonRuleChanged saves the moon rule setting
func (r *Recorder) MoonRuleChanged(rule model.MoonRule) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := r.repo.SaveMoonRule(ctx, rule); err != nil {
		r.logger.Error("failed to save moon rule",
			slog.String("moon_rule", string(rule)),
			slog.String("error", err.Error()),
		)
	}
}
