package scoreboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/hearts/internal/dependencies/clock"
	"github.com/mcoot/hearts/internal/model"
	"github.com/mcoot/hearts/internal/services/analytics"
	"github.com/mcoot/hearts/internal/services/persistence"
)

// Controller owns a single game and serialises every operation on it.
//
// Model mutations are written through to the repository by a
// persistence.Recorder; analytics events are emitted after each action.
type Controller struct {
	mu       sync.Mutex
	game     *model.Game
	settings model.Settings
	repo     *persistence.Repository
	sink     analytics.Sink
	clock    clock.Clock
	logger   *slog.Logger
}

// Open loads settings and game state from the repository and returns a
// controller that writes every change back
func Open(
	ctx context.Context,
	repo *persistence.Repository,
	sink analytics.Sink,
	clock clock.Clock,
	logger *slog.Logger,
) (*Controller, error) {
	settings, err := repo.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	game, err := repo.LoadGame(ctx, settings)
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	game.Observe(persistence.NewRecorder(repo, logger))

	logger.Info("scoreboard opened",
		slog.String("round", game.RoundLabel()),
		slog.String("moon_rule", string(settings.MoonRule)),
	)

	return &Controller{
		game:     game,
		settings: settings,
		repo:     repo,
		sink:     sink,
		clock:    clock,
		logger:   logger,
	}, nil
}

// Snapshot returns the current scoreboard
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return snapshotOf(c.game)
}

// Ranks returns the players ordered by total score
func (c *Controller) Ranks() []Standing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return standingsOf(c.game)
}

// Settings returns the active settings
func (c *Controller) Settings() model.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// AddPoints gives a player n points in the current round
func (c *Controller) AddPoints(ctx context.Context, ref string, n int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.lookup(ref)
	if err != nil {
		return err
	}
	if !c.game.CanAddPoints(p, n) {
		return fmt.Errorf("%d points for seat %d with %d remaining: %w",
			n, p.Seat, c.game.PointsRemaining(), model.ErrPointsUnavailable)
	}

	p.AdjustPoints(n, c.game.Round)

	c.emit(ctx, model.EventPointsAdded, map[string]string{
		model.ParamPlayerSeat: strconv.Itoa(p.Seat),
		model.ParamPoints:     strconv.Itoa(n),
		model.ParamRound:      strconv.Itoa(c.game.Round),
	})
	return nil
}

// ShootTheMoon scores a moon shot for a player. Reports false when the
// round already has points.
func (c *Controller) ShootTheMoon(ctx context.Context, ref string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.lookup(ref)
	if err != nil {
		return false, err
	}
	if !c.game.ShootTheMoon(p.ID) {
		return false, nil
	}

	c.emit(ctx, model.EventMoonShot, map[string]string{
		model.ParamPlayerSeat:       strconv.Itoa(p.Seat),
		model.ParamRound:            strconv.Itoa(c.game.Round),
		model.ParamSelectedMoonRule: string(c.game.MoonRule),
	})
	return true, nil
}

// UndoRoundScore clears a player's score for the current round.
// A player holding all 26 points got them from someone else's old-rule
// moon shot, so the whole round is cleared instead.
func (c *Controller) UndoRoundScore(ctx context.Context, ref string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.lookup(ref)
	if err != nil {
		return err
	}

	round := c.game.Round
	if p.RoundScore(round) == model.PointsPerRound {
		for _, other := range c.game.Players {
			other.ResetRound(round)
		}
	} else {
		p.ResetRound(round)
	}

	c.emit(ctx, model.EventRoundScoreReset, map[string]string{
		model.ParamPlayerSeat: strconv.Itoa(p.Seat),
		model.ParamRound:      strconv.Itoa(round),
	})
	return nil
}

// NextRound advances once the current round is complete
func (c *Controller) NextRound(ctx context.Context) model.RoundAdvance {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.game.NextRound()

	c.emit(ctx, model.EventNextRound, map[string]string{
		model.ParamRound: strconv.Itoa(result.Round),
	})
	if result.Advanced && result.GameOver {
		c.logger.Info("game over", slog.Int("round", result.Round))
		c.emit(ctx, model.EventGameOver, map[string]string{
			model.ParamRound: strconv.Itoa(result.Round),
		})
	}
	return result
}

// PreviousRound steps back a round, stopping at the first
func (c *Controller) PreviousRound(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	round := c.game.PreviousRound()

	c.emit(ctx, model.EventPreviousRound, map[string]string{
		model.ParamRound: strconv.Itoa(round),
	})
	return round
}

// Reset starts a new game. A hard reset also forgets player names.
func (c *Controller) Reset(ctx context.Context, hard bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hard {
		c.game.HardReset()
	} else {
		c.game.Reset()
	}

	c.logger.Info("game reset", slog.Bool("hard", hard))
	c.emit(ctx, model.EventReset, map[string]string{
		model.ParamHardReset: strconv.FormatBool(hard),
	})
}

// SetPlayerName renames a player; an empty name clears it
func (c *Controller) SetPlayerName(ctx context.Context, ref, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.lookup(ref)
	if err != nil {
		return err
	}
	p.SetName(strings.TrimSpace(name))

	c.emit(ctx, model.EventPlayerRenamed, map[string]string{
		model.ParamPlayerSeat: strconv.Itoa(p.Seat),
	})
	return nil
}

// SetMoonRule changes how moon shots are scored
func (c *Controller) SetMoonRule(ctx context.Context, rule model.MoonRule) error {
	rule, err := model.ParseMoonRule(string(rule))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.settings.MoonRule
	c.settings.MoonRule = rule
	c.game.SetMoonRule(rule)

	c.emit(ctx, model.EventMoonRulesChanged, map[string]string{
		model.ParamPreviousMoonRule: string(previous),
		model.ParamSelectedMoonRule: string(rule),
	})
	return nil
}

// SetAccentColor changes the display accent
func (c *Controller) SetAccentColor(ctx context.Context, color model.AccentColor) error {
	color, err := model.ParseAccentColor(string(color))
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.SaveAccentColor(ctx, color); err != nil {
		return err
	}
	previous := c.settings.AccentColor
	c.settings.AccentColor = color

	c.emit(ctx, model.EventAccentColorChanged, map[string]string{
		model.ParamPreviousAccentColor: string(previous),
		model.ParamSelectedAccentColor: string(color),
	})
	return nil
}

// SetSavePlayerNames controls whether names are restored on the next load
func (c *Controller) SetSavePlayerNames(ctx context.Context, enabled bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.repo.SaveSavePlayerNames(ctx, enabled); err != nil {
		return err
	}
	c.settings.SavePlayerNames = enabled

	c.emit(ctx, model.EventSavePlayerNamesToggled, map[string]string{
		model.ParamEnabled: strconv.FormatBool(enabled),
	})
	return nil
}

func (c *Controller) lookup(ref string) (*model.Player, error) {
	p := c.game.Lookup(strings.TrimSpace(ref))
	if p == nil {
		return nil, fmt.Errorf("%q: %w", ref, model.ErrPlayerNotFound)
	}
	return p, nil
}

func (c *Controller) emit(ctx context.Context, typ model.EventType, params map[string]string) {
	c.sink.Emit(ctx, model.Event{
		Type:      typ,
		Timestamp: c.clock.Now(),
		Params:    params,
	})
}
