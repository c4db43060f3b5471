package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mcoot/hearts/internal/dependencies/ids"
	"github.com/mcoot/hearts/internal/model"
	"github.com/mcoot/hearts/internal/storage"
)

// Repository maps game state and settings onto the key-value store
type Repository struct {
	store  storage.Store
	ids    ids.Generator
	logger *slog.Logger
}

// New creates a new Repository
func New(store storage.Store, ids ids.Generator, logger *slog.Logger) *Repository {
	return &Repository{
		store:  store,
		ids:    ids,
		logger: logger,
	}
}

// LoadSettings reads the persisted settings.
//
// On first launch the defaults are written and setup is marked complete.
// Missing or unreadable values fall back to their defaults.
func (r *Repository) LoadSettings(ctx context.Context) (model.Settings, error) {
	defaults := model.DefaultSettings()

	done, err := r.getBool(ctx, initialSetupKey, false)
	if err != nil {
		return defaults, err
	}
	if !done {
		if err := r.SaveSettings(ctx, defaults); err != nil {
			return defaults, err
		}
		if err := r.store.Set(ctx, initialSetupKey, strconv.FormatBool(true)); err != nil {
			return defaults, fmt.Errorf("mark initial setup: %w", err)
		}
		r.logger.Info("initial setup complete",
			slog.String("moon_rule", string(defaults.MoonRule)),
			slog.String("accent_color", string(defaults.AccentColor)),
		)
		return defaults, nil
	}

	settings := defaults

	if raw, ok, err := r.get(ctx, moonRuleKey); err != nil {
		return defaults, err
	} else if ok {
		rule, err := model.ParseMoonRule(raw)
		if err != nil {
			r.logger.Warn("ignoring stored moon rule", slog.String("value", raw))
		} else {
			settings.MoonRule = rule
		}
	}

	if raw, ok, err := r.get(ctx, selectedAccentColorKey); err != nil {
		return defaults, err
	} else if ok {
		color, err := model.ParseAccentColor(raw)
		if err != nil {
			r.logger.Warn("ignoring stored accent color", slog.String("value", raw))
		} else {
			settings.AccentColor = color
		}
	}

	settings.SavePlayerNames, err = r.getBool(ctx, savePlayerNamesKey, defaults.SavePlayerNames)
	if err != nil {
		return defaults, err
	}

	return settings, nil
}

// SaveSettings writes every setting
func (r *Repository) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := r.SaveMoonRule(ctx, settings.MoonRule); err != nil {
		return err
	}
	if err := r.SaveAccentColor(ctx, settings.AccentColor); err != nil {
		return err
	}
	return r.SaveSavePlayerNames(ctx, settings.SavePlayerNames)
}

// SaveMoonRule persists the selected moon rule
func (r *Repository) SaveMoonRule(ctx context.Context, rule model.MoonRule) error {
	if err := r.store.Set(ctx, moonRuleKey, string(rule)); err != nil {
		return fmt.Errorf("save moon rule: %w", err)
	}
	return nil
}

// SaveAccentColor persists the selected accent color
func (r *Repository) SaveAccentColor(ctx context.Context, color model.AccentColor) error {
	if err := r.store.Set(ctx, selectedAccentColorKey, string(color)); err != nil {
		return fmt.Errorf("save accent color: %w", err)
	}
	return nil
}

// SaveSavePlayerNames persists whether names are restored on load
func (r *Repository) SaveSavePlayerNames(ctx context.Context, enabled bool) error {
	if err := r.store.Set(ctx, savePlayerNamesKey, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("save player names setting: %w", err)
	}
	return nil
}

// LoadGame rebuilds the game from the store.
//
// Absent values fall back to a fresh player: a new ID, no name and a
// single zero-score round. Names are only restored when the settings ask
// for it.
func (r *Repository) LoadGame(ctx context.Context, settings model.Settings) (*model.Game, error) {
	players := make([]*model.Player, model.PlayerCount)
	for i := range players {
		p, err := r.loadPlayer(ctx, i+1, settings.SavePlayerNames)
		if err != nil {
			return nil, err
		}
		players[i] = p
	}

	game, err := model.NewGame(players, settings.MoonRule)
	if err != nil {
		return nil, err
	}

	if raw, ok, err := r.get(ctx, roundKey); err != nil {
		return nil, err
	} else if ok {
		round, err := strconv.Atoi(raw)
		if err != nil {
			r.logger.Warn("ignoring stored round", slog.String("value", raw))
		} else if last := lastRecordedRound(players); round > last {
			r.logger.Warn("clamping stored round to recorded scores",
				slog.Int("stored", round),
				slog.Int("round", last),
			)
			game.Round = last
		} else {
			game.Round = round
		}
	}
	game.EnsureRound()

	r.logger.Debug("game loaded",
		slog.Int("round", game.Round),
		slog.String("moon_rule", string(game.MoonRule)),
	)

	return game, nil
}

// lastRecordedRound is the highest round any ledger reaches. Advancing a
// round pads every ledger first, so a saved round never exceeds it.
func lastRecordedRound(players []*model.Player) int {
	last := 0
	for _, p := range players {
		last = max(last, len(p.Scores)-1)
	}
	return last
}

func (r *Repository) loadPlayer(ctx context.Context, seat int, restoreName bool) (*model.Player, error) {
	id, err := r.loadPlayerID(ctx, seat)
	if err != nil {
		return nil, err
	}

	var name string
	if restoreName {
		if name, _, err = r.get(ctx, playerNameKey(seat)); err != nil {
			return nil, err
		}
	}

	var scores []int
	raw, ok, err := r.get(ctx, playerScoresKey(seat))
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &scores); err != nil {
			r.logger.Warn("ignoring corrupt score ledger",
				slog.Int("seat", seat),
				slog.String("error", err.Error()),
			)
			scores = nil
		}
	}

	return model.RestorePlayer(id, seat, name, scores), nil
}

func (r *Repository) loadPlayerID(ctx context.Context, seat int) (model.PlayerID, error) {
	raw, ok, err := r.get(ctx, playerIDKey(seat))
	if err != nil {
		return "", err
	}
	if ok && raw != "" {
		return model.PlayerID(raw), nil
	}

	id := r.ids.NewPlayerID()
	if err := r.store.Set(ctx, playerIDKey(seat), string(id)); err != nil {
		return "", fmt.Errorf("save player id: %w", err)
	}
	return id, nil
}

// SavePlayer persists a player's name and score ledger
func (r *Repository) SavePlayer(ctx context.Context, p *model.Player) error {
	data, err := json.Marshal(p.Scores)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, playerScoresKey(p.Seat), string(data)); err != nil {
		return fmt.Errorf("save scores for seat %d: %w", p.Seat, err)
	}
	if err := r.store.Set(ctx, playerNameKey(p.Seat), p.Name); err != nil {
		return fmt.Errorf("save name for seat %d: %w", p.Seat, err)
	}
	return nil
}

// SaveRound persists the round pointer
func (r *Repository) SaveRound(ctx context.Context, round int) error {
	if err := r.store.Set(ctx, roundKey, strconv.Itoa(round)); err != nil {
		return fmt.Errorf("save round: %w", err)
	}
	return nil
}

// get reads a key, reporting absence separately from failure
func (r *Repository) get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrKeyNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load %s: %w", key, err)
	}
	return value, true, nil
}

func (r *Repository) getBool(ctx context.Context, key string, fallback bool) (bool, error) {
	raw, ok, err := r.get(ctx, key)
	if err != nil || !ok {
		return fallback, err
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		r.logger.Warn("ignoring stored flag", slog.String("key", key), slog.String("value", raw))
		return fallback, nil
	}
	return value, nil
}
