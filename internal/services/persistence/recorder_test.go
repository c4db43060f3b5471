package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hearts/internal/dependencies/mocks"
	"github.com/mcoot/hearts/internal/model"
	"github.com/mcoot/hearts/internal/storage/memory"
	"github.com/mcoot/hearts/internal/testutil"
)

func TestRecorderWritesThrough(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	repo := New(store, mocks.NewMockIDs(), testutil.NopLogger())

	game, err := repo.LoadGame(ctx, model.DefaultSettings())
	require.NoError(t, err)
	game.Observe(NewRecorder(repo, testutil.NopLogger()))

	game.Players[0].SetName("Alice")
	game.Players[0].AdjustPoints(13, 0)
	game.Players[1].AdjustPoints(13, 0)
	game.NextRound()
	game.SetMoonRule(model.MoonRuleNew)

	reloaded, err := repo.LoadGame(ctx, model.Settings{MoonRule: model.MoonRuleOld, SavePlayerNames: true})
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Round)
	assert.Equal(t, "Alice", reloaded.Players[0].Name)
	assert.Equal(t, []int{13, 0}, reloaded.Players[0].Scores)
	assert.Equal(t, []int{13, 0}, reloaded.Players[1].Scores)
	assert.Equal(t, []int{0, 0}, reloaded.Players[3].Scores)

	rule, err := store.Get(ctx, moonRuleKey)
	require.NoError(t, err)
	assert.Equal(t, "New", rule)
}

// failingStore accepts nothing
type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("offline") }

func (failingStore) Set(context.Context, string, string) error { return errors.New("offline") }

func (failingStore) Remove(context.Context, string) error { return errors.New("offline") }

func (failingStore) Close() error { return nil }

func TestRecorderLogsFailures(t *testing.T) {
	logger, buf := testutil.CaptureLogger()
	recorder := NewRecorder(New(failingStore{}, mocks.NewMockIDs(), logger), logger)

	players := make([]*model.Player, model.PlayerCount)
	for i := range players {
		players[i] = model.NewPlayer(model.PlayerID(fmt.Sprintf("p%d", i+1)), i+1)
	}
	game, err := model.NewGame(players, model.MoonRuleOld)
	require.NoError(t, err)
	game.Observe(recorder)

	assert.NotPanics(t, func() {
		game.Players[0].AdjustPoints(5, 0)
		game.PreviousRound()
		game.SetMoonRule(model.MoonRuleNew)
	})

	assert.Equal(t, 5, game.Players[0].RoundScore(0))
	assert.Contains(t, buf.String(), "failed to save player")
	assert.Contains(t, buf.String(), "failed to save round")
	assert.Contains(t, buf.String(), "failed to save moon rule")
}

func TestLoadGamePropagatesStoreFailure(t *testing.T) {
	repo := New(failingStore{}, mocks.NewMockIDs(), testutil.NopLogger())

	_, err := repo.LoadGame(context.Background(), model.DefaultSettings())
	assert.Error(t, err)

	_, err = repo.LoadSettings(context.Background())
	assert.Error(t, err)
}
