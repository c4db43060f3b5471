package factory

import (
	"context"

	"github.com/mcoot/hearts/internal/dependencies/mocks"
	"github.com/mcoot/hearts/internal/services/analytics"
	"github.com/mcoot/hearts/internal/storage/memory"
	"github.com/mcoot/hearts/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
	Events    *analytics.MemorySink
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() (*TestApp, error) {
	return NewTestAppWithStore(memory.New())
}

// NewTestAppWithStore opens a TestApp over an existing store, as if the
// process had restarted
func NewTestAppWithStore(store *memory.Storage) (*TestApp, error) {
	mockClock := mocks.NewMockClock(testutil.GameNight)
	mockIDs := mocks.NewMockIDs()
	sink := analytics.NewMemorySink()

	app, err := newWithDependencies(context.Background(), store, mockClock, mockIDs, sink, testutil.NopLogger())
	if err != nil {
		return nil, err
	}

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
		Events:    sink,
		Memory:    store,
	}, nil
}

// Restart opens a fresh TestApp over this app's store
func (t *TestApp) Restart() (*TestApp, error) {
	return NewTestAppWithStore(t.Memory)
}
