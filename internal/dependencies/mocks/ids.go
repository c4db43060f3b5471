package mocks

import (
	"fmt"

	"github.com/mcoot/hearts/internal/dependencies/ids"
	"github.com/mcoot/hearts/internal/model"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// Queued IDs are returned first, then player-1, player-2, ...
	Queued []model.PlayerID
	next   int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewPlayerID returns the next queued ID, or a sequential one if none remain
func (m *MockIDs) NewPlayerID() model.PlayerID {
	if len(m.Queued) > 0 {
		id := m.Queued[0]
		m.Queued = m.Queued[1:]
		return id
	}
	m.next++
	return model.PlayerID(fmt.Sprintf("player-%d", m.next))
}

// Queue adds IDs to the result queue
func (m *MockIDs) Queue(values ...model.PlayerID) {
	m.Queued = append(m.Queued, values...)
}
