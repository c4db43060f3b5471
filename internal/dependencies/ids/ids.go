package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/hearts/internal/model"
)

// Generator hands out player identities that can be mocked for testing
type Generator interface {
	NewPlayerID() model.PlayerID
}

// UUIDGenerator implements Generator with random (v4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewPlayerID returns a fresh random UUID
func (g *UUIDGenerator) NewPlayerID() model.PlayerID {
	return model.PlayerID(uuid.NewString())
}
