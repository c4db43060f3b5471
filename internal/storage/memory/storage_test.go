package memory

import (
	"context"
	"testing"

	"github.com/mcoot/hearts/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestSetAndGet() {
	err := s.storage.Set(s.ctx, "Round", "3")
	s.Require().NoError(err)

	value, err := s.storage.Get(s.ctx, "Round")
	s.Require().NoError(err)
	s.Equal("3", value)
}

func (s *StorageSuite) TestSetOverwrites() {
	_ = s.storage.Set(s.ctx, "PlayerName1", "Alice")
	_ = s.storage.Set(s.ctx, "PlayerName1", "Bob")

	value, err := s.storage.Get(s.ctx, "PlayerName1")
	s.Require().NoError(err)
	s.Equal("Bob", value)
}

func (s *StorageSuite) TestGetNotFound() {
	_, err := s.storage.Get(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestEmptyValueIsNotAbsent() {
	_ = s.storage.Set(s.ctx, "PlayerName1", "")

	value, err := s.storage.Get(s.ctx, "PlayerName1")
	s.Require().NoError(err)
	s.Empty(value)
}

func (s *StorageSuite) TestRemove() {
	_ = s.storage.Set(s.ctx, "Round", "3")

	err := s.storage.Remove(s.ctx, "Round")
	s.Require().NoError(err)

	_, err = s.storage.Get(s.ctx, "Round")
	s.ErrorIs(err, model.ErrKeyNotFound)
}

func (s *StorageSuite) TestRemoveMissingKeyIsNoop() {
	s.NoError(s.storage.Remove(s.ctx, "nonexistent"))
}
